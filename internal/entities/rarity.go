package entities

import "fmt"

// Rarity is an item's rarity. It only moves forward: Normal, Magic, Rare.
type Rarity uint8

const (
	RarityNormal Rarity = iota
	RarityMagic
	RarityRare
)

// NAffix returns how many affixes an item of this rarity carries
func (r Rarity) NAffix() int {
	switch r {
	case RarityNormal:
		return 1
	case RarityMagic:
		return 2
	case RarityRare:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of the rarity
func (r Rarity) String() string {
	switch r {
	case RarityNormal:
		return "normal"
	case RarityMagic:
		return "magic"
	case RarityRare:
		return "rare"
	default:
		return fmt.Sprintf("rarity(%d)", uint8(r))
	}
}

// MarshalText implements encoding.TextMarshaler
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rarity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*r = RarityNormal
	case "magic":
		*r = RarityMagic
	case "rare":
		*r = RarityRare
	default:
		return fmt.Errorf("unknown rarity %q", string(text))
	}
	return nil
}

// OrbKind identifies a crafting orb.
type OrbKind string

const (
	OrbTransmutation OrbKind = "transmutation"
	OrbRegal         OrbKind = "regal"
	OrbChaos         OrbKind = "chaos"
)

// String returns the string representation of the orb
func (o OrbKind) String() string {
	return string(o)
}

// IsValid checks if the orb kind is known
func (o OrbKind) IsValid() bool {
	switch o {
	case OrbTransmutation, OrbRegal, OrbChaos:
		return true
	default:
		return false
	}
}

// Requires returns the rarity an item must have for the orb to apply
func (o OrbKind) Requires() Rarity {
	switch o {
	case OrbRegal:
		return RarityMagic
	case OrbChaos:
		return RarityRare
	default:
		return RarityNormal
	}
}

// AllOrbKinds returns every orb kind
func AllOrbKinds() []OrbKind {
	return []OrbKind{OrbTransmutation, OrbRegal, OrbChaos}
}

// Orb is a single-use crafting item.
type Orb struct {
	Kind OrbKind
}
