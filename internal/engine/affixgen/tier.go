package affixgen

import (
	"fmt"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Tier is one row of a tiered range table: it is unlocked for items whose level
// is at most MaxItemLevel, rolls in [Min, Max] and adds Weight to its kind's pool share.
type Tier struct {
	MaxItemLevel int
	Min          int
	Max          int
	Weight       int
}

// TierTable lists tiers by ascending MaxItemLevel.
type TierTable []Tier

// Unlocked returns the index of the highest unlocked tier: the first tier whose
// MaxItemLevel covers the level, or the last tier when the level is beyond all of them.
// Every tier at or below that index is unlocked. Panics on an empty table.
func (t TierTable) Unlocked(level int) int {
	if len(t) == 0 {
		panic("affixgen: empty tier table")
	}
	for i, tier := range t {
		if tier.MaxItemLevel >= level {
			return i
		}
	}
	return len(t) - 1
}

// Weight sums the weights of every unlocked tier.
func (t TierTable) Weight(level int) int {
	highest := t.Unlocked(level)
	total := 0
	for _, tier := range t[:highest+1] {
		total += tier.Weight
	}
	return total
}

// Validate reports malformed content: empty tables, inverted ranges, negative
// weights or unsorted levels.
func (t TierTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("tier table is empty")
	}
	for i, tier := range t {
		if tier.Min > tier.Max {
			return fmt.Errorf("tier %d: min %d exceeds max %d", i, tier.Min, tier.Max)
		}
		if tier.Weight < 0 {
			return fmt.Errorf("tier %d: negative weight %d", i, tier.Weight)
		}
		if i > 0 && t[i-1].MaxItemLevel > tier.MaxItemLevel {
			return fmt.Errorf("tier %d: max item level %d is below previous tier", i, tier.MaxItemLevel)
		}
	}
	return nil
}

// Entry binds a modifier kind to its tier table.
type Entry struct {
	Kind  entities.ModifierKind
	Tiers TierTable
}

// Table is the candidate affix list of one equipment kind.
type Table []Entry

// Validate checks every entry and rejects duplicated kinds.
func (t Table) Validate() error {
	seen := make(map[entities.ModifierKind]bool, len(t))
	for _, entry := range t {
		if seen[entry.Kind] {
			return fmt.Errorf("%s: listed twice", entry.Kind)
		}
		seen[entry.Kind] = true
		if err := entry.Tiers.Validate(); err != nil {
			return fmt.Errorf("%s: %w", entry.Kind, err)
		}
	}
	return nil
}

// Lookup returns the tier table of a kind.
func (t Table) Lookup(kind entities.ModifierKind) (TierTable, bool) {
	for _, entry := range t {
		if entry.Kind == kind {
			return entry.Tiers, true
		}
	}
	return nil, false
}
