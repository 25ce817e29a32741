package items

import (
	"github.com/KirkDiggler/rpg-forge/internal/engine/affixgen"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Tile indices into the item sprite sheet. Each base owns three consecutive
// tiles, one per rarity.
const (
	tileAmulet     = 0
	tileBodyArmour = 3
	tileBoots      = 6
	tileHelmet     = 9
	tileSword      = 12
	tileWand       = 15
	tileOrbs       = 18
)

// Base is the static definition of one equipment kind.
type Base struct {
	Kind   entities.EquipmentKind
	Title  string
	Flavor string

	// Implicit is the stat every item of the kind rolls at spawn, outside the affix pool
	Implicit    entities.ModifierKind
	ImplicitMin int
	ImplicitMax int

	Affixes affixgen.Table

	tile int
}

// TileIndex returns the sprite tile for an item of this base at the rarity
func (b Base) TileIndex(rarity entities.Rarity) int {
	return b.tile + int(rarity)
}

// BaseOf returns the definition of an equipment kind
func BaseOf(kind entities.EquipmentKind) (Base, bool) {
	switch kind {
	case entities.KindAmulet:
		return Base{
			Kind:        kind,
			Title:       "Jade Amulet",
			Flavor:      "A cold stone on a leather cord.",
			Implicit:    entities.ModifierLifeRegen,
			ImplicitMin: 1,
			ImplicitMax: 2,
			Affixes:     amuletAffixes,
			tile:        tileAmulet,
		}, true
	case entities.KindBodyArmour:
		return Base{
			Kind:        kind,
			Title:       "Leather Vest",
			Flavor:      "Stitched from whatever the last hunt left behind.",
			Implicit:    entities.ModifierBaseArmour,
			ImplicitMin: 3,
			ImplicitMax: 8,
			Affixes:     bodyArmourAffixes,
			tile:        tileBodyArmour,
		}, true
	case entities.KindBoots:
		return Base{
			Kind:        kind,
			Title:       "Worn Boots",
			Flavor:      "The soles remember every road.",
			Implicit:    entities.ModifierIncreaseMovementSpeed,
			ImplicitMin: 5,
			ImplicitMax: 10,
			Affixes:     bootsAffixes,
			tile:        tileBoots,
		}, true
	case entities.KindHelmet:
		return Base{
			Kind:        kind,
			Title:       "Iron Helmet",
			Flavor:      "Dented, but it held.",
			Implicit:    entities.ModifierBaseArmour,
			ImplicitMin: 1,
			ImplicitMax: 4,
			Affixes:     helmetAffixes,
			tile:        tileHelmet,
		}, true
	case entities.KindSword:
		return Base{
			Kind:        kind,
			Title:       "Short Sword",
			Flavor:      "Balanced for throwing more than for fencing.",
			Implicit:    entities.ModifierMoreDamage,
			ImplicitMin: 1,
			ImplicitMax: 3,
			Affixes:     weaponAffixes,
			tile:        tileSword,
		}, true
	case entities.KindWand:
		return Base{
			Kind:        kind,
			Title:       "Driftwood Wand",
			Flavor:      "Still smells of the sea.",
			Implicit:    entities.ModifierIncreaseAreaOfEffect,
			ImplicitMin: 5,
			ImplicitMax: 12,
			Affixes:     weaponAffixes,
			tile:        tileWand,
		}, true
	default:
		return Base{}, false
	}
}

// OrbDisplay returns the display bundle of an orb
func OrbDisplay(kind entities.OrbKind) entities.Display {
	switch kind {
	case entities.OrbTransmutation:
		return entities.Display{
			TileIndex:   tileOrbs,
			Title:       "Orb of Transmutation",
			Description: "Upgrades a normal item to a magic item with two new affixes.",
		}
	case entities.OrbRegal:
		return entities.Display{
			TileIndex:   tileOrbs + 1,
			Title:       "Regal Orb",
			Description: "Upgrades a magic item to a rare item, adding one affix.",
		}
	case entities.OrbChaos:
		return entities.Display{
			TileIndex:   tileOrbs + 2,
			Title:       "Chaos Orb",
			Description: "Rerolls every affix of a rare item.",
		}
	default:
		return entities.Display{TileIndex: -1, Title: "Unknown Orb"}
	}
}
