package entities

// EquipmentSlot represents the slot a piece of equipment occupies
type EquipmentSlot string

// Define all available equipment slots
const (
	SlotAmulet     EquipmentSlot = "amulet"
	SlotBodyArmour EquipmentSlot = "body_armour"
	SlotBoots      EquipmentSlot = "boots"
	SlotHelmet     EquipmentSlot = "helmet"
	SlotWeapon     EquipmentSlot = "weapon"
)

// String returns the string representation of the equipment slot
func (s EquipmentSlot) String() string {
	return string(s)
}

// IsValid checks if the equipment slot is valid
func (s EquipmentSlot) IsValid() bool {
	switch s {
	case SlotAmulet, SlotBodyArmour, SlotBoots, SlotHelmet, SlotWeapon:
		return true
	default:
		return false
	}
}

// AllEquipmentSlots returns a slice of all valid equipment slots
func AllEquipmentSlots() []EquipmentSlot {
	return []EquipmentSlot{
		SlotAmulet,
		SlotBodyArmour,
		SlotBoots,
		SlotHelmet,
		SlotWeapon,
	}
}

// EquipmentKind is the closed set of item bases. Weapons come in variants
// that share the weapon slot.
type EquipmentKind string

const (
	KindAmulet     EquipmentKind = "amulet"
	KindBodyArmour EquipmentKind = "body_armour"
	KindBoots      EquipmentKind = "boots"
	KindHelmet     EquipmentKind = "helmet"
	KindSword      EquipmentKind = "sword"
	KindWand       EquipmentKind = "wand"
)

// String returns the string representation of the kind
func (k EquipmentKind) String() string {
	return string(k)
}

// Slot returns the slot the kind is worn in, empty for unknown kinds
func (k EquipmentKind) Slot() EquipmentSlot {
	switch k {
	case KindAmulet:
		return SlotAmulet
	case KindBodyArmour:
		return SlotBodyArmour
	case KindBoots:
		return SlotBoots
	case KindHelmet:
		return SlotHelmet
	case KindSword, KindWand:
		return SlotWeapon
	default:
		return ""
	}
}

// IsValid checks if the kind is known
func (k EquipmentKind) IsValid() bool {
	return k.Slot() != ""
}

// AllEquipmentKinds returns every equipment kind
func AllEquipmentKinds() []EquipmentKind {
	return []EquipmentKind{
		KindAmulet,
		KindBodyArmour,
		KindBoots,
		KindHelmet,
		KindSword,
		KindWand,
	}
}

// EquipmentKindFromString converts a string to an EquipmentKind
// Returns the kind and true if valid, empty kind and false if invalid
func EquipmentKindFromString(s string) (EquipmentKind, bool) {
	kind := EquipmentKind(s)
	if kind.IsValid() {
		return kind, true
	}
	return "", false
}

// Equipment is the payload of an equippable item entity. Its affixes are
// Modifier children of the entity; Armour and Contribution are written by the
// aggregation pipeline.
type Equipment struct {
	ItemID   string
	Kind     EquipmentKind
	Level    int
	Rarity   Rarity
	Implicit Modifier

	// Armour is the item's local armour: (base + more) × (1 + increase/100)
	Armour Armour
	// Contribution is every non-armour value the item hands to its wearer
	Contribution StatBlock
}

// Slot returns the slot the equipment occupies
func (e *Equipment) Slot() EquipmentSlot {
	return e.Kind.Slot()
}

// Display is what a presentation layer needs to draw an item.
type Display struct {
	TileIndex   int
	Title       string
	Description string
}

// ItemSnapshot is the persisted form of an equipment entity and its affixes.
type ItemSnapshot struct {
	ItemID   string        `json:"item_id"`
	OwnerID  string        `json:"owner_id,omitempty"`
	Kind     EquipmentKind `json:"kind"`
	Level    int           `json:"level"`
	Rarity   Rarity        `json:"rarity"`
	Implicit Modifier      `json:"implicit"`
	Affixes  []Modifier    `json:"affixes"`
}
