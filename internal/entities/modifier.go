package entities

import "fmt"

// ModifierKind identifies the typed value a Modifier carries.
type ModifierKind uint8

// Modifier kinds. Base* values seed a stat, More* values are flat addends,
// Increase* values are percentages applied once after every addend.
const (
	ModifierBaseArmour ModifierKind = iota
	ModifierMoreArmour
	ModifierIncreaseArmour
	ModifierMoreLife
	ModifierIncreaseMaxLife
	ModifierLifeRegen
	ModifierIncreaseMovementSpeed
	ModifierIncreaseAttackSpeed
	ModifierPierceChance
	ModifierMoreDamage
	ModifierIncreaseDamage
	ModifierIncreaseAreaOfEffect

	ModifierKindCount
)

var modifierNames = [ModifierKindCount]string{
	ModifierBaseArmour:            "base_armour",
	ModifierMoreArmour:            "more_armour",
	ModifierIncreaseArmour:        "increase_armour",
	ModifierMoreLife:              "more_life",
	ModifierIncreaseMaxLife:       "increase_max_life",
	ModifierLifeRegen:             "life_regen",
	ModifierIncreaseMovementSpeed: "increase_movement_speed",
	ModifierIncreaseAttackSpeed:   "increase_attack_speed",
	ModifierPierceChance:          "pierce_chance",
	ModifierMoreDamage:            "more_damage",
	ModifierIncreaseDamage:        "increase_damage",
	ModifierIncreaseAreaOfEffect:  "increase_area_of_effect",
}

// String returns the snake_case name of the kind
func (k ModifierKind) String() string {
	if k >= ModifierKindCount {
		return fmt.Sprintf("modifier(%d)", uint8(k))
	}
	return modifierNames[k]
}

// IsValid reports whether the kind is one of the declared modifier kinds
func (k ModifierKind) IsValid() bool {
	return k < ModifierKindCount
}

// IsPercentage reports whether values of this kind are percentages
func (k ModifierKind) IsPercentage() bool {
	switch k {
	case ModifierIncreaseArmour, ModifierIncreaseMaxLife, ModifierIncreaseMovementSpeed,
		ModifierIncreaseAttackSpeed, ModifierPierceChance, ModifierIncreaseDamage,
		ModifierIncreaseAreaOfEffect:
		return true
	default:
		return false
	}
}

// ModifierKindFromString converts a snake_case name back into a kind
func ModifierKindFromString(s string) (ModifierKind, bool) {
	for i, name := range modifierNames {
		if name == s {
			return ModifierKind(i), true
		}
	}
	return 0, false
}

// Describe renders a rolled value of this kind as an item tooltip line
func (k ModifierKind) Describe(value float64) string {
	switch k {
	case ModifierBaseArmour:
		return fmt.Sprintf("%.0f base armour", value)
	case ModifierMoreArmour:
		return fmt.Sprintf("+%.0f armour", value)
	case ModifierIncreaseArmour:
		return fmt.Sprintf("+%.0f%% increased armour", value)
	case ModifierMoreLife:
		return fmt.Sprintf("+%.0f maximum life", value)
	case ModifierIncreaseMaxLife:
		return fmt.Sprintf("+%.0f%% increased maximum life", value)
	case ModifierLifeRegen:
		return fmt.Sprintf("regenerate %.0f life per second", value)
	case ModifierIncreaseMovementSpeed:
		return fmt.Sprintf("+%.0f%% increased movement speed", value)
	case ModifierIncreaseAttackSpeed:
		return fmt.Sprintf("+%.0f%% increased attack speed", value)
	case ModifierPierceChance:
		return fmt.Sprintf("+%.0f%% chance to pierce", value)
	case ModifierMoreDamage:
		return fmt.Sprintf("+%.0f damage", value)
	case ModifierIncreaseDamage:
		return fmt.Sprintf("+%.0f%% increased damage", value)
	case ModifierIncreaseAreaOfEffect:
		return fmt.Sprintf("+%.0f%% increased area of effect", value)
	default:
		return fmt.Sprintf("%s %.0f", k, value)
	}
}

// Modifier is a single typed value attached to a character, equipment or upgrade.
type Modifier struct {
	Kind  ModifierKind `json:"kind"`
	Value float64      `json:"value"`
}

// Add increases the modifier value in place
func (m *Modifier) Add(value float64) {
	m.Value += value
}

// String renders the modifier as a tooltip line
func (m Modifier) String() string {
	return m.Kind.Describe(m.Value)
}

// StatBlock sums modifier values by kind.
type StatBlock [ModifierKindCount]float64

// Add accumulates a value for the given kind. Unknown kinds are ignored.
func (b *StatBlock) Add(kind ModifierKind, value float64) {
	if !kind.IsValid() {
		return
	}
	b[kind] += value
}

// AddModifier accumulates a modifier's value
func (b *StatBlock) AddModifier(m Modifier) {
	b.Add(m.Kind, m.Value)
}

// Merge accumulates every value of other into b
func (b *StatBlock) Merge(other StatBlock) {
	for i := range b {
		b[i] += other[i]
	}
}

// Get returns the summed value for the kind
func (b StatBlock) Get(kind ModifierKind) float64 {
	if !kind.IsValid() {
		return 0
	}
	return b[kind]
}

// Multiplier returns 1 + value/100 for a percentage kind
func (b StatBlock) Multiplier(kind ModifierKind) float64 {
	return 1 + b.Get(kind)/100
}
