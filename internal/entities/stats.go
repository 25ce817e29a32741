package entities

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

const (
	// pierceCost is the chance spent by one successful pierce
	pierceCost = 100

	// mitigationFactor shapes the armour diminishing-returns curve
	mitigationFactor = 5
)

// Armour is the resolved armour of a character or piece of equipment.
type Armour float64

// Mitigate reduces incoming damage with a diminishing-returns curve:
// 5·d² / (armour + 5·d). Zero armour returns the damage unchanged.
func (a Armour) Mitigate(damage float64) float64 {
	if damage <= 0 {
		return 0
	}
	denominator := float64(a) + mitigationFactor*damage
	if denominator <= 0 {
		return damage
	}
	return mitigationFactor * damage * damage / denominator
}

// String renders the armour value
func (a Armour) String() string {
	return fmt.Sprintf("%.0f", float64(a))
}

// PierceChance is an accumulated percentage; every full 100 guarantees a pierce.
type PierceChance float64

// TryPierce rolls over [0,100). On success it spends 100 points of chance and
// returns true. The residual is not clamped, a negative chance never succeeds.
func (p *PierceChance) TryPierce(roller dice.Roller) (bool, error) {
	rolled, err := roller.Roll(pierceCost)
	if err != nil {
		return false, err
	}
	roll := float64(rolled - 1)
	if roll < float64(*p) {
		*p -= pierceCost
		return true, nil
	}
	return false, nil
}

// String renders the chance as a percentage
func (p PierceChance) String() string {
	return fmt.Sprintf("%.0f%%", float64(p))
}

// MaxLife is the resolved life cap and the percentage that scaled it.
type MaxLife struct {
	Value    float64
	Increase float64
}

// MovementSpeed is the resolved movement speed and the percentage that scaled it.
type MovementSpeed struct {
	Value    float64
	Increase float64
}

// String renders the speed as "{value} +{percent}%"
func (m MovementSpeed) String() string {
	return fmt.Sprintf("%.0f +%.0f%%", m.Value, m.Increase)
}

// CharacterStats holds a character's base values and the derived stats the
// aggregation pipeline writes every tick.
type CharacterStats struct {
	BaseLife          float64
	BaseMovementSpeed float64
	BaseArmour        float64

	// Life is the current life pool. Combat lowers it, regeneration raises it
	// and the pipeline clamps it to MaxLife.
	Life float64

	MaxLife              MaxLife
	MovementSpeed        MovementSpeed
	Armour               Armour
	IncreaseAttackSpeed  float64
	PierceChance         PierceChance
	MoreDamage           float64
	IncreaseDamage       float64
	IncreaseAreaOfEffect float64
	LifeRegen            float64
}

// NewCharacterStats seeds a character at full life
func NewCharacterStats(baseLife, baseMovementSpeed, baseArmour float64) *CharacterStats {
	return &CharacterStats{
		BaseLife:          baseLife,
		BaseMovementSpeed: baseMovementSpeed,
		BaseArmour:        baseArmour,
		Life:              baseLife,
		MaxLife:           MaxLife{Value: baseLife},
		MovementSpeed:     MovementSpeed{Value: baseMovementSpeed},
		Armour:            Armour(baseArmour),
	}
}

// LifeString renders life as "{current}/{max} +{percent}%"
func (s *CharacterStats) LifeString() string {
	return fmt.Sprintf("%.0f/%.0f +%.0f%%", s.Life, s.MaxLife.Value, s.MaxLife.Increase)
}

// IsDead reports whether the life pool is exhausted
func (s *CharacterStats) IsDead() bool {
	return s.Life <= 0
}

// DamageRange is an inclusive hit damage interval.
type DamageRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Scale applies (v + flat) × multiplier to both ends of the range
func (r DamageRange) Scale(flat, multiplier float64) DamageRange {
	return DamageRange{
		Min: (r.Min + flat) * multiplier,
		Max: (r.Max + flat) * multiplier,
	}
}

// String renders the range as "{min}-{max}"
func (r DamageRange) String() string {
	return fmt.Sprintf("%.0f-%.0f", r.Min, r.Max)
}

// AttackSpeed is measured in attacks per second.
type AttackSpeed float64

// Period returns the time between two attacks, zero when the speed is not positive
func (a AttackSpeed) Period() time.Duration {
	if a <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(a))
}

// String renders the speed as attacks per second
func (a AttackSpeed) String() string {
	return fmt.Sprintf("%.2f/s", float64(a))
}

// AttackTimer is a repeating timer whose duration follows the attack speed.
type AttackTimer struct {
	Duration time.Duration
	Elapsed  time.Duration
}

// Tick advances the timer and reports how many attacks became ready
func (t *AttackTimer) Tick(dt time.Duration) int {
	if t.Duration <= 0 {
		return 0
	}
	t.Elapsed += dt
	fired := int(t.Elapsed / t.Duration)
	t.Elapsed -= time.Duration(fired) * t.Duration
	return fired
}

// WeaponStats holds a weapon skill's base values and the derived stats the
// weapon phase of the pipeline writes every tick.
type WeaponStats struct {
	Skill SkillKind

	BaseAttackSpeed    float64
	BaseHitDamage      DamageRange
	BaseDamageOverTime float64
	BaseAreaOfEffect   float64

	AttackSpeed    AttackSpeed
	AttackTimer    AttackTimer
	HitDamageRange DamageRange
	DamageOverTime float64
	AreaOfEffect   float64
}
