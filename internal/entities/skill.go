package entities

// SkillKind identifies a weapon skill a character can carry.
type SkillKind string

const (
	SkillShuriken  SkillKind = "shuriken"
	SkillFireball  SkillKind = "fireball"
	SkillDeathAura SkillKind = "death_aura"
)

// String returns the string representation of the skill
func (s SkillKind) String() string {
	return string(s)
}

// IsValid checks if the skill is known
func (s SkillKind) IsValid() bool {
	switch s {
	case SkillShuriken, SkillFireball, SkillDeathAura:
		return true
	default:
		return false
	}
}

// NewWeaponStats returns the base values of a skill
func NewWeaponStats(skill SkillKind) *WeaponStats {
	w := &WeaponStats{Skill: skill}
	switch skill {
	case SkillShuriken:
		w.BaseAttackSpeed = 1.5
		w.BaseHitDamage = DamageRange{Min: 2, Max: 5}
	case SkillFireball:
		w.BaseAttackSpeed = 0.8
		w.BaseHitDamage = DamageRange{Min: 6, Max: 12}
		w.BaseAreaOfEffect = 2
	case SkillDeathAura:
		w.BaseAttackSpeed = 1
		w.BaseDamageOverTime = 3
		w.BaseAreaOfEffect = 3
	}
	w.AttackSpeed = AttackSpeed(w.BaseAttackSpeed)
	w.AttackTimer.Duration = w.AttackSpeed.Period()
	w.HitDamageRange = w.BaseHitDamage
	w.DamageOverTime = w.BaseDamageOverTime
	w.AreaOfEffect = w.BaseAreaOfEffect
	return w
}
