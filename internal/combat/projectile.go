package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Projectile is one fired hit. It snapshots its owner's pierce chance at launch
// and spends it hit by hit.
type Projectile struct {
	Owner  world.EntityID
	Skill  entities.SkillKind
	Damage float64
	Pierce entities.PierceChance
	// Spent is set once a hit fails to pierce
	Spent bool
	Hits  int
}

// HitResult describes one projectile impact
type HitResult struct {
	Dealt   float64
	Pierced bool
}

// Fire launches a projectile from a weapon entity carried by a character
func Fire(w *world.World, weapon *world.Entity, roller dice.Roller) (*Projectile, error) {
	if weapon == nil || weapon.Kind() != world.KindWeapon || weapon.Weapon == nil {
		return nil, errors.InvalidArgument("entity is not a weapon")
	}
	owner, ok := w.Parent(weapon.ID())
	if !ok || owner.Character == nil {
		return nil, errors.FailedPreconditionf("weapon %s is not carried by a character", weapon.ID())
	}

	damage, err := RollDamage(roller, weapon.Weapon.HitDamageRange)
	if err != nil {
		return nil, err
	}

	return &Projectile{
		Owner:  owner.ID(),
		Skill:  weapon.Weapon.Skill,
		Damage: damage,
		Pierce: owner.Character.PierceChance,
	}, nil
}

// Hit applies the projectile to a target and rolls for pierce. A projectile
// that does not pierce is spent and deals no further hits.
func (p *Projectile) Hit(target *world.Entity, roller dice.Roller) (HitResult, error) {
	if p.Spent {
		return HitResult{}, errors.FailedPrecondition("projectile is spent")
	}

	dealt, err := ApplyHit(target, p.Damage)
	if err != nil {
		return HitResult{}, err
	}
	p.Hits++

	pierced, err := p.Pierce.TryPierce(roller)
	if err != nil {
		return HitResult{}, errors.Wrap(err, "failed to roll pierce")
	}
	if !pierced {
		p.Spent = true
	}
	return HitResult{Dealt: dealt, Pierced: pierced}, nil
}
