// Package combat is the damage boundary of the forge: it applies mitigated
// hits, regenerates life and resolves projectile pierces. Collision detection
// belongs to the caller.
package combat

import (
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

func characterOf(e *world.Entity) (*entities.CharacterStats, error) {
	if e == nil || e.Kind() != world.KindCharacter || e.Character == nil {
		return nil, errors.InvalidArgument("target is not a character")
	}
	return e.Character, nil
}

// ApplyHit mitigates damage through the target's armour and lowers its life.
// Life never drops below zero. Returns the damage dealt.
func ApplyHit(target *world.Entity, damage float64) (float64, error) {
	stats, err := characterOf(target)
	if err != nil {
		return 0, err
	}

	dealt := stats.Armour.Mitigate(damage)
	stats.Life = math.Max(0, stats.Life-dealt)
	return dealt, nil
}

// RegenerateLife adds LifeRegen per second to every living character, up to MaxLife
func RegenerateLife(w *world.World, dt time.Duration) {
	seconds := dt.Seconds()
	if seconds <= 0 {
		return
	}

	w.Each(world.KindCharacter, func(e *world.Entity) bool {
		stats := e.Character
		if stats == nil || stats.IsDead() || stats.LifeRegen <= 0 {
			return true
		}
		stats.Life = math.Min(stats.MaxLife.Value, stats.Life+stats.LifeRegen*seconds)
		return true
	})
}

// RollDamage rolls a whole value uniformly inside the range
func RollDamage(roller dice.Roller, r entities.DamageRange) (float64, error) {
	low := math.Ceil(r.Min)
	high := math.Floor(r.Max)
	if high <= low {
		return r.Min, nil
	}

	rolled, err := roller.Roll(int(high-low) + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll damage")
	}
	return low + float64(rolled-1), nil
}
