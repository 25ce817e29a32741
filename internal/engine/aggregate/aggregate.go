// Package aggregate is the stat aggregation pipeline. Every tick it rebuilds
// derived stats from the modifier tree in two phases: characters first, then
// the weapons that read their character's resolved stats.
//
// Each stat follows the same stage order: reset, init from base, additive
// pass over direct children, then one multiplicative pass.
package aggregate

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Resolve runs both phases in order
func Resolve(w *world.World) {
	ResolveCharacterStats(w)
	ResolveWeaponStats(w)
}

// ResolveCharacterStats resolves every equipment entity's local stats, then
// every character from its direct children.
func ResolveCharacterStats(w *world.World) {
	w.Each(world.KindEquipment, func(e *world.Entity) bool {
		if e.Equipment != nil {
			resolveEquipment(w, e)
		}
		return true
	})

	w.Each(world.KindCharacter, func(e *world.Entity) bool {
		if e.Character != nil {
			resolveCharacter(w, e)
		}
		return true
	})
}

// localArmourKinds stay on the item that rolled them; the wearer only sees the resolved Armour
var localArmourKinds = []entities.ModifierKind{
	entities.ModifierBaseArmour,
	entities.ModifierMoreArmour,
	entities.ModifierIncreaseArmour,
}

func resolveEquipment(w *world.World, e *world.Entity) {
	equipment := e.Equipment

	var block entities.StatBlock
	block.AddModifier(equipment.Implicit)
	for _, child := range w.Children(e.ID()) {
		if child.Kind() == world.KindModifier && child.Modifier != nil {
			block.AddModifier(*child.Modifier)
		}
	}

	armour := block.Get(entities.ModifierBaseArmour) + block.Get(entities.ModifierMoreArmour)
	equipment.Armour = entities.Armour(armour * block.Multiplier(entities.ModifierIncreaseArmour))

	for _, kind := range localArmourKinds {
		block[kind] = 0
	}
	equipment.Contribution = block
}

func resolveCharacter(w *world.World, e *world.Entity) {
	stats := e.Character

	var direct entities.StatBlock
	var equipmentArmour float64
	for _, child := range w.Children(e.ID()) {
		switch child.Kind() {
		case world.KindModifier, world.KindUpgrade:
			if child.Modifier != nil {
				direct.AddModifier(*child.Modifier)
			}
		case world.KindEquipment:
			if child.Equipment != nil {
				equipmentArmour += float64(child.Equipment.Armour)
				direct.Merge(child.Equipment.Contribution)
			}
		}
	}

	// life
	stats.MaxLife = entities.MaxLife{}
	stats.MaxLife.Value = stats.BaseLife
	stats.MaxLife.Value += direct.Get(entities.ModifierMoreLife)
	stats.MaxLife.Increase = direct.Get(entities.ModifierIncreaseMaxLife)
	stats.MaxLife.Value *= direct.Multiplier(entities.ModifierIncreaseMaxLife)
	if stats.Life > stats.MaxLife.Value {
		stats.Life = stats.MaxLife.Value
	}

	// armour: equipment hands over its already resolved armour as a flat addend
	armour := stats.BaseArmour + direct.Get(entities.ModifierBaseArmour)
	armour += equipmentArmour + direct.Get(entities.ModifierMoreArmour)
	stats.Armour = entities.Armour(armour * direct.Multiplier(entities.ModifierIncreaseArmour))

	// movement speed
	stats.MovementSpeed = entities.MovementSpeed{}
	stats.MovementSpeed.Value = stats.BaseMovementSpeed
	stats.MovementSpeed.Increase = direct.Get(entities.ModifierIncreaseMovementSpeed)
	stats.MovementSpeed.Value *= direct.Multiplier(entities.ModifierIncreaseMovementSpeed)

	// pure sums
	stats.IncreaseAttackSpeed = direct.Get(entities.ModifierIncreaseAttackSpeed)
	stats.PierceChance = entities.PierceChance(direct.Get(entities.ModifierPierceChance))
	stats.MoreDamage = direct.Get(entities.ModifierMoreDamage)
	stats.IncreaseDamage = direct.Get(entities.ModifierIncreaseDamage)
	stats.IncreaseAreaOfEffect = direct.Get(entities.ModifierIncreaseAreaOfEffect)
	stats.LifeRegen = direct.Get(entities.ModifierLifeRegen)
}

// ResolveWeaponStats resolves every weapon from its parent character's
// resolved stats. A weapon without a character parent keeps its previous values.
func ResolveWeaponStats(w *world.World) {
	w.Each(world.KindWeapon, func(e *world.Entity) bool {
		if e.Weapon == nil {
			return true
		}
		parent, ok := w.Parent(e.ID())
		if !ok || parent.Kind() != world.KindCharacter || parent.Character == nil {
			slog.Debug("Weapon has no character, skipping",
				"entity", e.ID().String(),
				"skill", e.Weapon.Skill)
			return true
		}
		resolveWeapon(e.Weapon, parent.Character)
		return true
	})
}

func resolveWeapon(weapon *entities.WeaponStats, owner *entities.CharacterStats) {
	speed := weapon.BaseAttackSpeed * (1 + owner.IncreaseAttackSpeed/100)
	weapon.AttackSpeed = entities.AttackSpeed(speed)
	weapon.AttackTimer.Duration = weapon.AttackSpeed.Period()

	damage := 1 + owner.IncreaseDamage/100
	weapon.HitDamageRange = entities.DamageRange{}
	if weapon.BaseHitDamage != (entities.DamageRange{}) {
		weapon.HitDamageRange = weapon.BaseHitDamage.Scale(owner.MoreDamage, damage)
	}
	weapon.DamageOverTime = 0
	if weapon.BaseDamageOverTime > 0 {
		weapon.DamageOverTime = (weapon.BaseDamageOverTime + owner.MoreDamage) * damage
	}

	weapon.AreaOfEffect = weapon.BaseAreaOfEffect * (1 + owner.IncreaseAreaOfEffect/100)
}
