package engine

import (
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// SpawnPlayer creates the player character with an empty inventory and one
// weapon child per skill
func SpawnPlayer(w *world.World, cfg *PlayerConfig) (*world.Entity, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", cfg.Name, vb)
	errors.ValidatePositive("BaseLife", cfg.BaseLife, vb)
	for _, skill := range cfg.Skills {
		if !skill.IsValid() {
			vb.InvalidField("Skills", "unknown skill "+skill.String())
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	player := w.Spawn(world.KindCharacter)
	player.Name = cfg.Name
	player.Player = true
	player.Character = entities.NewCharacterStats(cfg.BaseLife, cfg.BaseMovementSpeed, cfg.BaseArmour)

	bag := w.Spawn(world.KindInventory)
	bag.Name = "inventory"
	if err := w.Attach(bag.ID(), player.ID()); err != nil {
		return nil, err
	}

	for _, skill := range cfg.Skills {
		weapon := w.Spawn(world.KindWeapon)
		weapon.Name = skill.String()
		weapon.Weapon = entities.NewWeaponStats(skill)
		if err := w.Attach(weapon.ID(), player.ID()); err != nil {
			return nil, err
		}
	}

	return player, nil
}

// InventoryOf returns the inventory container of a character
func InventoryOf(w *world.World, character *world.Entity) (*world.Entity, error) {
	for _, child := range w.Children(character.ID()) {
		if child.Kind() == world.KindInventory {
			return child, nil
		}
	}
	return nil, errors.NotFoundf("character %s has no inventory", character.ID())
}

// Equipped returns the equipment worn in a slot, nil when the slot is empty
func Equipped(w *world.World, character *world.Entity, slot entities.EquipmentSlot) *world.Entity {
	for _, child := range w.Children(character.ID()) {
		if child.Kind() == world.KindEquipment && child.Equipment != nil && child.Equipment.Slot() == slot {
			return child
		}
	}
	return nil
}
