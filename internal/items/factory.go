// Package items is the item domain: equipment bases with their implicit stat,
// per-slot affix tables, orbs, passive upgrades and the display bundle the
// presentation layer draws.
package items

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-forge/internal/engine/affixgen"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/notify"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Config holds the dependencies for the factory
type Config struct {
	World       *world.World
	Generator   affixgen.Generator
	IDGenerator idgen.Generator
	// EventBus receives item_spawned notifications, optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Factory spawns and mutates item entities.
type Factory struct {
	world     *world.World
	generator affixgen.Generator
	idGen     idgen.Generator
	bus       events.EventBus
}

// NewFactory creates a new item factory
func NewFactory(cfg *Config) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Factory{
		world:     cfg.World,
		generator: cfg.Generator,
		idGen:     cfg.IDGenerator,
		bus:       cfg.EventBus,
	}, nil
}

// SpawnEquipment creates a Normal item with its implicit rolled and no affixes.
// The entity is a root; callers attach it to an inventory or a character.
func (f *Factory) SpawnEquipment(ctx context.Context, kind entities.EquipmentKind, level int) (*world.Entity, entities.Display, error) {
	base, ok := BaseOf(kind)
	if !ok {
		return nil, entities.Display{}, errors.InvalidArgumentf("unknown equipment kind %q", kind)
	}
	if level < 0 {
		return nil, entities.Display{}, errors.InvalidArgumentf("item level must not be negative, got %d", level)
	}

	implicit, err := f.generator.RollRange(base.ImplicitMin, base.ImplicitMax)
	if err != nil {
		return nil, entities.Display{}, errors.Wrapf(err, "failed to roll %s implicit", kind)
	}

	item := f.world.Spawn(world.KindEquipment)
	item.Name = base.Title
	item.Equipment = &entities.Equipment{
		ItemID:   f.idGen.Generate(),
		Kind:     kind,
		Level:    level,
		Rarity:   entities.RarityNormal,
		Implicit: entities.Modifier{Kind: base.Implicit, Value: float64(implicit)},
	}

	slog.DebugContext(ctx, "Spawned equipment",
		"item_id", item.Equipment.ItemID,
		"kind", kind,
		"item_level", level,
		"implicit", item.Equipment.Implicit.String())

	_ = notify.Publish(ctx, f.bus, entities.EventItemSpawned, item.Ref(), nil)
	return item, f.Describe(item), nil
}

// SpawnLoot creates a dropped item: a Normal item carrying its single affix.
func (f *Factory) SpawnLoot(ctx context.Context, kind entities.EquipmentKind, level int) (*world.Entity, entities.Display, error) {
	item, _, err := f.SpawnEquipment(ctx, kind, level)
	if err != nil {
		return nil, entities.Display{}, err
	}

	if err := f.GenerateAffixes(item, entities.RarityNormal, entities.RarityNormal.NAffix()); err != nil {
		f.world.Despawn(item.ID())
		return nil, entities.Display{}, err
	}
	return item, f.Describe(item), nil
}

// SpawnOrb creates a root orb entity
func (f *Factory) SpawnOrb(ctx context.Context, kind entities.OrbKind) (*world.Entity, entities.Display, error) {
	if !kind.IsValid() {
		return nil, entities.Display{}, errors.InvalidArgumentf("unknown orb kind %q", kind)
	}

	display := OrbDisplay(kind)
	orb := f.world.Spawn(world.KindOrb)
	orb.Name = display.Title
	orb.Orb = &entities.Orb{Kind: kind}

	_ = notify.Publish(ctx, f.bus, entities.EventItemSpawned, orb.Ref(), nil)
	return orb, display, nil
}

func equipmentOf(item *world.Entity) (*entities.Equipment, error) {
	if item == nil || item.Kind() != world.KindEquipment || item.Equipment == nil {
		return nil, errors.InvalidArgument("entity is not equipment")
	}
	return item.Equipment, nil
}

// RollAffixes draws count affixes from the item's table without touching the item
func (f *Factory) RollAffixes(item *world.Entity, count int) ([]affixgen.Affix, error) {
	equipment, err := equipmentOf(item)
	if err != nil {
		return nil, err
	}
	base, ok := BaseOf(equipment.Kind)
	if !ok {
		return nil, errors.Internalf("item %s has unknown kind %q", equipment.ItemID, equipment.Kind)
	}

	affixes, err := f.generator.Generate(base.Affixes, equipment.Level, count)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll affixes for %s", equipment.ItemID)
	}
	return affixes, nil
}

// ResetAffixes despawns every affix of the item and returns how many were removed
func (f *Factory) ResetAffixes(item *world.Entity) int {
	removed := 0
	for _, child := range f.world.Children(item.ID()) {
		if child.Kind() != world.KindModifier {
			continue
		}
		if f.world.Despawn(child.ID()) {
			removed++
		}
	}
	return removed
}

// AttachAffixes adds one modifier child per affix
func (f *Factory) AttachAffixes(item *world.Entity, affixes []affixgen.Affix) error {
	for _, affix := range affixes {
		modifier := affix.Modifier()
		child := f.world.Spawn(world.KindModifier)
		child.Name = affix.Kind.String()
		child.Modifier = &modifier
		if err := f.world.Attach(child.ID(), item.ID()); err != nil {
			f.world.Despawn(child.ID())
			return errors.Wrap(err, "failed to attach affix")
		}
	}
	return nil
}

// GenerateAffixes rolls count new affixes, attaches them and sets the rarity.
// Existing affixes are kept; callers reset first when they want a reroll.
func (f *Factory) GenerateAffixes(item *world.Entity, rarity entities.Rarity, count int) error {
	affixes, err := f.RollAffixes(item, count)
	if err != nil {
		return err
	}
	if err := f.AttachAffixes(item, affixes); err != nil {
		return err
	}
	item.Equipment.Rarity = rarity
	return nil
}

// Affixes returns the modifiers of the item's affix children in attachment order
func (f *Factory) Affixes(item *world.Entity) []entities.Modifier {
	var modifiers []entities.Modifier
	for _, child := range f.world.Children(item.ID()) {
		if child.Kind() == world.KindModifier && child.Modifier != nil {
			modifiers = append(modifiers, *child.Modifier)
		}
	}
	return modifiers
}

// Describe builds the display bundle of an equipment or orb entity
func (f *Factory) Describe(item *world.Entity) entities.Display {
	if item.Kind() == world.KindOrb && item.Orb != nil {
		return OrbDisplay(item.Orb.Kind)
	}

	equipment, err := equipmentOf(item)
	if err != nil {
		return entities.Display{TileIndex: -1, Title: item.Name}
	}
	base, _ := BaseOf(equipment.Kind)

	lines := []string{equipment.Implicit.String()}
	for _, modifier := range f.Affixes(item) {
		lines = append(lines, modifier.String())
	}

	return entities.Display{
		TileIndex:   base.TileIndex(equipment.Rarity),
		Title:       base.Title,
		Description: strings.Join(lines, "\n"),
	}
}
