package items

import (
	"context"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/notify"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Snapshot captures an equipment entity in its persisted form
func (f *Factory) Snapshot(item *world.Entity, ownerID string) (*entities.ItemSnapshot, error) {
	equipment, err := equipmentOf(item)
	if err != nil {
		return nil, err
	}

	return &entities.ItemSnapshot{
		ItemID:   equipment.ItemID,
		OwnerID:  ownerID,
		Kind:     equipment.Kind,
		Level:    equipment.Level,
		Rarity:   equipment.Rarity,
		Implicit: equipment.Implicit,
		Affixes:  f.Affixes(item),
	}, nil
}

// Restore rebuilds a root equipment entity from a snapshot
func (f *Factory) Restore(ctx context.Context, snapshot *entities.ItemSnapshot) (*world.Entity, error) {
	if snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	base, ok := BaseOf(snapshot.Kind)
	if !ok {
		return nil, errors.InvalidArgumentf("snapshot %s has unknown kind %q", snapshot.ItemID, snapshot.Kind)
	}
	for _, affix := range snapshot.Affixes {
		if !affix.Kind.IsValid() {
			return nil, errors.InvalidArgumentf("snapshot %s has unknown modifier %d", snapshot.ItemID, affix.Kind)
		}
	}

	item := f.world.Spawn(world.KindEquipment)
	item.Name = base.Title
	item.Equipment = &entities.Equipment{
		ItemID:   snapshot.ItemID,
		Kind:     snapshot.Kind,
		Level:    snapshot.Level,
		Rarity:   snapshot.Rarity,
		Implicit: snapshot.Implicit,
	}

	for _, affix := range snapshot.Affixes {
		modifier := affix
		child := f.world.Spawn(world.KindModifier)
		child.Name = modifier.Kind.String()
		child.Modifier = &modifier
		if err := f.world.Attach(child.ID(), item.ID()); err != nil {
			f.world.Despawn(item.ID())
			f.world.Despawn(child.ID())
			return nil, errors.Wrap(err, "failed to restore affix")
		}
	}

	_ = notify.Publish(ctx, f.bus, entities.EventItemSpawned, item.Ref(), nil)
	return item, nil
}
