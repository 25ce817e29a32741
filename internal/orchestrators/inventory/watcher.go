// Package inventory observes structural changes of the world and turns them
// into the "inventory changed" and "player equipment changed" notifications
// presentation layers refresh on. Equip and unequip are plain attach and
// detach calls on the world; nothing here exposes an equip operation.
package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/notify"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Config holds the dependencies for the watcher
type Config struct {
	World    *world.World
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// ObserveOutput reports which notifications one observation raised
type ObserveOutput struct {
	Changes                int
	InventoryChanged       bool
	PlayerEquipmentChanged bool
}

// Watcher drains the world's change log once per tick.
type Watcher struct {
	world *world.World
	bus   events.EventBus
}

// NewWatcher creates a new inventory watcher
func NewWatcher(cfg *Config) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Watcher{
		world: cfg.World,
		bus:   cfg.EventBus,
	}, nil
}

// FindPlayer returns the single player character
func FindPlayer(w *world.World) (*world.Entity, error) {
	var players []*world.Entity
	w.Each(world.KindCharacter, func(e *world.Entity) bool {
		if e.Player {
			players = append(players, e)
		}
		return true
	})

	switch len(players) {
	case 0:
		return nil, errors.NotFound("no player character")
	case 1:
		return players[0], nil
	default:
		return nil, errors.FailedPreconditionf("expected one player character, found %d", len(players))
	}
}

func isItem(kind world.EntityKind) bool {
	switch kind {
	case world.KindEquipment, world.KindWeapon, world.KindOrb:
		return true
	default:
		return false
	}
}

// Observe drains pending changes and publishes each notification at most once.
// Orb consumption is reported by crafting, so despawned orbs are ignored here.
func (w *Watcher) Observe(ctx context.Context) (*ObserveOutput, error) {
	changes := w.world.DrainChanges()
	output := &ObserveOutput{Changes: len(changes)}
	if len(changes) == 0 {
		return output, nil
	}

	var playerID world.EntityID
	var source core.Entity
	player, err := FindPlayer(w.world)
	if err != nil {
		slog.DebugContext(ctx, "No single player, equipment changes not tracked", "error", err)
	} else {
		playerID = player.ID()
		source = player.Ref()
	}

	for _, change := range changes {
		if !isItem(change.EntityKind) {
			continue
		}
		if change.Kind == world.ChangeDespawned && change.EntityKind == world.KindOrb {
			continue
		}

		output.InventoryChanged = true
		if change.EntityKind != world.KindOrb && !playerID.IsZero() &&
			(change.Parent == playerID || change.Previous == playerID) {
			output.PlayerEquipmentChanged = true
		}
	}

	if output.InventoryChanged {
		if err := notify.Publish(ctx, w.bus, entities.EventInventoryChanged, source, nil); err != nil {
			return output, errors.Wrap(err, "failed to publish inventory change")
		}
	}
	if output.PlayerEquipmentChanged {
		slog.DebugContext(ctx, "Player equipment changed", "player", playerID.String())
		if err := notify.Publish(ctx, w.bus, entities.EventPlayerEquipmentChanged, source, nil); err != nil {
			return output, errors.Wrap(err, "failed to publish equipment change")
		}
	}

	return output, nil
}
