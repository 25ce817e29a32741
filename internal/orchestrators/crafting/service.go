// Package crafting implements the orb crafting state machine. Orbs move an
// item's rarity forward (Normal, Magic, Rare) and reroll or extend its affixes.
// An orb that does not match the item's rarity is rejected and kept.
package crafting

//go:generate mockgen -destination=mock/mock_service.go -package=craftingmock github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/items"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/notify"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Service defines the interface for orb crafting
type Service interface {
	// Apply consumes the orb against the item right away
	Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error)
	// HandleActivation queues an orb activation raised on the event bus
	HandleActivation(ctx context.Context, event events.Event) error
	// ProcessPending applies every queued activation in arrival order
	ProcessPending(ctx context.Context) (*ProcessPendingOutput, error)
	// Pending returns the number of queued activations
	Pending() int
}

// Config holds the dependencies for the crafting service
type Config struct {
	World *world.World
	Items *items.Factory
	// EventBus delivers activations and receives change notifications, optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}

	return vb.Build()
}

type service struct {
	world   *world.World
	items   *items.Factory
	bus     events.EventBus
	pending []ApplyInput
}

// NewService creates a new crafting service and subscribes it to orb activations
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &service{
		world: cfg.World,
		items: cfg.Items,
		bus:   cfg.EventBus,
	}
	if s.bus != nil {
		s.bus.SubscribeFunc(entities.EventOrbActivate, 0, s.HandleActivation)
	}
	return s, nil
}

// Activate raises an orb activation for the crafting service to pick up on the next tick
func Activate(ctx context.Context, bus events.EventBus, orb, item *world.Entity) error {
	if bus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return notify.Publish(ctx, bus, entities.EventOrbActivate, orb.Ref(), item.Ref())
}

func (s *service) Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	orb, ok := s.world.Get(input.Orb)
	if !ok {
		return nil, errors.NotFoundf("orb %s not found", input.Orb)
	}
	if orb.Kind() != world.KindOrb || orb.Orb == nil {
		return nil, errors.InvalidArgumentf("entity %s is not an orb", input.Orb)
	}
	item, ok := s.world.Get(input.Item)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", input.Item)
	}
	if item.Kind() != world.KindEquipment || item.Equipment == nil {
		return nil, errors.InvalidArgumentf("entity %s is not equipment", input.Item)
	}

	kind := orb.Orb.Kind
	step, ok := transitionFor(kind)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown orb kind %q", kind)
	}

	previous := item.Equipment.Rarity
	if previous != step.requires {
		slog.WarnContext(ctx, "Orb rejected",
			"orb", kind,
			"item_id", item.Equipment.ItemID,
			"rarity", previous,
			"requires", step.requires)
		_ = notify.Publish(ctx, s.bus, entities.EventOrbRejected, orb.Ref(), item.Ref())

		return nil, errors.FailedPreconditionf("%s orb requires a %s item, got %s", kind, step.requires, previous).
			WithMeta("orb", kind.String()).
			WithMeta("rarity", previous.String())
	}

	// roll before touching the item so a failed roll leaves it as it was
	affixes, err := s.items.RollAffixes(item, step.count)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s orb", kind)
	}

	if step.reset {
		s.items.ResetAffixes(item)
	}
	if err := s.items.AttachAffixes(item, affixes); err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s orb", kind)
	}
	item.Equipment.Rarity = step.next
	s.world.Despawn(orb.ID())

	slog.InfoContext(ctx, "Orb applied",
		"orb", kind,
		"item_id", item.Equipment.ItemID,
		"from", previous,
		"to", step.next,
		"affixes", len(affixes))

	_ = notify.Publish(ctx, s.bus, entities.EventInventoryChanged, orb.Ref(), item.Ref())
	_ = notify.Publish(ctx, s.bus, entities.EventPlayerEquipmentChanged, orb.Ref(), item.Ref())

	return &ApplyOutput{
		Orb:      kind,
		Previous: previous,
		Rarity:   step.next,
		Affixes:  s.items.Affixes(item),
		Display:  s.items.Describe(item),
	}, nil
}

func (s *service) HandleActivation(ctx context.Context, event events.Event) error {
	orbID, ok := world.RefID(event.Source())
	if !ok {
		slog.WarnContext(ctx, "Orb activation without orb, dropping", "event", event.Type())
		return nil
	}
	itemID, ok := world.RefID(event.Target())
	if !ok {
		slog.WarnContext(ctx, "Orb activation without target, dropping",
			"event", event.Type(),
			"orb", orbID.String())
		return nil
	}

	s.pending = append(s.pending, ApplyInput{Orb: orbID, Item: itemID})
	return nil
}

func (s *service) ProcessPending(ctx context.Context) (*ProcessPendingOutput, error) {
	output := &ProcessPendingOutput{}
	queue := s.pending
	s.pending = nil

	for i, request := range queue {
		if err := ctx.Err(); err != nil {
			s.pending = append(queue[i:], s.pending...)
			return output, errors.WrapWithCode(err, errors.CodeCanceled, "crafting interrupted")
		}

		_, err := s.Apply(ctx, &request)
		switch {
		case err == nil:
			output.Applied++
		case errors.IsFailedPrecondition(err):
			output.Rejected++
		default:
			output.Failed++
			slog.ErrorContext(ctx, "Orb activation failed",
				"orb", request.Orb.String(),
				"item", request.Item.String(),
				"error", err)
		}
	}

	return output, nil
}

func (s *service) Pending() int {
	return len(s.pending)
}
