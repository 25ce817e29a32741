package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-forge/internal/combat"
	"github.com/KirkDiggler/rpg-forge/internal/engine/aggregate"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// Config holds the dependencies for the engine
type Config struct {
	World    *world.World
	Crafting crafting.Service
	Watcher  *inventory.Watcher
	// Clock measures real-time steps, defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Crafting == nil {
		vb.RequiredField("Crafting")
	}
	if c.Watcher == nil {
		vb.RequiredField("Watcher")
	}

	return vb.Build()
}

type engine struct {
	world    *world.World
	crafting crafting.Service
	watcher  *inventory.Watcher
	clock    clock.Clock
	tick     uint64
}

// New creates a new simulation engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &engine{
		world:    cfg.World,
		crafting: cfg.Crafting,
		watcher:  cfg.Watcher,
		clock:    c,
	}, nil
}

func (e *engine) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Delta < 0 {
		return nil, errors.InvalidArgumentf("delta must not be negative, got %s", input.Delta)
	}

	e.tick++
	output := &TickOutput{Tick: e.tick}

	crafted, err := e.crafting.ProcessPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "crafting stage failed")
	}
	output.Crafting = crafted

	observed, err := e.watcher.Observe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "inventory stage failed")
	}
	output.Inventory = observed

	aggregate.ResolveCharacterStats(e.world)
	combat.RegenerateLife(e.world, input.Delta)
	aggregate.ResolveWeaponStats(e.world)
	output.Attacks = e.advanceAttackTimers(input.Delta)

	return output, nil
}

func (e *engine) advanceAttackTimers(dt time.Duration) map[entities.SkillKind]int {
	attacks := make(map[entities.SkillKind]int)
	e.world.Each(world.KindWeapon, func(weapon *world.Entity) bool {
		if weapon.Weapon == nil {
			return true
		}
		owner, ok := e.world.Parent(weapon.ID())
		if !ok || owner.Character == nil || owner.Character.IsDead() {
			return true
		}
		if n := weapon.Weapon.AttackTimer.Tick(dt); n > 0 {
			attacks[weapon.Weapon.Skill] += n
		}
		return true
	})
	return attacks
}

func (e *engine) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ticks < 0 {
		return nil, errors.InvalidArgumentf("ticks must not be negative, got %d", input.Ticks)
	}
	if input.Delta <= 0 {
		return nil, errors.InvalidArgumentf("delta must be positive, got %s", input.Delta)
	}

	output := &RunOutput{Attacks: make(map[entities.SkillKind]int)}
	step := func(dt time.Duration) error {
		tick, err := e.Tick(ctx, &TickInput{Delta: dt})
		if err != nil {
			return err
		}
		output.Ticks++
		output.Elapsed += dt
		for skill, n := range tick.Attacks {
			output.Attacks[skill] += n
		}
		if input.OnTick != nil {
			input.OnTick(tick)
		}
		return nil
	}

	slog.InfoContext(ctx, "Simulation started",
		"ticks", input.Ticks,
		"delta", input.Delta,
		"realtime", input.Realtime)

	if !input.Realtime {
		for i := 0; i < input.Ticks; i++ {
			if err := ctx.Err(); err != nil {
				return output, errors.WrapWithCode(err, errors.CodeCanceled, "simulation interrupted")
			}
			if err := step(input.Delta); err != nil {
				return output, err
			}
		}
		slog.InfoContext(ctx, "Simulation finished", "ticks", output.Ticks)
		return output, nil
	}

	ticker := time.NewTicker(input.Delta)
	defer ticker.Stop()

	last := e.clock.Now()
	for output.Ticks < input.Ticks {
		select {
		case <-ctx.Done():
			return output, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "simulation interrupted")
		case <-ticker.C:
			now := e.clock.Now()
			dt := now.Sub(last)
			last = now
			if err := step(dt); err != nil {
				return output, err
			}
		}
	}

	slog.InfoContext(ctx, "Simulation finished",
		"ticks", output.Ticks,
		"elapsed", output.Elapsed)
	return output, nil
}
