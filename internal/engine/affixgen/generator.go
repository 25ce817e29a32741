// Package affixgen rolls item affixes: it draws distinct modifier kinds from a
// level-gated weighted pool and rolls a tier and a value for each of them.
package affixgen

//go:generate mockgen -destination=mock/mock_generator.go -package=affixgenmock github.com/KirkDiggler/rpg-forge/internal/engine/affixgen Generator

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// Affix is one rolled affix.
type Affix struct {
	Kind entities.ModifierKind
	// Tier is the index of the tier the value was rolled from
	Tier  int
	Value int
}

// Modifier returns the affix as a modifier component
func (a Affix) Modifier() entities.Modifier {
	return entities.Modifier{Kind: a.Kind, Value: float64(a.Value)}
}

// Generator produces affixes from a table.
type Generator interface {
	// Generate draws up to count distinct kinds from the table and rolls each one.
	// Fewer affixes are returned when the table runs out of weighted kinds.
	Generate(table Table, level, count int) ([]Affix, error)
	// RollTier picks a tier uniformly among the unlocked tiers and rolls a value in it.
	RollTier(tiers TierTable, level int) (tier, value int, err error)
	// RollRange rolls uniformly in [min, max] inclusive.
	RollRange(minValue, maxValue int) (int, error)
}

// Config holds the dependencies for the generator
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type generator struct {
	roller dice.Roller
}

// NewGenerator creates a new affix generator
func NewGenerator(cfg *Config) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &generator{roller: cfg.Roller}, nil
}

func (g *generator) Generate(table Table, level, count int) ([]Affix, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("affix count must not be negative, got %d", count)
	}
	if level < 0 {
		return nil, errors.InvalidArgumentf("item level must not be negative, got %d", level)
	}

	pool := NewPool(table, level)
	affixes := make([]Affix, 0, count)
	for len(affixes) < count {
		kind, ok, err := pool.Draw(g.roller)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Debug("Affix pool exhausted",
				"requested", count,
				"drawn", len(affixes),
				"item_level", level)
			break
		}

		tiers, _ := table.Lookup(kind)
		tier, value, err := g.RollTier(tiers, level)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", kind)
		}
		affixes = append(affixes, Affix{Kind: kind, Tier: tier, Value: value})
	}

	return affixes, nil
}

func (g *generator) RollTier(tiers TierTable, level int) (int, int, error) {
	highest := tiers.Unlocked(level)

	tier := 0
	if highest > 0 {
		rolled, err := g.roller.Roll(highest + 1)
		if err != nil {
			return 0, 0, errors.Wrap(err, "failed to roll tier")
		}
		tier = rolled - 1
	}

	value, err := g.RollRange(tiers[tier].Min, tiers[tier].Max)
	if err != nil {
		return 0, 0, err
	}
	return tier, value, nil
}

func (g *generator) RollRange(minValue, maxValue int) (int, error) {
	if minValue > maxValue {
		return 0, errors.InvalidArgumentf("invalid range [%d, %d]", minValue, maxValue)
	}
	if minValue == maxValue {
		return minValue, nil
	}

	rolled, err := g.roller.Roll(maxValue - minValue + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll value")
	}
	return minValue + rolled - 1, nil
}
