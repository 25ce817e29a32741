package engine

import (
	"time"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/crafting"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/inventory"
)

// TickInput contains the step duration
type TickInput struct {
	Delta time.Duration
}

// TickOutput summarizes one step
type TickOutput struct {
	Tick      uint64
	Crafting  *crafting.ProcessPendingOutput
	Inventory *inventory.ObserveOutput
	// Attacks counts weapon attacks that became ready this step, per skill
	Attacks map[entities.SkillKind]int
}

// RunInput contains the run parameters
type RunInput struct {
	Ticks int
	Delta time.Duration
	// Realtime paces ticks on a ticker and measures each step with the clock
	Realtime bool
	// OnTick is called after every step, optional
	OnTick func(*TickOutput)
}

// RunOutput summarizes a run
type RunOutput struct {
	Ticks   int
	Elapsed time.Duration
	Attacks map[entities.SkillKind]int
}

// PlayerConfig describes the player character to spawn
type PlayerConfig struct {
	Name              string
	BaseLife          float64
	BaseMovementSpeed float64
	BaseArmour        float64
	Skills            []entities.SkillKind
}
