// Package engine runs the forge simulation step. Each tick runs a fixed stage
// order: queued crafting, change notifications, the character phase of the
// stat pipeline, life regeneration, the weapon phase, then attack timers.
package engine

import (
	"context"
)

// Engine advances the simulation
type Engine interface {
	// Tick runs one simulation step
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
	// Run runs a number of steps, optionally paced in real time
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}
