package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns a fixed sequence of rolls. Each scripted value is
// clamped into [1, size] so one script works against any die size. Once the
// script runs out every roll returns 1.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	sizes []int
}

// NewScriptedRoller creates a roller that replays rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	value := 1
	if len(r.rolls) > 0 {
		value = r.rolls[0]
		r.rolls = r.rolls[1:]
	}
	if value < 1 {
		value = 1
	}
	if value > size {
		value = size
	}
	return value, nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Remaining returns how many scripted rolls are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls)
}

var _ dice.Roller = (*ScriptedRoller)(nil)
