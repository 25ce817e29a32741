package affixgen

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// Pool draws affix kinds proportionally to their weight without replacement.
// Drawn kinds keep their slot with a zero weight so the cumulative array stays stable.
type Pool struct {
	kinds      []entities.ModifierKind
	weights    []int
	cumulative []int
}

// NewPool weights every entry of the table for the given item level.
func NewPool(table Table, level int) *Pool {
	p := &Pool{
		kinds:      make([]entities.ModifierKind, len(table)),
		weights:    make([]int, len(table)),
		cumulative: make([]int, len(table)),
	}
	for i, entry := range table {
		p.kinds[i] = entry.Kind
		p.weights[i] = entry.Tiers.Weight(level)
	}
	p.rebuild()
	return p
}

func (p *Pool) rebuild() {
	running := 0
	for i, w := range p.weights {
		running += w
		p.cumulative[i] = running
	}
}

// Total returns the remaining sampling weight.
func (p *Pool) Total() int {
	if len(p.cumulative) == 0 {
		return 0
	}
	return p.cumulative[len(p.cumulative)-1]
}

// Remaining returns how many kinds can still be drawn.
func (p *Pool) Remaining() int {
	n := 0
	for _, w := range p.weights {
		if w > 0 {
			n++
		}
	}
	return n
}

// Weight returns the current weight of a kind, zero once drawn.
func (p *Pool) Weight(kind entities.ModifierKind) int {
	for i, k := range p.kinds {
		if k == kind {
			return p.weights[i]
		}
	}
	return 0
}

// Draw picks one kind and removes it from the pool. ok is false once the pool is exhausted.
func (p *Pool) Draw(roller dice.Roller) (kind entities.ModifierKind, ok bool, err error) {
	total := p.Total()
	if total <= 0 {
		return 0, false, nil
	}

	r, err := roller.Roll(total)
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to roll affix kind")
	}
	if r < 1 || r > total {
		return 0, false, errors.Internalf("roller returned %d outside [1, %d]", r, total)
	}

	// first slot whose running total reaches r; zero-weight slots never qualify
	i := sort.SearchInts(p.cumulative, r)
	kind = p.kinds[i]
	p.weights[i] = 0
	p.rebuild()
	return kind, true, nil
}
