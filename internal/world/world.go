// Package world is the entity arena the forge simulation runs on: stable
// generation-checked handles, a parent/child index and a log of structural
// changes that observers drain once per tick.
package world

import (
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// ChangeKind classifies a structural mutation.
type ChangeKind uint8

const (
	ChangeAttached ChangeKind = iota + 1
	ChangeDetached
	ChangeDespawned
)

// Change records one structural mutation of the tree.
type Change struct {
	Kind       ChangeKind
	Entity     EntityID
	EntityKind EntityKind
	// Parent is the new parent for attachments, zero otherwise
	Parent EntityID
	// Previous is the parent the entity left, zero when it had none
	Previous EntityID
}

// World owns every entity. It is not safe for concurrent use; the simulation
// mutates it from a single goroutine.
type World struct {
	slots       []*Entity
	generations []uint32
	free        []uint32
	alive       int
	changes     []Change
}

// New constructs an empty world.
func New() *World {
	return &World{}
}

// Spawn allocates a new root entity of the given kind, recycling slots when possible.
func (w *World) Spawn(kind EntityKind) *Entity {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.slots = append(w.slots, nil)
	}

	w.generations[index]++
	e := &Entity{
		id:   EntityID{index: index, generation: w.generations[index]},
		kind: kind,
	}
	w.slots[index] = e
	w.alive++
	return e
}

// Get resolves a handle, failing for stale or unknown handles.
func (w *World) Get(id EntityID) (*Entity, bool) {
	if id.IsZero() || id.index >= uint32(len(w.slots)) {
		return nil, false
	}
	e := w.slots[id.index]
	if e == nil || e.id.generation != id.generation {
		return nil, false
	}
	return e, true
}

// IsAlive reports whether the handle refers to a live entity.
func (w *World) IsAlive(id EntityID) bool {
	_, ok := w.Get(id)
	return ok
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return w.alive
}

// Despawn removes the entity and its whole subtree. Returns false for stale handles.
func (w *World) Despawn(id EntityID) bool {
	e, ok := w.Get(id)
	if !ok {
		return false
	}

	previous := e.parent
	w.unlink(e)
	w.release(e)
	w.changes = append(w.changes, Change{
		Kind:       ChangeDespawned,
		Entity:     id,
		EntityKind: e.kind,
		Previous:   previous,
	})
	return true
}

func (w *World) release(e *Entity) {
	for _, childID := range e.children {
		if child, ok := w.Get(childID); ok {
			w.release(child)
		}
	}
	e.children = nil
	w.slots[e.id.index] = nil
	w.generations[e.id.index]++
	w.free = append(w.free, e.id.index)
	w.alive--
}

// Attach makes child a child of parent, detaching it from any previous parent.
func (w *World) Attach(childID, parentID EntityID) error {
	child, ok := w.Get(childID)
	if !ok {
		return errors.NotFoundf("entity %s not found", childID)
	}
	parent, ok := w.Get(parentID)
	if !ok {
		return errors.NotFoundf("parent %s not found", parentID)
	}
	if child.parent == parentID {
		return nil
	}
	for cursor := parent; cursor != nil; cursor = w.parentOf(cursor) {
		if cursor.id == childID {
			return errors.InvalidArgumentf("attaching %s under %s would create a cycle", childID, parentID)
		}
	}

	previous := child.parent
	w.unlink(child)
	child.parent = parentID
	parent.children = append(parent.children, childID)
	w.changes = append(w.changes, Change{
		Kind:       ChangeAttached,
		Entity:     childID,
		EntityKind: child.kind,
		Parent:     parentID,
		Previous:   previous,
	})
	return nil
}

// Detach turns the entity into a root.
func (w *World) Detach(childID EntityID) error {
	child, ok := w.Get(childID)
	if !ok {
		return errors.NotFoundf("entity %s not found", childID)
	}
	if child.parent.IsZero() {
		return nil
	}

	previous := child.parent
	w.unlink(child)
	w.changes = append(w.changes, Change{
		Kind:       ChangeDetached,
		Entity:     childID,
		EntityKind: child.kind,
		Previous:   previous,
	})
	return nil
}

func (w *World) unlink(child *Entity) {
	if parent := w.parentOf(child); parent != nil {
		for i, id := range parent.children {
			if id == child.id {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
	}
	child.parent = EntityID{}
}

func (w *World) parentOf(e *Entity) *Entity {
	if e.parent.IsZero() {
		return nil
	}
	parent, ok := w.Get(e.parent)
	if !ok {
		return nil
	}
	return parent
}

// Parent returns the entity's parent. The back-reference is lookup only.
func (w *World) Parent(id EntityID) (*Entity, bool) {
	e, ok := w.Get(id)
	if !ok {
		return nil, false
	}
	parent := w.parentOf(e)
	return parent, parent != nil
}

// Children resolves the live children of an entity in attachment order.
func (w *World) Children(id EntityID) []*Entity {
	e, ok := w.Get(id)
	if !ok || len(e.children) == 0 {
		return nil
	}
	children := make([]*Entity, 0, len(e.children))
	for _, childID := range e.children {
		if child, ok := w.Get(childID); ok {
			children = append(children, child)
		}
	}
	return children
}

// Each visits live entities of the given kind in slot order until fn returns false.
func (w *World) Each(kind EntityKind, fn func(*Entity) bool) {
	for _, e := range w.slots {
		if e == nil || e.kind != kind {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// DrainChanges returns the structural changes recorded since the last drain.
func (w *World) DrainChanges() []Change {
	changes := w.changes
	w.changes = nil
	return changes
}
