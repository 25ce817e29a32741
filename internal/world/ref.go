package world

import "github.com/KirkDiggler/rpg-toolkit/core"

// Ref identifies an entity to the rpg-toolkit event bus.
type Ref struct {
	ID   EntityID
	Kind EntityKind
}

// GetID returns the entity handle as a string
func (r Ref) GetID() string {
	return r.ID.String()
}

// GetType returns the entity kind as a string
func (r Ref) GetType() string {
	return r.Kind.String()
}

// RefID extracts the entity handle from a core.Entity produced by Ref.
func RefID(e core.Entity) (EntityID, bool) {
	if e == nil {
		return EntityID{}, false
	}
	if ref, ok := e.(Ref); ok {
		return ref.ID, true
	}
	id, err := ParseEntityID(e.GetID())
	if err != nil {
		return EntityID{}, false
	}
	return id, true
}

var _ core.Entity = Ref{}
