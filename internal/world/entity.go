package world

import (
	"fmt"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// EntityID identifies an entity and encodes a generation for stale-handle detection.
type EntityID struct {
	index      uint32
	generation uint32
}

// Index returns the backing index of the entity.
func (id EntityID) Index() uint32 {
	return id.index
}

// Generation returns the generation counter associated with the entity.
func (id EntityID) Generation() uint32 {
	return id.generation
}

// IsZero reports whether the identifier is the zero value.
func (id EntityID) IsZero() bool {
	return id.index == 0 && id.generation == 0
}

// String renders the entity identifier for debugging purposes.
func (id EntityID) String() string {
	return fmt.Sprintf("EntityID(%d:%d)", id.index, id.generation)
}

// ParseEntityID reverses String.
func ParseEntityID(s string) (EntityID, error) {
	var index, generation uint32
	if _, err := fmt.Sscanf(s, "EntityID(%d:%d)", &index, &generation); err != nil {
		return EntityID{}, fmt.Errorf("parse entity id %q: %w", s, err)
	}
	return EntityID{index: index, generation: generation}, nil
}

// EntityKind tags what an entity represents.
type EntityKind uint8

const (
	KindCharacter EntityKind = iota + 1
	KindInventory
	KindEquipment
	KindModifier
	KindUpgrade
	KindWeapon
	KindOrb
)

// String returns the string representation of the kind
func (k EntityKind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindInventory:
		return "inventory"
	case KindEquipment:
		return "equipment"
	case KindModifier:
		return "modifier"
	case KindUpgrade:
		return "upgrade"
	case KindWeapon:
		return "weapon"
	case KindOrb:
		return "orb"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Entity is a node of the world tree. Exactly the payload matching Kind is set;
// Modifier and Upgrade entities both carry a Modifier.
type Entity struct {
	id       EntityID
	kind     EntityKind
	parent   EntityID
	children []EntityID

	Name   string
	Player bool

	Character *entities.CharacterStats
	Equipment *entities.Equipment
	Modifier  *entities.Modifier
	Weapon    *entities.WeaponStats
	Orb       *entities.Orb
}

// ID returns the entity handle
func (e *Entity) ID() EntityID {
	return e.id
}

// Kind returns the entity kind
func (e *Entity) Kind() EntityKind {
	return e.kind
}

// Parent returns the parent handle, zero when the entity is a root
func (e *Entity) Parent() EntityID {
	return e.parent
}

// Children returns the child handles in attachment order. The slice must not be modified.
func (e *Entity) Children() []EntityID {
	return e.children
}

// Ref returns a core.Entity view of the entity
func (e *Entity) Ref() Ref {
	return Ref{ID: e.id, Kind: e.kind}
}
