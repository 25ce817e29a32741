package crafting

import (
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/world"
)

// ApplyInput defines the request for applying an orb to an item
type ApplyInput struct {
	Orb  world.EntityID
	Item world.EntityID
}

// ApplyOutput defines the response for applying an orb to an item
type ApplyOutput struct {
	Orb      entities.OrbKind
	Previous entities.Rarity
	Rarity   entities.Rarity
	Affixes  []entities.Modifier
	Display  entities.Display
}

// ProcessPendingOutput summarizes the activations handled in one tick
type ProcessPendingOutput struct {
	Applied  int
	Rejected int
	Failed   int
}

// transition is one row of the orb state machine
type transition struct {
	requires entities.Rarity
	reset    bool
	count    int
	next     entities.Rarity
}

// transitionFor returns the state machine row for an orb
func transitionFor(kind entities.OrbKind) (transition, bool) {
	switch kind {
	case entities.OrbTransmutation:
		return transition{
			requires: entities.RarityNormal,
			reset:    true,
			count:    entities.RarityMagic.NAffix(),
			next:     entities.RarityMagic,
		}, true
	case entities.OrbRegal:
		return transition{
			requires: entities.RarityMagic,
			count:    1,
			next:     entities.RarityRare,
		}, true
	case entities.OrbChaos:
		return transition{
			requires: entities.RarityRare,
			reset:    true,
			count:    entities.RarityRare.NAffix(),
			next:     entities.RarityRare,
		}, true
	default:
		return transition{}, false
	}
}
