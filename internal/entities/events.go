package entities

// Event types published on the rpg-toolkit event bus.
const (
	// EventOrbActivate is raised by collaborators: source is the orb, target the item
	EventOrbActivate = "forge.orb_activate"
	// EventOrbRejected fires when an orb does not match the item rarity
	EventOrbRejected = "forge.orb_rejected"
	// EventInventoryChanged fires after any structural inventory mutation
	EventInventoryChanged = "forge.inventory_changed"
	// EventPlayerEquipmentChanged fires after the player's equipment changes
	EventPlayerEquipmentChanged = "forge.player_equipment_changed"
	// EventItemSpawned fires when an item entity is created
	EventItemSpawned = "forge.item_spawned"
)
