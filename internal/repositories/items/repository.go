// Package items provides persistence for item snapshots
package items

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/KirkDiggler/rpg-forge/internal/repositories/items Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Repository defines the interface for item snapshot persistence
type Repository interface {
	// Save creates or replaces an item snapshot and indexes it by owner
	// Returns errors.InvalidArgument for missing snapshot or item ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves an item snapshot by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes an item snapshot and its owner index entry
	// Returns errors.NotFound if the item doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves every item snapshot held by an owner
	// Returns errors.InvalidArgument for empty owner IDs
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// SaveInput defines the input for saving an item
type SaveInput struct {
	Snapshot *entities.ItemSnapshot
}

// SaveOutput defines the output for saving an item
type SaveOutput struct {
	Snapshot *entities.ItemSnapshot
}

// GetInput defines the input for getting an item
type GetInput struct {
	ItemID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Snapshot *entities.ItemSnapshot
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ItemID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's items
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's items
type ListByOwnerOutput struct {
	Snapshots []*entities.ItemSnapshot
}
