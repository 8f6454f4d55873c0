// Package ports defines the persistence contracts of the housebuilder domain.
// Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"housebuilder/internal/core/domain/model/house"
	"housebuilder/internal/core/domain/model/kernel"
)

// HouseRepository defines the persistence contract for houses, whatever stage
// their construction has reached.
type HouseRepository interface {
	// Add persists a new house. The house must be valid and not stored yet.
	Add(ctx context.Context, h *house.House) error

	// Update persists the current fields of an existing house.
	Update(ctx context.Context, h *house.House) error

	// Get retrieves a house by identifier.
	// Returns errs.ObjectNotFoundError when no such house exists.
	Get(ctx context.Context, id kernel.UUID) (*house.House, error)

	// GetAllUnfinished retrieves every house that is not Complete, oldest first.
	// These are the queued orders the construction job picks up.
	GetAllUnfinished(ctx context.Context) ([]*house.House, error)
}
