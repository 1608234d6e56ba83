// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
// Provides methods for storing, retrieving, and querying carrier entities
// with their complete service catalogs.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	// The carrier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	// The carrier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	// Returns the complete carrier with its service catalog in
	// registration order.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetByName retrieves a carrier aggregate by its unique name.
	GetByName(ctx context.Context, name string) (*carrier.Carrier, error)

	// GetAll retrieves every carrier with its full service catalog.
	// Used by the batch assignment workflow, which evaluates all carriers
	// against all pending orders.
	GetAll(ctx context.Context) ([]*carrier.Carrier, error)
}
