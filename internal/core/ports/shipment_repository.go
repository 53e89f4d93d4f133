package ports

import (
	"context"

	"warehouse/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id string) (*shipment.Shipment, error)

	// GetByOrderID retrieves the shipment created for the given order.
	GetByOrderID(ctx context.Context, orderID string) (*shipment.Shipment, error)
}
