package queries

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
)

// GetStorageCostQueryHandler computes the projected storage cost for the
// whole catalog over the requested horizon.
type GetStorageCostQueryHandler struct {
	registry *inventory.Registry
}

// NewGetStorageCostQueryHandler creates a handler for storage cost queries.
func NewGetStorageCostQueryHandler(registry *inventory.Registry) GetStorageCostQueryHandler {
	return GetStorageCostQueryHandler{registry: registry}
}

// Handle executes the query.
// The result is the sum of each entry's polymorphic storage cost.
func (h GetStorageCostQueryHandler) Handle(_ context.Context, query GetStorageCostQuery) (float64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	return h.registry.ProjectedStorageCost(query.Days()), nil
}
