package queries

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
)

// GetExpiringProductsQueryHandler retrieves warnings for perishable entries
// whose freshness status is critical or expired.
type GetExpiringProductsQueryHandler struct {
	registry *inventory.Registry
}

// NewGetExpiringProductsQueryHandler creates a handler for expiry queries.
func NewGetExpiringProductsQueryHandler(registry *inventory.Registry) GetExpiringProductsQueryHandler {
	return GetExpiringProductsQueryHandler{registry: registry}
}

// Handle executes the query.
// Returns one warning string per affected entry, in catalog insertion order.
func (h GetExpiringProductsQueryHandler) Handle(_ context.Context, query GetExpiringProductsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.registry.ExpiringWarnings(), nil
}
