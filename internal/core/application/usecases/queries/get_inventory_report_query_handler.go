package queries

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
)

// GetInventoryReportQueryHandler produces the formatted inventory summary:
// header with the current date, per-category totals, and one description
// line per catalog entry.
type GetInventoryReportQueryHandler struct {
	registry *inventory.Registry
}

// NewGetInventoryReportQueryHandler creates a handler for report queries.
func NewGetInventoryReportQueryHandler(registry *inventory.Registry) GetInventoryReportQueryHandler {
	return GetInventoryReportQueryHandler{registry: registry}
}

// Handle executes the query and returns the report text.
func (h GetInventoryReportQueryHandler) Handle(_ context.Context, query GetInventoryReportQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	return h.registry.GenerateReport(), nil
}
