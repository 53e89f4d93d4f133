package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetInventoryReportQueryIsNotConstructed = errors.New(
	"GetInventoryReportQuery must be created via NewGetInventoryReportQuery constructor",
)

// GetInventoryReportQuery represents a request for the formatted inventory
// summary.
type GetInventoryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryReportQuery creates a query for the inventory report.
func NewGetInventoryReportQuery() GetInventoryReportQuery {
	return GetInventoryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryReportQueryIsNotConstructed)
}
