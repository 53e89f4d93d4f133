package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetExpiringProductsQueryIsNotConstructed = errors.New(
	"GetExpiringProductsQuery must be created via NewGetExpiringProductsQuery constructor",
)

// GetExpiringProductsQuery represents a request for warnings about
// perishable entries that are close to or past their expiry date.
type GetExpiringProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetExpiringProductsQuery creates a query for expiry warnings.
func NewGetExpiringProductsQuery() GetExpiringProductsQuery {
	return GetExpiringProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetExpiringProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiringProductsQueryIsNotConstructed)
}
