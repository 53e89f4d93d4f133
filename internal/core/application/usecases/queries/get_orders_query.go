package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery represents a request for order summaries, optionally
// filtered by lifecycle status.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status    order.Status
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryWithStatus creates a query for orders in one status.
func NewGetOrdersQueryWithStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasFilter
}
