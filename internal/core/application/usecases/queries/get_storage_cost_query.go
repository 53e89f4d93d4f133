package queries

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetStorageCostQueryIsNotConstructed = errors.New(
	"GetStorageCostQuery must be created via NewGetStorageCostQuery constructor",
)

// GetStorageCostQuery represents a request for the projected storage cost of
// the whole catalog over a number of days.
type GetStorageCostQuery struct { //nolint:recvcheck //using for validation
	days int

	guard guard.ConstructorGuard
}

// NewGetStorageCostQuery creates a query for the projected storage cost.
// The day count must be positive.
func NewGetStorageCostQuery(days int) (GetStorageCostQuery, error) {
	query := GetStorageCostQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDays(days); err != nil {
		return GetStorageCostQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStorageCostQuery) Validate() error {
	return q.guard.Validate(ErrGetStorageCostQueryIsNotConstructed)
}

// Days returns the projection horizon in days.
func (q GetStorageCostQuery) Days() int {
	return q.days
}

func (q *GetStorageCostQuery) setDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("days is invalid",
			fmt.Errorf("%d is not a positive day count", days))
	}

	q.days = days
	return nil
}
