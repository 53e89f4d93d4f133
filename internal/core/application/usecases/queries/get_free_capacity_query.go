package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var ErrGetFreeCapacityQueryIsNotConstructed = errors.New(
	"GetFreeCapacityQuery must be created via NewGetFreeCapacityQuery constructor",
)

// GetFreeCapacityQuery represents a request for the facility's capacity
// overview.
type GetFreeCapacityQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFreeCapacityQuery creates a query for the capacity overview.
func NewGetFreeCapacityQuery() GetFreeCapacityQuery {
	return GetFreeCapacityQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFreeCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeCapacityQueryIsNotConstructed)
}

// GetFreeCapacityQueryResponse is the capacity overview of one facility.
type GetFreeCapacityQueryResponse struct {
	FacilityName string
	FreeCapacity float64
	Locations    []LocationStatusResponse
}

// LocationStatusResponse describes the fill state of one storage location.
type LocationStatusResponse struct {
	ID                string
	Capacity          float64
	CurrentLoad       float64
	RemainingCapacity float64
	ItemCount         int
	LastUpdated       time.Time
}
