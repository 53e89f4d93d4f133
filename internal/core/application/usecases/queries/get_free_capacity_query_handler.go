package queries

import (
	"context"

	"warehouse/internal/core/domain/model/storage"
)

// GetFreeCapacityQueryHandler projects the facility's locations into a
// capacity overview.
type GetFreeCapacityQueryHandler struct {
	facility *storage.Facility
}

// NewGetFreeCapacityQueryHandler creates a handler for capacity queries.
func NewGetFreeCapacityQueryHandler(facility *storage.Facility) GetFreeCapacityQueryHandler {
	return GetFreeCapacityQueryHandler{facility: facility}
}

// Handle executes the query.
// Locations appear in facility insertion order.
func (h GetFreeCapacityQueryHandler) Handle(
	_ context.Context,
	query GetFreeCapacityQuery,
) (GetFreeCapacityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFreeCapacityQueryResponse{}, err
	}

	locations := h.facility.Locations()
	statuses := make([]LocationStatusResponse, 0, len(locations))
	for _, loc := range locations {
		statuses = append(statuses, LocationStatusResponse{
			ID:                loc.ID(),
			Capacity:          loc.Capacity(),
			CurrentLoad:       loc.CurrentLoad(),
			RemainingCapacity: loc.RemainingCapacity(),
			ItemCount:         loc.ItemCount(),
			LastUpdated:       loc.LastUpdated(),
		})
	}

	return GetFreeCapacityQueryResponse{
		FacilityName: h.facility.Name(),
		FreeCapacity: h.facility.FreeCapacity(),
		Locations:    statuses,
	}, nil
}
