package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// PlaceProductCommandHandler handles the business logic for slotting catalog
// entries into storage locations.
type PlaceProductCommandHandler struct {
	registry *inventory.Registry
	engine   *services.PlacementEngine
}

// NewPlaceProductCommandHandler creates a handler for placement operations.
func NewPlaceProductCommandHandler(
	registry *inventory.Registry,
	engine *services.PlacementEngine,
) PlaceProductCommandHandler {
	return PlaceProductCommandHandler{registry: registry, engine: engine}
}

// Handle processes the placement command and returns the identifier of the
// location that accepted the entry.
//
// Returns:
//   - an object-not-found error for unregistered identifiers
//   - services.ErrNoSuitableLocation if nothing in the facility fits
func (h PlaceProductCommandHandler) Handle(_ context.Context, cmd PlaceProductCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	p := h.registry.Get(cmd.ProductID())
	if p == nil {
		return "", errs.NewObjectNotFoundError("productId", cmd.ProductID())
	}

	loc, err := h.engine.Place(p)
	if err != nil {
		return "", err
	}

	return loc.ID(), nil
}
