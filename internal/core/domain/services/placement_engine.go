package services

import (
	"errors"
	"log/slog"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/storage"
)

// ErrNoSuitableLocation is returned when no storage location can take a
// catalog entry. This occurs when the facility has no locations, when no
// location matches the entry's category and requirements, or when every
// matching location is out of capacity.
var ErrNoSuitableLocation = errors.New("no suitable location")

// PlacementEngine is a domain service responsible for slotting catalog
// entries into the storage locations of a facility.
//
// Business rules:
//   - Locations are scanned in facility insertion order
//   - The first suitable location wins; fill balance is not considered
//   - Suitability is decided entirely by the location (category match,
//     item-specific requirements, remaining capacity)
//
// Example usage:
//
//	engine := services.NewPlacementEngine(facility, logger)
//
//	location, err := engine.Place(entry)
//	if errors.Is(err, services.ErrNoSuitableLocation) {
//	    // Nothing in the facility can hold this entry
//	    return
//	}
type PlacementEngine struct {
	facility *storage.Facility
	logger   *slog.Logger
}

// NewPlacementEngine creates a placement engine over the given facility.
// A nil logger falls back to slog.Default().
func NewPlacementEngine(facility *storage.Facility, logger *slog.Logger) (*PlacementEngine, error) {
	if err := facility.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PlacementEngine{
		facility: facility,
		logger:   logger.With("component", "placement"),
	}, nil
}

// FindBestLocation returns the first location, in facility insertion order,
// that reports itself suitable for the entry. The entry is not placed.
//
// Returns:
//   - the matching location
//   - ErrNoSuitableLocation if no location can take the entry
func (e *PlacementEngine) FindBestLocation(p product.Product) (storage.Location, error) {
	if p == nil {
		return nil, product.ErrProductIsNotConstructed
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for _, loc := range e.facility.Locations() {
		if loc.IsSuitable(p) {
			return loc, nil
		}
	}

	return nil, ErrNoSuitableLocation
}

// Place finds the first suitable location and stores the entry there.
//
// Parameters:
//   - p: the catalog entry to place (must be valid)
//
// Returns:
//   - the location that accepted the entry
//   - ErrNoSuitableLocation if no location can take the entry
func (e *PlacementEngine) Place(p product.Product) (storage.Location, error) {
	loc, err := e.FindBestLocation(p)
	if err != nil {
		e.logger.Warn("placement failed", "productId", productID(p), "error", err)
		return nil, err
	}

	// IsSuitable passed inside FindBestLocation, so the add cannot refuse
	// unless the location changed concurrently. Treat a refusal as no fit.
	if !loc.AddItem(p) {
		return nil, ErrNoSuitableLocation
	}

	e.logger.Info("product placed", "productId", p.ID(), "locationId", loc.ID())
	return loc, nil
}

func productID(p product.Product) string {
	if p == nil {
		return ""
	}
	return p.ID()
}
