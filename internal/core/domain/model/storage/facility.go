package storage

import (
	"errors"
	"sync"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrFacilityIsNotConstructed is returned when a Facility instance was not
// created through the NewFacility constructor.
var ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")

// Facility is a named, ordered collection of storage locations forming one
// warehouse. Insertion order is preserved; it is the tie-break order for
// first-fit placement.
//
// Duplicate location identifiers are permitted. FindByID scans linearly and
// returns the last matching location.
//
// Safe for concurrent use; request handlers and background jobs share it.
type Facility struct {
	mu        sync.Mutex
	name      string
	locations []Location

	guard guard.ConstructorGuard
}

// NewFacility creates an empty facility with the given name.
func NewFacility(name string) (*Facility, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name is required")
	}

	return &Facility{name: name, guard: guard.NewConstructorGuard()}, nil
}

// RestoreFacility reconstructs a facility from persisted locations,
// preserving their original order.
func RestoreFacility(name string, locations []Location) (*Facility, error) {
	facility, err := NewFacility(name)
	if err != nil {
		return nil, err
	}

	for _, loc := range locations {
		if err := facility.AddLocation(loc); err != nil {
			return nil, err
		}
	}

	return facility, nil
}

// Name returns the name of the facility.
func (f *Facility) Name() string {
	return f.name
}

// AddLocation appends a storage location. Locations are never removed.
// Duplicate identifiers are not rejected.
func (f *Facility) AddLocation(loc Location) error {
	if loc == nil {
		return errs.NewValueIsRequiredError("location is required")
	}
	if err := loc.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.locations = append(f.locations, loc)
	return nil
}

// FindByID returns the location with the given identifier, or nil if absent.
// When duplicates exist, the last match wins.
func (f *Facility) FindByID(id string) Location {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found Location
	for _, loc := range f.locations {
		if loc.ID() == id {
			found = loc
		}
	}
	return found
}

// FreeCapacity returns the total remaining weight capacity across all
// locations, counting each location's remaining capacity with a zero floor.
func (f *Facility) FreeCapacity() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total float64
	for _, loc := range f.locations {
		total += loc.RemainingCapacity()
	}
	return total
}

// Locations returns the locations in insertion order.
// The slice is a copy; the locations themselves are shared references.
func (f *Facility) Locations() []Location {
	f.mu.Lock()
	defer f.mu.Unlock()

	locations := make([]Location, len(f.locations))
	copy(locations, f.locations)
	return locations
}

// LocationIDs returns the identifiers of all locations in insertion order.
func (f *Facility) LocationIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.locations))
	for _, loc := range f.locations {
		ids = append(ids, loc.ID())
	}
	return ids
}

// Validate ensures the facility was created through NewFacility.
func (f *Facility) Validate() error {
	if f == nil {
		return ErrFacilityIsNotConstructed
	}
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}
