package storage

import (
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// Shelf is a dry storage location that accepts only durable catalog entries
// within its weight budget. maxHeight describes the physical height limit of
// the slot; it is informational and not part of the eligibility rule.
type Shelf struct {
	baseLocation

	maxHeight float64
}

// NewShelf creates a shelf with the given identifier, weight capacity, and
// height limit in meters.
func NewShelf(id string, capacity, maxHeight float64) (*Shelf, error) {
	b, err := newBaseLocation(id, capacity)
	if err != nil {
		return nil, err
	}

	if maxHeight <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxHeight is invalid",
			fmt.Errorf("%g is not greater than 0", maxHeight))
	}

	return &Shelf{baseLocation: b, maxHeight: maxHeight}, nil
}

// RestoreShelf reconstructs a shelf from persistent storage, including its
// load-tracking state at the time of persistence.
func RestoreShelf(
	id string, capacity, maxHeight float64,
	currentLoad float64, itemCount int, lastUpdated time.Time,
) (*Shelf, error) {
	b, err := restoreBaseLocation(id, capacity, currentLoad, itemCount, lastUpdated)
	if err != nil {
		return nil, err
	}

	if maxHeight <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxHeight is invalid",
			fmt.Errorf("%g is not greater than 0", maxHeight))
	}

	return &Shelf{baseLocation: b, maxHeight: maxHeight}, nil
}

// MaxHeight returns the height limit of the shelf in meters.
func (s *Shelf) MaxHeight() float64 {
	return s.maxHeight
}

// IsSuitable reports whether the entry is durable and fits within the
// remaining weight capacity.
func (s *Shelf) IsSuitable(p product.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suitable(p)
}

// AddItem attempts to store a durable entry on the shelf.
// The suitability check and the load update happen under one lock.
func (s *Shelf) AddItem(p product.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.suitable(p) {
		return false
	}

	s.recordAdd(p)
	return true
}

// suitable holds the eligibility rule. Callers must hold the lock.
func (s *Shelf) suitable(p product.Product) bool {
	if p == nil || p.Category() != product.CategoryDurable {
		return false
	}
	return s.fitsWeight(p)
}
