package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a location instance was not
// created through one of the package constructors.
var ErrLocationIsNotConstructed = errors.New("location must be created via NewShelf or NewTemperatureUnit constructor")

// Location is the capability set shared by all storage location variants.
//
// A location has a fixed weight capacity set at construction and tracks its
// current load, item count, and last-updated timestamp. The current load is
// never reported negative; removals clamp it to zero.
//
// Eligibility is variant-specific: IsSuitable decides whether a given catalog
// entry may be stored, including the capacity check for the entry's weight.
type Location interface {
	// ID returns the identifier of the location. Identifiers are expected to
	// be unique within a facility, but uniqueness is not enforced.
	ID() string

	// Capacity returns the maximum weight the location can hold.
	Capacity() float64

	// CurrentLoad returns the current total weight of stored items.
	CurrentLoad() float64

	// ItemCount returns the number of stored items.
	ItemCount() int

	// LastUpdated returns the time of the last add or remove,
	// or the zero time if the location was never touched.
	LastUpdated() time.Time

	// RemainingCapacity returns the available weight capacity, never negative.
	RemainingCapacity() float64

	// IsSuitable reports whether the entry meets the location's eligibility
	// rule and fits within the remaining weight capacity.
	IsSuitable(p product.Product) bool

	// AddItem attempts to store the entry. Returns false if the entry is not
	// suitable or would exceed capacity; on success the load, item count, and
	// last-updated timestamp are updated.
	AddItem(p product.Product) bool

	// RemoveItem removes the entry, decrementing load and item count with a
	// zero floor. No suitability check is performed on removal.
	RemoveItem(p product.Product)

	// Validate ensures the location was created through a package constructor.
	Validate() error
}

// baseLocation holds the capacity arithmetic shared by all variants.
// The mutex is a pointer so the struct stays copyable during construction;
// it serializes the load bookkeeping once the location is shared.
type baseLocation struct {
	mu          *sync.Mutex
	id          string
	capacity    float64
	currentLoad float64
	itemCount   int
	lastUpdated time.Time

	guard guard.ConstructorGuard
}

func newBaseLocation(id string, capacity float64) (baseLocation, error) {
	b := baseLocation{mu: &sync.Mutex{}, guard: guard.NewConstructorGuard()}

	if err := errors.Join(b.setID(id), b.setCapacity(capacity)); err != nil {
		return baseLocation{}, err
	}

	return b, nil
}

// restoreBaseLocation rebuilds the load-tracking state captured in a snapshot.
func restoreBaseLocation(
	id string, capacity, currentLoad float64, itemCount int, lastUpdated time.Time,
) (baseLocation, error) {
	b, err := newBaseLocation(id, capacity)
	if err != nil {
		return baseLocation{}, err
	}

	if currentLoad < 0 {
		return baseLocation{}, errs.NewValueIsInvalidErrorWithCause("currentLoad is invalid",
			fmt.Errorf("%g is negative", currentLoad))
	}
	if itemCount < 0 {
		return baseLocation{}, errs.NewValueIsInvalidErrorWithCause("itemCount is invalid",
			fmt.Errorf("%d is negative", itemCount))
	}

	b.currentLoad = currentLoad
	b.itemCount = itemCount
	b.lastUpdated = lastUpdated
	return b, nil
}

// ID returns the identifier of the location.
func (b *baseLocation) ID() string {
	return b.id
}

// Capacity returns the maximum weight the location can hold.
func (b *baseLocation) Capacity() float64 {
	return b.capacity
}

// CurrentLoad returns the current total weight of stored items.
func (b *baseLocation) CurrentLoad() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentLoad
}

// ItemCount returns the number of stored items.
func (b *baseLocation) ItemCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.itemCount
}

// LastUpdated returns the time of the last add or remove.
func (b *baseLocation) LastUpdated() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUpdated
}

// RemainingCapacity returns the available weight capacity, never negative.
func (b *baseLocation) RemainingCapacity() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return max(0, b.capacity-b.currentLoad)
}

// RemoveItem removes the entry, clamping load and item count at zero.
func (b *baseLocation) RemoveItem(p product.Product) {
	if p == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.currentLoad = max(0, b.currentLoad-p.Weight())
	b.itemCount = max(0, b.itemCount-1)
	b.lastUpdated = time.Now()
}

// Validate ensures the location was created through a package constructor.
func (b *baseLocation) Validate() error {
	if b == nil {
		return ErrLocationIsNotConstructed
	}
	return b.guard.Validate(ErrLocationIsNotConstructed)
}

// fitsWeight reports whether the entry's weight fits the remaining capacity.
// Callers must hold the lock.
func (b *baseLocation) fitsWeight(p product.Product) bool {
	return b.currentLoad+p.Weight() <= b.capacity
}

// recordAdd applies the load bookkeeping of a successful add.
// Callers must hold the lock so the suitability check and the add are atomic.
func (b *baseLocation) recordAdd(p product.Product) {
	b.currentLoad += p.Weight()
	b.itemCount++
	b.lastUpdated = time.Now()
}

func (b *baseLocation) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}

	b.id = id
	return nil
}

func (b *baseLocation) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid",
			fmt.Errorf("%g is not greater than 0", capacity))
	}

	b.capacity = capacity
	return nil
}
