package product

import (
	"errors"
	"fmt"
	"math"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a product instance was not created
// through one of the package constructors. This ensures all products are properly
// validated before use.
var ErrProductIsNotConstructed = errors.New("product must be created via NewPerishable or NewDurable constructor")

// Category identifies the variant of a catalog entry.
// It is the tag the storage eligibility rules dispatch on.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// CategoryPerishable marks entries with an expiry date and a required
	// storage temperature.
	CategoryPerishable

	// CategoryDurable marks long-life entries with a material type and a
	// fragility flag.
	CategoryDurable
)

// String returns the human-readable name of the category.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (c Category) String() string {
	switch c {
	case CategoryPerishable:
		return "Perishable"
	case CategoryDurable:
		return "Durable"
	default:
		return "Unknown"
	}
}

// Validate checks if the Category value is valid.
// Valid categories are CategoryPerishable and CategoryDurable.
func (c Category) Validate() error {
	if c != CategoryPerishable && c != CategoryDurable {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// Product is the capability set shared by all catalog entry variants.
//
// Every entry carries an immutable identifier, a mutable name, a base price,
// and a physical footprint (volume in cubic meters, weight in kilograms).
// The variants differ in how they compute storage cost and in the attributes
// the storage eligibility rules inspect.
//
// Invariants, validated at construction and on every mutation:
//   - basePrice >= 0
//   - volume > 0
//   - weight > 0
//   - name is not empty
//
// A mutation that would violate an invariant is rejected and leaves the prior
// value intact.
type Product interface {
	// ID returns the unique, immutable identifier of the entry.
	ID() string

	// Name returns the display name of the entry.
	Name() string

	// Rename updates the display name. An empty name is rejected.
	Rename(name string) error

	// BasePrice returns the base price of the entry.
	BasePrice() float64

	// ChangeBasePrice updates the base price. A negative price is rejected.
	ChangeBasePrice(price float64) error

	// Volume returns the physical volume in cubic meters.
	Volume() float64

	// Weight returns the physical weight in kilograms.
	Weight() float64

	// Category returns the variant tag of the entry.
	Category() Category

	// StorageCost computes the projected storage cost for the given number of
	// days using the variant-specific formula, rounded to 2 decimal places.
	StorageCost(days int) float64

	// Describe returns a one-line formatted description of the entry.
	Describe() string

	// Validate ensures the entry was created through a package constructor.
	Validate() error
}

// base holds the attributes and validation rules common to all variants.
// It is embedded by Perishable and Durable.
type base struct {
	id        string
	name      string
	basePrice float64
	volume    float64
	weight    float64

	guard guard.ConstructorGuard
}

func newBase(id, name string, basePrice, volume, weight float64) (base, error) {
	b := base{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setBasePrice(basePrice),
		b.setVolume(volume),
		b.setWeight(weight),
	); err != nil {
		return base{}, err
	}

	return b, nil
}

// ID returns the unique identifier of the entry.
func (b *base) ID() string {
	return b.id
}

// Name returns the display name of the entry.
func (b *base) Name() string {
	return b.name
}

// Rename updates the display name.
// An empty name is rejected and the prior name is kept.
func (b *base) Rename(name string) error {
	return b.setName(name)
}

// BasePrice returns the base price of the entry.
func (b *base) BasePrice() float64 {
	return b.basePrice
}

// ChangeBasePrice updates the base price.
// A negative price is rejected and the prior price is kept.
func (b *base) ChangeBasePrice(price float64) error {
	return b.setBasePrice(price)
}

// Volume returns the physical volume in cubic meters.
func (b *base) Volume() float64 {
	return b.volume
}

// Weight returns the physical weight in kilograms.
func (b *base) Weight() float64 {
	return b.weight
}

// Validate ensures the entry was created through a package constructor.
func (b *base) Validate() error {
	if b == nil {
		return ErrProductIsNotConstructed
	}
	return b.guard.Validate(ErrProductIsNotConstructed)
}

func (b *base) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}

	b.id = id
	return nil
}

func (b *base) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	b.name = name
	return nil
}

func (b *base) setBasePrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice is invalid",
			fmt.Errorf("%g is negative", price))
	}

	b.basePrice = price
	return nil
}

func (b *base) setVolume(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid",
			fmt.Errorf("%g is not greater than 0", volume))
	}

	b.volume = volume
	return nil
}

func (b *base) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%g is not greater than 0", weight))
	}

	b.weight = weight
	return nil
}

// round2 rounds to 2 decimal places. Storage costs are rounded per call,
// not cumulatively.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ExpiryDateLayout is the only accepted input format for perishable expiry dates.
const ExpiryDateLayout = "2006-01-02"

// parseExpiryDate parses a literal YYYY-MM-DD date. Any other format fails.
func parseExpiryDate(value string) (time.Time, error) {
	t, err := time.Parse(ExpiryDateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("expiryDate is invalid",
			fmt.Errorf("%q is not in YYYY-MM-DD format", value))
	}
	return t, nil
}
