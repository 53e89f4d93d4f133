package product

import (
	"fmt"
	"time"
)

// Freshness is the derived status of a perishable entry, computed from the
// current time versus the expiry date.
type Freshness int

const (
	// Fresh means more than criticalDaysLeft days remain before expiry.
	Fresh Freshness = iota

	// Critical means fewer than criticalDaysLeft days remain before expiry.
	Critical

	// Expired means the expiry date has passed. Reaching this status also
	// flips the entry's spoiled flag, a one-way transition.
	Expired
)

// criticalDaysLeft is the threshold below which a perishable entry is
// reported as Critical.
const criticalDaysLeft = 3

// String returns the status name used in warnings and descriptions.
func (f Freshness) String() string {
	switch f {
	case Critical:
		return "CRITICAL"
	case Expired:
		return "EXPIRED"
	default:
		return "FRESH"
	}
}

// Perishable is a catalog entry with an expiry date and a required storage
// temperature. Its storage cost depends on the energy needed to keep it at
// temperature: standard cooling above 0°C, deep freeze at or below.
type Perishable struct {
	base

	expiry              time.Time
	requiredTemperature int
	spoiled             bool
}

// NewPerishable creates a perishable catalog entry with validation.
//
// The expiry date must be a literal YYYY-MM-DD string; any other format fails
// construction. requiredTemperature is the storage temperature in °C.
//
// Returns the created entry, or an aggregated validation error if any
// attribute is invalid.
func NewPerishable(
	id, name string,
	basePrice, volume, weight float64,
	expiryDate string,
	requiredTemperature int,
) (*Perishable, error) {
	b, err := newBase(id, name, basePrice, volume, weight)
	if err != nil {
		return nil, err
	}

	expiry, err := parseExpiryDate(expiryDate)
	if err != nil {
		return nil, err
	}

	return &Perishable{
		base:                b,
		expiry:              expiry,
		requiredTemperature: requiredTemperature,
	}, nil
}

// RestorePerishable reconstructs a perishable entry from persistent storage,
// including the spoiled flag captured at the time of persistence.
func RestorePerishable(
	id, name string,
	basePrice, volume, weight float64,
	expiry time.Time,
	requiredTemperature int,
	spoiled bool,
) (*Perishable, error) {
	b, err := newBase(id, name, basePrice, volume, weight)
	if err != nil {
		return nil, err
	}

	return &Perishable{
		base:                b,
		expiry:              expiry,
		requiredTemperature: requiredTemperature,
		spoiled:             spoiled,
	}, nil
}

// Category returns CategoryPerishable.
func (p *Perishable) Category() Category {
	return CategoryPerishable
}

// Expiry returns the expiry date of the entry.
func (p *Perishable) Expiry() time.Time {
	return p.expiry
}

// RequiredTemperature returns the required storage temperature in °C.
// Temperature-controlled locations inspect this value for eligibility.
func (p *Perishable) RequiredTemperature() int {
	return p.requiredTemperature
}

// IsSpoiled reports whether the entry has ever been observed past its expiry.
// Once set, the flag never clears.
func (p *Perishable) IsSpoiled() bool {
	return p.spoiled
}

// CheckStatus computes the freshness status from the current time.
//
// Returns Expired once the expiry date has passed (flipping the spoiled flag),
// Critical when fewer than 3 days remain, and Fresh otherwise.
func (p *Perishable) CheckStatus() Freshness {
	now := time.Now()
	if now.After(p.expiry) {
		p.spoiled = true
		return Expired
	}

	daysLeft := int(p.expiry.Sub(now).Hours() / 24)
	if daysLeft < criticalDaysLeft {
		return Critical
	}
	return Fresh
}

// StorageCost computes the projected storage cost for the given number of days.
//
// The formula is (volume*5.0 + weight*0.1*energyFactor) * days, where the
// energy factor is 1.5 for standard cooling (required temperature above 0°C)
// and 3.0 for deep freeze. The result is rounded to 2 decimal places.
func (p *Perishable) StorageCost(days int) float64 {
	const baseRate = 5.0

	energyFactor := 3.0 // deep freeze
	if p.requiredTemperature > 0 {
		energyFactor = 1.5 // standard cooling
	}

	volumeCost := p.volume * baseRate
	energyCost := p.weight * 0.1 * energyFactor

	return round2((volumeCost + energyCost) * float64(days))
}

// Describe returns a one-line description including the current freshness status.
func (p *Perishable) Describe() string {
	return fmt.Sprintf("[Perishable] ID: %s | Name: %s | Expiry: %s | Temp: %dC | Status: %s",
		p.id, p.name, p.expiry.Format(ExpiryDateLayout), p.requiredTemperature, p.CheckStatus())
}
