package product

import "fmt"

// Durable is a long-life catalog entry with a material type and a fragility
// flag. Fragile entries cost more to store because they need a safer
// environment.
type Durable struct {
	base

	materialType string
	fragile      bool
}

// NewDurable creates a durable catalog entry with validation.
// materialType is free-form; fragile marks entries needing careful handling.
func NewDurable(
	id, name string,
	basePrice, volume, weight float64,
	materialType string,
	fragile bool,
) (*Durable, error) {
	b, err := newBase(id, name, basePrice, volume, weight)
	if err != nil {
		return nil, err
	}

	return &Durable{
		base:         b,
		materialType: materialType,
		fragile:      fragile,
	}, nil
}

// RestoreDurable reconstructs a durable entry from persistent storage.
func RestoreDurable(
	id, name string,
	basePrice, volume, weight float64,
	materialType string,
	fragile bool,
) (*Durable, error) {
	return NewDurable(id, name, basePrice, volume, weight, materialType, fragile)
}

// Category returns CategoryDurable.
func (d *Durable) Category() Category {
	return CategoryDurable
}

// Material returns the material type of the entry.
func (d *Durable) Material() string {
	return d.materialType
}

// IsFragile reports whether the entry needs careful handling.
func (d *Durable) IsFragile() bool {
	return d.fragile
}

// StorageCost computes the projected storage cost for the given number of days.
//
// The formula is volume*2.0 per day, multiplied by 1.20 for fragile entries,
// rounded to 2 decimal places.
func (d *Durable) StorageCost(days int) float64 {
	const baseRate = 2.0

	dailyCost := d.volume * baseRate
	if d.fragile {
		dailyCost *= 1.20
	}

	return round2(dailyCost * float64(days))
}

// Describe returns a one-line description including material and fragility.
func (d *Durable) Describe() string {
	fragility := "Robust"
	if d.fragile {
		fragility = "Fragile"
	}
	return fmt.Sprintf("[Durable] ID: %s | Name: %s | Material: %s | Type: %s",
		d.id, d.name, d.materialType, fragility)
}
