package storage

import (
	"time"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// TemperatureUnit is a temperature-controlled storage location that accepts
// only perishable catalog entries whose required temperature lies within the
// unit's [minTemp, maxTemp] range, within the weight budget.
type TemperatureUnit struct {
	baseLocation

	minTemp int
	maxTemp int
}

// NewTemperatureUnit creates a temperature-controlled unit with the given
// identifier, weight capacity, and operating temperature range in °C.
func NewTemperatureUnit(id string, capacity float64, minTemp, maxTemp int) (*TemperatureUnit, error) {
	b, err := newBaseLocation(id, capacity)
	if err != nil {
		return nil, err
	}

	if minTemp > maxTemp {
		return nil, errs.NewValueIsOutOfRangeError("temperature range", minTemp, minTemp, maxTemp)
	}

	return &TemperatureUnit{baseLocation: b, minTemp: minTemp, maxTemp: maxTemp}, nil
}

// RestoreTemperatureUnit reconstructs a temperature unit from persistent
// storage, including its load-tracking state at the time of persistence.
func RestoreTemperatureUnit(
	id string, capacity float64, minTemp, maxTemp int,
	currentLoad float64, itemCount int, lastUpdated time.Time,
) (*TemperatureUnit, error) {
	b, err := restoreBaseLocation(id, capacity, currentLoad, itemCount, lastUpdated)
	if err != nil {
		return nil, err
	}

	if minTemp > maxTemp {
		return nil, errs.NewValueIsOutOfRangeError("temperature range", minTemp, minTemp, maxTemp)
	}

	return &TemperatureUnit{baseLocation: b, minTemp: minTemp, maxTemp: maxTemp}, nil
}

// MinTemp returns the lower bound of the operating temperature range in °C.
func (u *TemperatureUnit) MinTemp() int {
	return u.minTemp
}

// MaxTemp returns the upper bound of the operating temperature range in °C.
func (u *TemperatureUnit) MaxTemp() int {
	return u.maxTemp
}

// IsSuitable reports whether the entry is perishable, its required temperature
// lies within the unit's range, and it fits within the remaining capacity.
func (u *TemperatureUnit) IsSuitable(p product.Product) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.suitable(p)
}

// AddItem attempts to store a perishable entry in the unit.
// The suitability check and the load update happen under one lock.
func (u *TemperatureUnit) AddItem(p product.Product) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.suitable(p) {
		return false
	}

	u.recordAdd(p)
	return true
}

// suitable holds the eligibility rule. Callers must hold the lock.
func (u *TemperatureUnit) suitable(p product.Product) bool {
	perishable, ok := p.(*product.Perishable)
	if !ok {
		return false
	}

	temp := perishable.RequiredTemperature()
	if temp < u.minTemp || temp > u.maxTemp {
		return false
	}

	return u.fitsWeight(p)
}
