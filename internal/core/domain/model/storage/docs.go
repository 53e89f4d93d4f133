// Package storage contains the physical storage domain model.
//
// A Location is a slot with a fixed weight capacity and a variant-specific
// eligibility rule: a Shelf accepts only durable entries, a TemperatureUnit
// accepts only perishable entries whose required temperature lies within its
// range. A Facility is the ordered collection of locations forming one
// warehouse; insertion order matters because placement is first-fit.
package storage
