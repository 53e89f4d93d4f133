// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the warehouse system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PlacementEngine: A domain service for slotting catalog entries into
//     storage locations
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
