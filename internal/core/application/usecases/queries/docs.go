// Package queries contains read-only operations over warehouse state.
// Implements the Query pattern for the read side of the CQRS architecture.
// Queries never mutate aggregates; they project live state into responses.
package queries
