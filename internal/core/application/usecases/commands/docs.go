// Package commands contains business operations that modify warehouse state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, a guarded
// value object, and a handler that executes the operation against the domain.
package commands
