// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created Pending, is picked against the inventory registry,
// ships with a carrier and is finally delivered. Pending and Picked orders
// may be cancelled instead. Every transition is validated by the Status
// value object and recorded on the audit trail, so invalid workflows are
// rejected at the domain boundary rather than in the handlers above it.
package order
