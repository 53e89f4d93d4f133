package ports

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/storage"
)

// Snapshot is the persisted state of one warehouse: the product catalog, the
// facility with its storage locations, and all orders. The audit trail is
// deliberately excluded; it is session-scoped.
type Snapshot struct {
	Registry *inventory.Registry
	Facility *storage.Facility
	Orders   []*order.Order
}

// SnapshotRepository defines the persistence contract for whole-warehouse
// snapshots.
//
// Save replaces the previously stored snapshot; there is exactly one current
// snapshot per database. Load reconstructs the domain aggregates through
// their restore constructors, so a loaded snapshot is fully validated.
type SnapshotRepository interface {
	// Save atomically replaces the stored snapshot with the given state.
	Save(ctx context.Context, snapshot *Snapshot) error

	// Load retrieves the stored snapshot.
	// Returns an object-not-found error when no snapshot was saved yet.
	Load(ctx context.Context) (*Snapshot, error)
}
