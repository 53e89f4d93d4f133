package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/storage"
	"warehouse/internal/core/ports"
)

// SaveSnapshotCommandHandler persists the live warehouse state: catalog,
// facility, and all orders. The audit trail stays in memory.
type SaveSnapshotCommandHandler struct {
	registry     *inventory.Registry
	facility     *storage.Facility
	orderRepo    ports.OrderRepository
	snapshotRepo ports.SnapshotRepository
}

// NewSaveSnapshotCommandHandler creates a handler for snapshot persistence.
func NewSaveSnapshotCommandHandler(
	registry *inventory.Registry,
	facility *storage.Facility,
	orderRepo ports.OrderRepository,
	snapshotRepo ports.SnapshotRepository,
) SaveSnapshotCommandHandler {
	return SaveSnapshotCommandHandler{
		registry:     registry,
		facility:     facility,
		orderRepo:    orderRepo,
		snapshotRepo: snapshotRepo,
	}
}

// Handle processes the snapshot command, replacing any previously stored
// snapshot.
func (h SaveSnapshotCommandHandler) Handle(ctx context.Context, cmd SaveSnapshotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	return h.snapshotRepo.Save(ctx, &ports.Snapshot{
		Registry: h.registry,
		Facility: h.facility,
		Orders:   orders,
	})
}
