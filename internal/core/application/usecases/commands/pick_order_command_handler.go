package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/ports"
)

// PickOrderCommandHandler handles the business logic for picking orders.
type PickOrderCommandHandler struct {
	registry  *inventory.Registry
	orderRepo ports.OrderRepository
}

// NewPickOrderCommandHandler creates a handler for pick operations.
func NewPickOrderCommandHandler(
	registry *inventory.Registry,
	orderRepo ports.OrderRepository,
) PickOrderCommandHandler {
	return PickOrderCommandHandler{registry: registry, orderRepo: orderRepo}
}

// Handle processes the pick command.
// The order must be Pending and every item must still be registered.
func (h PickOrderCommandHandler) Handle(ctx context.Context, cmd PickOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.StartPicking(h.registry); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, aggregate)
}
