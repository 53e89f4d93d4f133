package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for cancelling orders.
type CancelOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCancelOrderCommandHandler creates a handler for cancel operations.
func NewCancelOrderCommandHandler(orderRepo ports.OrderRepository) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orderRepo: orderRepo}
}

// Handle processes the cancel command.
// The order must be Pending or Picked.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, aggregate)
}
