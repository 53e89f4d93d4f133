package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// DeliverOrderCommandHandler handles the business logic for confirming
// deliveries. Both the order and its shipment are flagged delivered.
type DeliverOrderCommandHandler struct {
	orderRepo    ports.OrderRepository
	shipmentRepo ports.ShipmentRepository
}

// NewDeliverOrderCommandHandler creates a handler for delivery confirmation.
func NewDeliverOrderCommandHandler(
	orderRepo ports.OrderRepository,
	shipmentRepo ports.ShipmentRepository,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{orderRepo: orderRepo, shipmentRepo: shipmentRepo}
}

// Handle processes the delivery confirmation command.
// The order must be Shipped and its shipment must exist.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	outbound, err := h.shipmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.MarkDelivered(); err != nil {
		return err
	}
	outbound.MarkDelivered()

	if err := h.shipmentRepo.Update(ctx, outbound); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, aggregate)
}
