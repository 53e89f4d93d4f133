package commands

import (
	"context"
	"errors"
	"math/rand/v2"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// ShipOrderCommandHandler handles the business logic for shipping orders.
// Moves the order to Shipped and creates the shipment with a fresh tracking
// code in one operation.
type ShipOrderCommandHandler struct {
	orderRepo    ports.OrderRepository
	shipmentRepo ports.ShipmentRepository
	trail        *audit.Trail
	rng          *rand.Rand
}

// NewShipOrderCommandHandler creates a handler for ship operations.
// The random source seeds tracking code generation; nil falls back to the
// process-wide seeded source.
func NewShipOrderCommandHandler(
	orderRepo ports.OrderRepository,
	shipmentRepo ports.ShipmentRepository,
	trail *audit.Trail,
	rng *rand.Rand,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		orderRepo:    orderRepo,
		shipmentRepo: shipmentRepo,
		trail:        trail,
		rng:          rng,
	}
}

// Handle processes the ship command and returns the generated tracking code.
// The order must be Picked.
//
// The shipment identifier is checked for availability before the order
// transitions, so a rejected ship request leaves the order untouched.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	if _, err := h.shipmentRepo.Get(ctx, cmd.ShipmentID()); err == nil {
		return "", errs.NewValueIsInvalidError("shipmentId is already in use")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", err
	}

	if err := aggregate.MarkShipped(); err != nil {
		return "", err
	}

	outbound, err := shipment.NewShipment(cmd.ShipmentID(), cmd.OrderID(), cmd.Carrier(), h.trail, h.rng)
	if err != nil {
		return "", err
	}
	trackingCode := outbound.GenerateTracking()

	if err := h.shipmentRepo.Add(ctx, outbound); err != nil {
		return "", err
	}

	if err := h.orderRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	return trackingCode, nil
}
