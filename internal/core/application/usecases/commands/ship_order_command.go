package commands

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to hand a picked order to a carrier.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	shipmentID string
	carrier    string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
// Validates that all three identifiers are non-empty.
func NewShipOrderCommand(orderID, shipmentID, carrier string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShipmentID(shipmentID),
		cmd.setCarrier(carrier),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() string {
	return c.orderID
}

// ShipmentID returns the identifier for the new shipment.
func (c ShipOrderCommand) ShipmentID() string {
	return c.shipmentID
}

// Carrier returns the carrier name.
func (c ShipOrderCommand) Carrier() string {
	return c.carrier
}

func (c *ShipOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId is required")
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setShipmentID(shipmentID string) error {
	if shipmentID == "" {
		return errs.NewValueIsRequiredError("shipmentId is required")
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ShipOrderCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier is required")
	}

	c.carrier = carrier
	return nil
}
