package commands

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrPickOrderCommandIsNotConstructed = errors.New(
	"PickOrderCommand must be created via NewPickOrderCommand constructor",
)

// PickOrderCommand represents a request to pull a pending order's items
// from inventory.
type PickOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewPickOrderCommand creates a command to pick an order.
func NewPickOrderCommand(orderID string) (PickOrderCommand, error) {
	cmd := PickOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PickOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pick.
func (c PickOrderCommand) OrderID() string {
	return c.orderID
}

func (c *PickOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId is required")
	}

	c.orderID = orderID
	return nil
}
