package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrUpdatePriceCommandIsNotConstructed = errors.New(
	"UpdatePriceCommand must be created via NewUpdatePriceCommand constructor",
)

// UpdatePriceCommand represents a request to change the base price of a
// registered catalog entry.
type UpdatePriceCommand struct { //nolint:recvcheck //using for validation
	productID string
	newPrice  float64

	guard guard.ConstructorGuard
}

// NewUpdatePriceCommand creates a command to change a catalog entry's price.
// Validates that the identifier is non-empty and the price is not negative.
func NewUpdatePriceCommand(productID string, newPrice float64) (UpdatePriceCommand, error) {
	cmd := UpdatePriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setNewPrice(newPrice),
	); err != nil {
		return UpdatePriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the entry to reprice.
func (c UpdatePriceCommand) ProductID() string {
	return c.productID
}

// NewPrice returns the new base price.
func (c UpdatePriceCommand) NewPrice() float64 {
	return c.newPrice
}

func (c *UpdatePriceCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId is required")
	}

	c.productID = productID
	return nil
}

func (c *UpdatePriceCommand) setNewPrice(newPrice float64) error {
	if newPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("newPrice is invalid",
			fmt.Errorf("%g is negative", newPrice))
	}

	c.newPrice = newPrice
	return nil
}
