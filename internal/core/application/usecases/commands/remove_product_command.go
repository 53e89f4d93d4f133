package commands

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand represents a request to delete a catalog entry from
// the inventory registry.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to remove a catalog entry.
func NewRemoveProductCommand(productID string) (RemoveProductCommand, error) {
	cmd := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return RemoveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the entry to remove.
func (c RemoveProductCommand) ProductID() string {
	return c.productID
}

func (c *RemoveProductCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId is required")
	}

	c.productID = productID
	return nil
}
