package commands

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrPlaceProductCommandIsNotConstructed = errors.New(
	"PlaceProductCommand must be created via NewPlaceProductCommand constructor",
)

// PlaceProductCommand represents a request to slot a registered catalog
// entry into the first suitable storage location.
type PlaceProductCommand struct { //nolint:recvcheck //using for validation
	productID string

	guard guard.ConstructorGuard
}

// NewPlaceProductCommand creates a command to place a catalog entry.
func NewPlaceProductCommand(productID string) (PlaceProductCommand, error) {
	cmd := PlaceProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return PlaceProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceProductCommand) Validate() error {
	return c.guard.Validate(ErrPlaceProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the entry to place.
func (c PlaceProductCommand) ProductID() string {
	return c.productID
}

func (c *PlaceProductCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId is required")
	}

	c.productID = productID
	return nil
}
