package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

var ErrRegisterProductCommandIsNotConstructed = errors.New(
	"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
)

// RegisterProductCommand represents a request to add a catalog entry to the
// inventory registry. The entry is constructed by the caller; the command
// only carries it.
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	product product.Product

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a catalog entry.
// Validates that the entry was properly constructed.
func NewRegisterProductCommand(p product.Product) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProduct(p); err != nil {
		return RegisterProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// Product returns the catalog entry to register.
func (c RegisterProductCommand) Product() product.Product {
	return c.product
}

func (c *RegisterProductCommand) setProduct(p product.Product) error {
	if p == nil {
		return product.ErrProductIsNotConstructed
	}
	if err := p.Validate(); err != nil {
		return err
	}

	c.product = p
	return nil
}
