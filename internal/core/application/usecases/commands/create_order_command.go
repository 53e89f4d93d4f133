package commands

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new customer order
// referencing registered catalog entries.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customer   string
	productIDs []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID and customer are non-empty. The product list
// may be empty; an empty order still moves through the lifecycle.
func NewCreateOrderCommand(orderID, customer string, productIDs []string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// Customer returns the name of the ordering customer.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// ProductIDs returns the identifiers of the ordered catalog entries.
func (c CreateOrderCommand) ProductIDs() []string {
	return c.productIDs
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId is required")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer is required")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setProductIDs(productIDs []string) error {
	for _, id := range productIDs {
		if id == "" {
			return errs.NewValueIsRequiredError("productIds must not contain empty identifiers")
		}
	}

	c.productIDs = productIDs
	return nil
}
