package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/pkg/errs"
)

// UpdatePriceCommandHandler handles the business logic for catalog repricing.
type UpdatePriceCommandHandler struct {
	registry *inventory.Registry
}

// NewUpdatePriceCommandHandler creates a handler for catalog repricing.
func NewUpdatePriceCommandHandler(registry *inventory.Registry) UpdatePriceCommandHandler {
	return UpdatePriceCommandHandler{registry: registry}
}

// Handle processes the repricing command.
// Returns an object-not-found error for unknown identifiers and a
// value-is-invalid error when the entry rejects the new price.
func (h UpdatePriceCommandHandler) Handle(_ context.Context, cmd UpdatePriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if h.registry.Get(cmd.ProductID()) == nil {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID())
	}

	if !h.registry.UpdatePrice(cmd.ProductID(), cmd.NewPrice()) {
		return errs.NewValueIsInvalidError("newPrice is invalid")
	}

	return nil
}
