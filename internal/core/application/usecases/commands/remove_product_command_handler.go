package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/pkg/errs"
)

// RemoveProductCommandHandler handles the business logic for catalog removal.
type RemoveProductCommandHandler struct {
	registry *inventory.Registry
}

// NewRemoveProductCommandHandler creates a handler for catalog removal.
func NewRemoveProductCommandHandler(registry *inventory.Registry) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{registry: registry}
}

// Handle processes the removal command.
// Returns an object-not-found error when the identifier is not registered.
func (h RemoveProductCommandHandler) Handle(_ context.Context, cmd RemoveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.registry.Remove(cmd.ProductID()) {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID())
	}

	return nil
}
