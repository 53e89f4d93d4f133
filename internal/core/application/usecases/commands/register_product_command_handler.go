package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/pkg/errs"
)

// RegisterProductCommandHandler handles the business logic for catalog
// registration.
type RegisterProductCommandHandler struct {
	registry *inventory.Registry
}

// NewRegisterProductCommandHandler creates a handler for catalog registration.
func NewRegisterProductCommandHandler(registry *inventory.Registry) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{registry: registry}
}

// Handle processes the registration command.
// Returns an error when the identifier is already registered.
func (h RegisterProductCommandHandler) Handle(_ context.Context, cmd RegisterProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.registry.Add(cmd.Product()) {
		return errs.NewValueIsInvalidError("productId is already registered")
	}

	return nil
}
