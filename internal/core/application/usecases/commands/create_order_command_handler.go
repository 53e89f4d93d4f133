package commands

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the ordered identifiers against the registry and stores the new
// order in Pending status.
type CreateOrderCommandHandler struct {
	registry  *inventory.Registry
	orderRepo ports.OrderRepository
	trail     *audit.Trail
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	registry *inventory.Registry,
	orderRepo ports.OrderRepository,
	trail *audit.Trail,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{registry: registry, orderRepo: orderRepo, trail: trail}
}

// Handle processes the order creation command.
// Every referenced identifier must be registered at creation time.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]product.Product, 0, len(cmd.ProductIDs()))
	for _, id := range cmd.ProductIDs() {
		p := h.registry.Get(id)
		if p == nil {
			return errs.NewObjectNotFoundError("productId", id)
		}
		items = append(items, p)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), items, h.trail)
	if err != nil {
		return err
	}

	return h.orderRepo.Add(ctx, aggregate)
}
