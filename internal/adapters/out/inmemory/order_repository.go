// Package inmemory provides map-backed repository implementations.
//
// They hold the working set of the running process. Durable state goes
// through the snapshot repository; these repositories are rebuilt from a
// loaded snapshot on startup.
package inmemory

import (
	"context"
	"sync"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository keeps order aggregates in process memory.
// Insertion order is preserved for the listing queries. Safe for
// concurrent use.
type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]*order.Order
	ids    []string
}

// NewOrderRepository creates an empty order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*order.Order)}
}

// Add stores a new order aggregate.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order already exists")
	}

	r.orders[aggregate.ID()] = aggregate
	r.ids = append(r.ids, aggregate.ID())
	return nil
}

// Update replaces an existing order aggregate.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

// Get returns the order with the given identifier.
func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, exists := r.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return aggregate, nil
}

// GetAll returns all orders in creation order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*order.Order, 0, len(r.ids))
	for _, id := range r.ids {
		all = append(all, r.orders[id])
	}
	return all, nil
}

// GetAllInStatus returns all orders in the given status, in creation order.
func (r *OrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*order.Order, 0)
	for _, id := range r.ids {
		if r.orders[id].Status() == status {
			matched = append(matched, r.orders[id])
		}
	}
	return matched, nil
}
