package inmemory

import (
	"context"
	"sync"

	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

var _ ports.ShipmentRepository = (*ShipmentRepository)(nil)

// ShipmentRepository keeps shipment aggregates in process memory.
// Safe for concurrent use.
type ShipmentRepository struct {
	mu        sync.Mutex
	shipments map[string]*shipment.Shipment
	byOrder   map[string]string
	ids       []string
}

// NewShipmentRepository creates an empty shipment repository.
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		shipments: make(map[string]*shipment.Shipment),
		byOrder:   make(map[string]string),
	}
}

// Add stores a new shipment aggregate.
func (r *ShipmentRepository) Add(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shipments[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("shipment already exists")
	}

	r.shipments[aggregate.ID()] = aggregate
	r.byOrder[aggregate.OrderID()] = aggregate.ID()
	r.ids = append(r.ids, aggregate.ID())
	return nil
}

// Update replaces an existing shipment aggregate.
func (r *ShipmentRepository) Update(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shipments[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("shipmentId", aggregate.ID())
	}

	r.shipments[aggregate.ID()] = aggregate
	return nil
}

// Get returns the shipment with the given identifier.
func (r *ShipmentRepository) Get(_ context.Context, id string) (*shipment.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, exists := r.shipments[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("shipmentId", id)
	}
	return aggregate, nil
}

// GetByOrderID returns the shipment created for the given order.
func (r *ShipmentRepository) GetByOrderID(_ context.Context, orderID string) (*shipment.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, exists := r.byOrder[orderID]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	return r.shipments[id], nil
}
