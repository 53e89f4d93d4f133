package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrItemsMissingFromInventory is returned by StartPicking when at least one
// of the order's items is no longer present in the inventory registry.
var ErrItemsMissingFromInventory = errors.New("one or more products are missing from inventory")

// Order is the aggregate root for a customer order.
//
// An order moves through the five-state lifecycle enforced by Status. Every
// status change is appended to the audit trail. The item list is fixed at
// creation and may be empty; fulfillment never adds or removes items.
//
// Transitions are serialized by a mutex so concurrent requests observe the
// state machine atomically.
type Order struct {
	mu        sync.Mutex
	id        string
	customer  string
	items     []product.Product
	status    Status
	createdAt time.Time

	trail *audit.Trail

	guard guard.ConstructorGuard
}

// Summary is a read-only projection of an order for reporting.
type Summary struct {
	ID        string
	Customer  string
	Status    string
	CreatedAt time.Time
	ItemCount int
}

// NewOrder creates a pending order for the given customer.
//
// Parameters:
//   - id: unique order identifier, must be non-empty
//   - customer: customer name, must be non-empty
//   - items: products being ordered, may be empty
//   - trail: audit trail that receives the lifecycle records
//
// Returns:
//   - (*Order, nil) with status Pending; the creation is recorded on the trail
//   - (nil, error) if any parameter is invalid
func NewOrder(id, customer string, items []product.Product, trail *audit.Trail) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setTrail(trail),
	); err != nil {
		return nil, err
	}

	o.status = Pending
	o.createdAt = time.Now()
	o.trail.LogOrderStatus(o.id, o.status.String())

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state.
//
// Unlike NewOrder it accepts any valid status and timestamp and appends
// nothing to the audit trail. It is intended for repositories only.
func RestoreOrder(
	id, customer string,
	items []product.Product,
	status Status,
	createdAt time.Time,
	trail *audit.Trail,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setTrail(trail),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt

	return o, nil
}

// ID returns the unique identifier of the order.
func (o *Order) ID() string {
	return o.id
}

// Customer returns the name of the ordering customer.
func (o *Order) Customer() string {
	return o.customer
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the ordered products. The slice is a copy; the products
// themselves are shared references.
func (o *Order) Items() []product.Product {
	items := make([]product.Product, len(o.items))
	copy(items, o.items)
	return items
}

// StartPicking moves the order from Pending to Picked after confirming that
// every ordered item is still present in the inventory registry.
//
// The check is by identifier only. Quantities are not tracked, so a single
// registered product satisfies any number of orders referencing it.
//
// Returns:
//   - nil on success; the status change is recorded on the trail
//   - ErrItemsMissingFromInventory if any item is absent from the registry
//   - a status error if the order is not Pending
func (o *Order) StartPicking(registry *inventory.Registry) error {
	if registry == nil {
		return errs.NewValueIsRequiredError("registry is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := o.status.Pick()
	if err != nil {
		return err
	}

	for _, item := range o.items {
		if registry.Get(item.ID()) == nil {
			return fmt.Errorf("%w: %s", ErrItemsMissingFromInventory, item.ID())
		}
	}

	o.status = newStatus
	o.trail.LogOrderStatus(o.id, o.status.String())
	return nil
}

// MarkShipped moves the order from Picked to Shipped.
func (o *Order) MarkShipped() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trail.LogOrderStatus(o.id, o.status.String())
	return nil
}

// MarkDelivered moves the order from Shipped to Delivered.
func (o *Order) MarkDelivered() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trail.LogOrderStatus(o.id, o.status.String())
	return nil
}

// Cancel abandons the order before shipping.
//
// An empty reason defaults to "user requested". Besides the status change,
// a warning carrying the reason is recorded on the trail.
func (o *Order) Cancel(reason string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if reason == "" {
		reason = "user requested"
	}

	o.status = newStatus
	o.trail.LogOrderStatus(o.id, o.status.String())
	o.trail.LogWarning(fmt.Sprintf("Order %s cancelled: %s", o.id, reason))
	return nil
}

// Summarize returns a reporting projection of the order.
func (o *Order) Summarize() Summary {
	o.mu.Lock()
	defer o.mu.Unlock()

	return Summary{
		ID:        o.id,
		Customer:  o.customer,
		Status:    o.status.String(),
		CreatedAt: o.createdAt,
		ItemCount: len(o.items),
	}
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer is required")
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []product.Product) error {
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("items must not contain nil")
		}
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]product.Product, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTrail(trail *audit.Trail) error {
	if trail == nil {
		return errs.NewValueIsRequiredError("trail is required")
	}
	o.trail = trail
	return nil
}
