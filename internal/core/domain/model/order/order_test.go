package order_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDurable(t *testing.T, id string) *product.Durable {
	t.Helper()
	d, err := product.NewDurable(id, "Crate "+id, 50, 0.2, 4, "Wood", false)
	require.NoError(t, err)
	return d
}

func newTestOrder(t *testing.T, trail *audit.Trail, items ...product.Product) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []product.Product{newDurable(t, "D-1")}
	}
	o, err := order.NewOrder("O-1", "Acme Corp", items, trail)
	require.NoError(t, err)
	return o
}

func registryWith(t *testing.T, products ...product.Product) *inventory.Registry {
	t.Helper()
	registry := inventory.NewRegistry(nil)
	for _, p := range products {
		require.True(t, registry.Add(p))
	}
	return registry
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order and record it on the trail", func(t *testing.T) {
		trail := audit.NewTrail()

		o, err := order.NewOrder("O-1", "Acme Corp", []product.Product{newDurable(t, "D-1")}, trail)

		require.NoError(t, err)
		assert.Equal(t, "O-1", o.ID())
		assert.Equal(t, "Acme Corp", o.Customer())
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Len(t, o.Items(), 1)
		require.NoError(t, o.Validate())

		records := trail.Snapshot()
		require.Len(t, records, 1)
		assert.Equal(t, audit.TypeOrderStatus, records[0].Type)
		assert.Equal(t, "Order O-1 changed status to Pending", records[0].Message)
	})

	t.Run("should accept an order with no items", func(t *testing.T) {
		trail := audit.NewTrail()

		o, err := order.NewOrder("O-1", "Acme Corp", nil, trail)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.Items())
		assert.Equal(t, 0, o.Summarize().ItemCount)
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		trail := audit.NewTrail()
		items := []product.Product{newDurable(t, "D-1")}

		testCases := []struct {
			name     string
			id       string
			customer string
			items    []product.Product
			trail    *audit.Trail
		}{
			{"empty id", "", "Acme Corp", items, trail},
			{"empty customer", "O-1", "", items, trail},
			{"nil item", "O-1", "Acme Corp", []product.Product{nil}, trail},
			{"nil trail", "O-1", "Acme Corp", items, nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.NewOrder(tc.id, tc.customer, tc.items, tc.trail)

				require.Error(t, err)
				assert.Nil(t, o)
			})
		}
	})
}

func TestOrder_StartPicking(t *testing.T) {
	t.Run("should transition to Picked when all items are registered", func(t *testing.T) {
		trail := audit.NewTrail()
		item := newDurable(t, "D-1")
		o := newTestOrder(t, trail, item)
		registry := registryWith(t, item)

		require.NoError(t, o.StartPicking(registry))

		assert.Equal(t, order.Picked, o.Status())
		records := trail.Snapshot()
		require.Len(t, records, 2)
		assert.Equal(t, "Order O-1 changed status to Picked", records[1].Message)
	})

	t.Run("should fail when an item is missing from inventory", func(t *testing.T) {
		trail := audit.NewTrail()
		o := newTestOrder(t, trail, newDurable(t, "D-1"), newDurable(t, "D-2"))
		registry := registryWith(t, newDurable(t, "D-1"))

		err := o.StartPicking(registry)

		require.ErrorIs(t, err, order.ErrItemsMissingFromInventory)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 1, trail.Len())
	})

	t.Run("existence check ignores quantities", func(t *testing.T) {
		trail := audit.NewTrail()
		item := newDurable(t, "D-1")
		first := newTestOrder(t, trail, item)
		second, err := order.NewOrder("O-2", "Acme Corp", []product.Product{item}, trail)
		require.NoError(t, err)
		registry := registryWith(t, item)

		require.NoError(t, first.StartPicking(registry))
		require.NoError(t, second.StartPicking(registry))
	})

	t.Run("should fail when order is not pending", func(t *testing.T) {
		item := newDurable(t, "D-1")
		o := newTestOrder(t, audit.NewTrail(), item)
		registry := registryWith(t, item)
		require.NoError(t, o.StartPicking(registry))

		require.Error(t, o.StartPicking(registry))
	})

	t.Run("should require registry", func(t *testing.T) {
		o := newTestOrder(t, audit.NewTrail())

		require.Error(t, o.StartPicking(nil))
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	pickedOrder := func(t *testing.T, trail *audit.Trail) *order.Order {
		t.Helper()
		item := newDurable(t, "D-1")
		o := newTestOrder(t, trail, item)
		require.NoError(t, o.StartPicking(registryWith(t, item)))
		return o
	}

	t.Run("full happy path reaches Delivered", func(t *testing.T) {
		trail := audit.NewTrail()
		o := pickedOrder(t, trail)

		require.NoError(t, o.MarkShipped())
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())

		records := trail.Snapshot()
		require.Len(t, records, 4)
		assert.Equal(t, "Order O-1 changed status to Shipped", records[2].Message)
		assert.Equal(t, "Order O-1 changed status to Delivered", records[3].Message)
	})

	t.Run("cannot ship a pending order", func(t *testing.T) {
		o := newTestOrder(t, audit.NewTrail())

		require.Error(t, o.MarkShipped())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot deliver before shipping", func(t *testing.T) {
		o := pickedOrder(t, audit.NewTrail())

		require.Error(t, o.MarkDelivered())
		assert.Equal(t, order.Picked, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order with reason", func(t *testing.T) {
		trail := audit.NewTrail()
		o := newTestOrder(t, trail)

		require.NoError(t, o.Cancel("damaged goods"))

		assert.Equal(t, order.Cancelled, o.Status())
		records := trail.Snapshot()
		require.Len(t, records, 3)
		assert.Equal(t, "Order O-1 changed status to Cancelled", records[1].Message)
		assert.Equal(t, audit.TypeWarning, records[2].Type)
		assert.Equal(t, "Order O-1 cancelled: damaged goods", records[2].Message)
	})

	t.Run("empty reason defaults to user requested", func(t *testing.T) {
		trail := audit.NewTrail()
		o := newTestOrder(t, trail)

		require.NoError(t, o.Cancel(""))

		records := trail.Snapshot()
		assert.Equal(t, "Order O-1 cancelled: user requested", records[len(records)-1].Message)
	})

	t.Run("should cancel picked order", func(t *testing.T) {
		trail := audit.NewTrail()
		item := newDurable(t, "D-1")
		o := newTestOrder(t, trail, item)
		require.NoError(t, o.StartPicking(registryWith(t, item)))

		require.NoError(t, o.Cancel("customer changed mind"))

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cannot cancel shipped order", func(t *testing.T) {
		trail := audit.NewTrail()
		item := newDurable(t, "D-1")
		o := newTestOrder(t, trail, item)
		require.NoError(t, o.StartPicking(registryWith(t, item)))
		require.NoError(t, o.MarkShipped())

		require.Error(t, o.Cancel("too late"))
		assert.Equal(t, order.Shipped, o.Status())
	})
}

func TestOrder_Summarize(t *testing.T) {
	trail := audit.NewTrail()
	o := newTestOrder(t, trail, newDurable(t, "D-1"), newDurable(t, "D-2"))

	summary := o.Summarize()

	assert.Equal(t, "O-1", summary.ID)
	assert.Equal(t, "Acme Corp", summary.Customer)
	assert.Equal(t, "Pending", summary.Status)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, o.CreatedAt(), summary.CreatedAt)
}

func TestOrder_Items(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		o := newTestOrder(t, audit.NewTrail())

		items := o.Items()
		items[0] = nil

		assert.NotNil(t, o.Items()[0])
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order without trail records", func(t *testing.T) {
		trail := audit.NewTrail()
		createdAt := time.Now().Add(-24 * time.Hour)

		o, err := order.RestoreOrder(
			"O-9", "Acme Corp",
			[]product.Product{newDurable(t, "D-1")},
			order.Shipped, createdAt, trail,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Zero(t, trail.Len())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"O-9", "Acme Corp",
			[]product.Product{newDurable(t, "D-1")},
			order.Unknown, time.Now(), audit.NewTrail(),
		)

		require.Error(t, err)
	})
}

func TestOrder_ConcurrentTransitions(t *testing.T) {
	t.Run("only one of several concurrent ship attempts succeeds", func(t *testing.T) {
		trail := audit.NewTrail()
		item := newDurable(t, "D-1")
		o := newTestOrder(t, trail, item)
		require.NoError(t, o.StartPicking(registryWith(t, item)))

		var wg sync.WaitGroup
		var succeeded atomic.Int32
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := o.MarkShipped(); err == nil {
					succeeded.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), succeeded.Load())
		assert.Equal(t, order.Shipped, o.Status())
	})
}
