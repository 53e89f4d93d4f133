package shipment_test

import (
	"math/rand/v2"
	"testing"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShipment(t *testing.T, trail *audit.Trail) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment("SH-1", "O-1", "FastCargo", trail, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should create shipment with creation event", func(t *testing.T) {
		trail := audit.NewTrail()

		s := newShipment(t, trail)

		assert.Equal(t, "SH-1", s.ID())
		assert.Equal(t, "O-1", s.OrderID())
		assert.Equal(t, "FastCargo", s.Carrier())
		assert.Empty(t, s.TrackingCode())
		assert.False(t, s.IsDelivered())
		assert.False(t, s.CreatedAt().IsZero())
		require.NoError(t, s.Validate())

		history := s.History()
		require.Len(t, history, 1)
		assert.Equal(t, "Shipment created", history[0].Text)

		records := trail.Snapshot()
		require.Len(t, records, 1)
		assert.Equal(t, audit.TypeShipmentEvent, records[0].Type)
		assert.Equal(t, "Shipment SH-1: Shipment created", records[0].Message)
	})

	t.Run("nil source falls back to a seeded one", func(t *testing.T) {
		s, err := shipment.NewShipment("SH-1", "O-1", "FastCargo", audit.NewTrail(), nil)

		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z]{3}-[0-9]{8}$`, s.GenerateTracking())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		trail := audit.NewTrail()

		testCases := []struct {
			name    string
			id      string
			orderID string
			carrier string
			trail   *audit.Trail
		}{
			{"empty id", "", "O-1", "FastCargo", trail},
			{"empty order id", "SH-1", "", "FastCargo", trail},
			{"empty carrier", "SH-1", "O-1", "", trail},
			{"nil trail", "SH-1", "O-1", "FastCargo", nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				s, err := shipment.NewShipment(tc.id, tc.orderID, tc.carrier, tc.trail, nil)

				require.Error(t, err)
				assert.Nil(t, s)
			})
		}
	})
}

func TestShipment_GenerateTracking(t *testing.T) {
	t.Run("code matches carrier format", func(t *testing.T) {
		s := newShipment(t, audit.NewTrail())

		code := s.GenerateTracking()

		assert.Regexp(t, `^[A-Z]{3}-[0-9]{8}$`, code)
		assert.Equal(t, code, s.TrackingCode())
	})

	t.Run("each call replaces the stored code and records an event", func(t *testing.T) {
		trail := audit.NewTrail()
		s := newShipment(t, trail)

		first := s.GenerateTracking()
		second := s.GenerateTracking()

		assert.NotEqual(t, first, second)
		assert.Equal(t, second, s.TrackingCode())
		assert.Len(t, s.History(), 3)
		assert.Equal(t, 3, trail.Len())
	})
}

func TestShipment_ETA(t *testing.T) {
	s := newShipment(t, audit.NewTrail())

	assert.Equal(t, "Estimated delivery: 3-5 business days", s.ETA())
}

func TestShipment_MarkDelivered(t *testing.T) {
	t.Run("flags the shipment and records the event", func(t *testing.T) {
		trail := audit.NewTrail()
		s := newShipment(t, trail)

		s.MarkDelivered()

		assert.True(t, s.IsDelivered())
		history := s.History()
		require.Len(t, history, 2)
		assert.Equal(t, "Delivered to recipient", history[1].Text)
		assert.Equal(t, "Shipment SH-1: Delivered to recipient", trail.Snapshot()[1].Message)
	})

	t.Run("flag is idempotent but events accumulate", func(t *testing.T) {
		s := newShipment(t, audit.NewTrail())

		s.MarkDelivered()
		s.MarkDelivered()

		assert.True(t, s.IsDelivered())
		assert.Len(t, s.History(), 3)
	})
}

func TestShipment_History(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		s := newShipment(t, audit.NewTrail())

		history := s.History()
		history[0].Text = "tampered"

		assert.Equal(t, "Shipment created", s.History()[0].Text)
	})
}
