package audit_test

import (
	"fmt"
	"strings"
	"testing"

	"warehouse/internal/core/domain/model/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrail_Append(t *testing.T) {
	t.Run("n appends produce exactly n records in call order", func(t *testing.T) {
		trail := audit.NewTrail()

		trail.LogOrderStatus("O-1", "Pending")
		trail.LogShipmentEvent("SH-1", "Shipment created")
		trail.LogWarning("Order O-1 cancelled: damaged goods")
		trail.LogInfo("session started")

		records := trail.Snapshot()
		require.Len(t, records, 4)
		assert.Equal(t, audit.TypeOrderStatus, records[0].Type)
		assert.Equal(t, "Order O-1 changed status to Pending", records[0].Message)
		assert.Equal(t, audit.TypeShipmentEvent, records[1].Type)
		assert.Equal(t, "Shipment SH-1: Shipment created", records[1].Message)
		assert.Equal(t, audit.TypeWarning, records[2].Type)
		assert.Equal(t, audit.TypeInfo, records[3].Type)
		assert.Equal(t, 4, trail.Len())
	})

	t.Run("no deduplication of identical messages", func(t *testing.T) {
		trail := audit.NewTrail()

		trail.LogWarning("same")
		trail.LogWarning("same")

		assert.Equal(t, 2, trail.Len())
	})

	t.Run("records carry timestamps in append order", func(t *testing.T) {
		trail := audit.NewTrail()

		for i := 0; i < 5; i++ {
			trail.LogInfo(fmt.Sprintf("event %d", i))
		}

		records := trail.Snapshot()
		for i := 1; i < len(records); i++ {
			assert.False(t, records[i].At.Before(records[i-1].At))
		}
	})
}

func TestTrail_Snapshot(t *testing.T) {
	t.Run("snapshot is a copy", func(t *testing.T) {
		trail := audit.NewTrail()
		trail.LogInfo("original")

		records := trail.Snapshot()
		records[0].Message = "tampered"

		assert.Equal(t, "original", trail.Snapshot()[0].Message)
	})

	t.Run("empty trail yields empty snapshot", func(t *testing.T) {
		assert.Empty(t, audit.NewTrail().Snapshot())
	})
}

func TestTrail_ExportText(t *testing.T) {
	t.Run("one line per record in insertion order", func(t *testing.T) {
		trail := audit.NewTrail()
		trail.LogOrderStatus("O-1", "Pending")
		trail.LogOrderStatus("O-1", "Picked")
		trail.LogWarning("low capacity")

		text := trail.ExportText()

		lines := strings.Split(text, "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "(ORDER_STATUS) -> Order O-1 changed status to Pending")
		assert.Contains(t, lines[1], "(ORDER_STATUS) -> Order O-1 changed status to Picked")
		assert.Contains(t, lines[2], "(WARNING) -> low capacity")
		for _, line := range lines {
			assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `, line)
		}
	})

	t.Run("empty trail exports empty text", func(t *testing.T) {
		assert.Empty(t, audit.NewTrail().ExportText())
	})
}
