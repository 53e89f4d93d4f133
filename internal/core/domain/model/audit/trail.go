// Package audit contains the append-only trail of status and logistics events.
//
// The trail is part of the domain model: orders and shipments write to it and
// the presentation layer reads it back. It is distinct from the operational
// process logging, which is fire-and-forget and never queried.
package audit

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// RecordType classifies an audit record.
type RecordType string

const (
	// TypeOrderStatus marks an order status change.
	TypeOrderStatus RecordType = "ORDER_STATUS"

	// TypeShipmentEvent marks a shipment lifecycle event.
	TypeShipmentEvent RecordType = "SHIPMENT_EVENT"

	// TypeWarning marks a warning, such as an order cancellation reason.
	TypeWarning RecordType = "WARNING"

	// TypeInfo marks an informational note.
	TypeInfo RecordType = "INFO"
)

// Record is a single audit entry. Records are immutable once appended.
type Record struct {
	Type    RecordType
	Message string
	At      time.Time
}

// Trail is a process-wide append-only sequence of audit records.
// No record is ever modified or removed once appended. The trail is
// session-scoped: it is not part of the persisted snapshot.
// Safe for concurrent use; request handlers and background jobs share it.
type Trail struct {
	mu      sync.Mutex
	records []Record
}

// NewTrail creates an empty audit trail.
func NewTrail() *Trail {
	return &Trail{}
}

// LogOrderStatus appends a record for an order status change.
func (t *Trail) LogOrderStatus(orderID, status string) {
	t.append(TypeOrderStatus, fmt.Sprintf("Order %s changed status to %s", orderID, status))
}

// LogShipmentEvent appends a record for a shipment event.
func (t *Trail) LogShipmentEvent(shipmentID, event string) {
	t.append(TypeShipmentEvent, fmt.Sprintf("Shipment %s: %s", shipmentID, event))
}

// LogWarning appends a warning record.
func (t *Trail) LogWarning(message string) {
	t.append(TypeWarning, message)
}

// LogInfo appends an informational record.
func (t *Trail) LogInfo(message string) {
	t.append(TypeInfo, message)
}

// Len returns the number of records.
func (t *Trail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Snapshot returns a copy of all records in insertion order.
// Mutating the returned slice does not affect the trail.
func (t *Trail) Snapshot() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	records := make([]Record, len(t.records))
	copy(records, t.records)
	return records
}

// ExportText returns the trail as formatted text, one line per record in
// insertion order: [timestamp] (TYPE) -> message.
func (t *Trail) ExportText() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, len(t.records))
	for _, r := range t.records {
		lines = append(lines, fmt.Sprintf("[%s] (%s) -> %s",
			r.At.Format("2006-01-02 15:04:05"), r.Type, r.Message))
	}
	return strings.Join(lines, "\n")
}

func (t *Trail) append(recordType RecordType, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(t.records, Record{
		Type:    recordType,
		Message: message,
		At:      time.Now(),
	})
}
