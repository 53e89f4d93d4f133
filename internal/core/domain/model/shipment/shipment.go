// Package shipment contains the Shipment aggregate that tracks an order
// after it leaves the facility.
package shipment

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment constructor.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Event is a single entry in a shipment's local history.
type Event struct {
	At   time.Time
	Text string
}

// Shipment tracks the outbound journey of a shipped order.
//
// A shipment keeps its own event history in addition to the shared audit
// trail. The tracking code is minted on demand by GenerateTracking; calling
// it again replaces the previous code.
//
// Mutations are serialized by a mutex; the aggregate is shared between
// concurrent requests once stored.
type Shipment struct {
	mu           sync.Mutex
	id           string
	orderID      string
	carrier      string
	trackingCode string
	createdAt    time.Time
	delivered    bool
	events       []Event

	trail *audit.Trail
	rng   *rand.Rand

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment for the given order and carrier.
//
// Parameters:
//   - id: unique shipment identifier, must be non-empty
//   - orderID: identifier of the shipped order, must be non-empty
//   - carrier: carrier name, must be non-empty
//   - trail: audit trail that receives the shipment events
//   - rng: source for tracking code generation; nil falls back to the
//     process-wide seeded source
//
// The creation itself is recorded as the first event.
func NewShipment(id, orderID, carrier string, trail *audit.Trail, rng *rand.Rand) (*Shipment, error) {
	s := &Shipment{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setCarrier(carrier),
		s.setTrail(trail),
	); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.rng = rng
	s.createdAt = time.Now()

	s.recordEvent("Shipment created")

	return s, nil
}

// ID returns the unique identifier of the shipment.
func (s *Shipment) ID() string {
	return s.id
}

// OrderID returns the identifier of the shipped order.
func (s *Shipment) OrderID() string {
	return s.orderID
}

// Carrier returns the carrier name.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// TrackingCode returns the current tracking code, or the empty string if
// none was generated yet.
func (s *Shipment) TrackingCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trackingCode
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// IsDelivered reports whether the shipment was marked delivered.
func (s *Shipment) IsDelivered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivered
}

// GenerateTracking mints a new tracking code of the form AAA-00000000:
// three random uppercase letters, a dash, and eight random digits.
//
// Each call produces and stores a fresh code, replacing any previous one,
// and records the generation as a shipment event.
func (s *Shipment) GenerateTracking() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := make([]byte, 0, 12)
	for i := 0; i < 3; i++ {
		code = append(code, byte('A'+s.rng.IntN(26)))
	}
	code = append(code, '-')
	for i := 0; i < 8; i++ {
		code = append(code, byte('0'+s.rng.IntN(10)))
	}

	s.trackingCode = string(code)
	s.recordEvent(fmt.Sprintf("Tracking code generated: %s", s.trackingCode))

	return s.trackingCode
}

// ETA returns the delivery estimate shown to the customer.
// The estimate is a fixed business promise, not a computed date.
func (s *Shipment) ETA() string {
	return "Estimated delivery: 3-5 business days"
}

// MarkDelivered flags the shipment as delivered and records the event.
//
// The flag is idempotent. The event recording is not: every call appends
// another delivery event to the history and the audit trail.
func (s *Shipment) MarkDelivered() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delivered = true
	s.recordEvent("Delivered to recipient")
}

// History returns the shipment's events in insertion order.
// Mutating the returned slice does not affect the shipment.
func (s *Shipment) History() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

// Validate ensures the shipment was created through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// recordEvent appends to the local history and the audit trail.
// Callers must hold the lock, except during construction.
func (s *Shipment) recordEvent(text string) {
	s.events = append(s.events, Event{At: time.Now(), Text: text})
	s.trail.LogShipmentEvent(s.id, text)
}

func (s *Shipment) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id is required")
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId is required")
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier is required")
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setTrail(trail *audit.Trail) error {
	if trail == nil {
		return errs.NewValueIsRequiredError("trail is required")
	}
	s.trail = trail
	return nil
}
