package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery represents a request for the summary of one order,
// including its shipment when one exists.
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for one order's summary.
func NewGetOrderSummaryQuery(orderID string) (GetOrderSummaryQuery, error) {
	query := GetOrderSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (q GetOrderSummaryQuery) OrderID() string {
	return q.orderID
}

func (q *GetOrderSummaryQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId is required")
	}

	q.orderID = orderID
	return nil
}

// GetOrderSummaryQueryResponse combines an order summary with its shipment
// details. Shipment is nil until the order ships.
type GetOrderSummaryQueryResponse struct {
	Order    order.Summary
	Shipment *ShipmentStatusResponse
}

// ShipmentStatusResponse describes the outbound journey of a shipped order.
type ShipmentStatusResponse struct {
	ID           string
	Carrier      string
	TrackingCode string
	ETA          string
	Delivered    bool
	History      []ShipmentEventResponse
}

// ShipmentEventResponse is one entry of a shipment's history.
type ShipmentEventResponse struct {
	At   time.Time
	Text string
}
