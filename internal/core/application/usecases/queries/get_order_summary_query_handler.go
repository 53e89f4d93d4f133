package queries

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// GetOrderSummaryQueryHandler retrieves one order's summary together with
// its shipment details when the order has shipped.
type GetOrderSummaryQueryHandler struct {
	orderRepo    ports.OrderRepository
	shipmentRepo ports.ShipmentRepository
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(
	orderRepo ports.OrderRepository,
	shipmentRepo ports.ShipmentRepository,
) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{orderRepo: orderRepo, shipmentRepo: shipmentRepo}
}

// Handle executes the query.
// A missing shipment is not an error; orders before Shipped have none.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	response := GetOrderSummaryQueryResponse{Order: aggregate.Summarize()}

	outbound, err := h.shipmentRepo.GetByOrderID(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return response, nil
		}
		return GetOrderSummaryQueryResponse{}, err
	}
	response.Shipment = shipmentStatus(outbound)

	return response, nil
}

func shipmentStatus(outbound *shipment.Shipment) *ShipmentStatusResponse {
	history := outbound.History()
	events := make([]ShipmentEventResponse, 0, len(history))
	for _, event := range history {
		events = append(events, ShipmentEventResponse{At: event.At, Text: event.Text})
	}

	return &ShipmentStatusResponse{
		ID:           outbound.ID(),
		Carrier:      outbound.Carrier(),
		TrackingCode: outbound.TrackingCode(),
		ETA:          outbound.ETA(),
		Delivered:    outbound.IsDelivered(),
		History:      events,
	}
}
