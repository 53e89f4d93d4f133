package queries

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// GetOrdersQueryHandler projects stored orders into reporting summaries.
type GetOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(orderRepo ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query.
// Summaries appear in creation order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]order.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if status, ok := query.Status(); ok {
		orders, err = h.orderRepo.GetAllInStatus(ctx, status)
	} else {
		orders, err = h.orderRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]order.Summary, 0, len(orders))
	for _, aggregate := range orders {
		summaries = append(summaries, aggregate.Summarize())
	}

	return summaries, nil
}
