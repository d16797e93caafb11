package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	sources Sources
}

func NewListOrdersQueryHandler(sources Sources) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{sources: sources}
}

// Handle widens display ids past 6 hex characters only when two live orders
// would otherwise share one.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.sources.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	live := orderIDs(all)

	out := make([]OrderSummaryResponse, 0)
	for _, o := range all {
		if !canView(o, query.Actor()) {
			continue
		}
		out = append(out, summarize(o, kernel.ShortID(o.ID(), live)))
	}
	return out, nil
}

func summarize(o *order.Order, short string) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:        o.ID(),
		ShortID:   short,
		Customer:  o.Customer(),
		Total:     o.Total(),
		Status:    o.Status().String(),
		Shipper:   o.Shipper(),
		Complaint: o.HasComplaint(),
		CreatedAt: o.CreatedAt(),
		Line:      FormatOrderLine(o, short),
	}
}

// FormatOrderLine renders "[short] customer - VND total - STATUS".
func FormatOrderLine(o *order.Order, short string) string {
	return fmt.Sprintf("[%s] %s - VND %s - %s", short, o.Customer(), o.Total(), o.Status())
}

func orderIDs(orders []*order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}
