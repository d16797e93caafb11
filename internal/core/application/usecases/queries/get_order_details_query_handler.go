package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

const createdLayout = "2006-01-02 15:04:05"

type GetOrderDetailsQueryHandler struct {
	sources Sources
}

func NewGetOrderDetailsQueryHandler(sources Sources) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{sources: sources}
}

// Handle returns errs.ErrUnauthorized when the order is not visible to the actor.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	o, err := h.sources.Orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	if !canView(o, query.Actor()) {
		return OrderDetailsResponse{}, errs.NewUnauthorizedError(query.Actor().String(), "view this order")
	}

	all, err := h.sources.Orders.List(ctx)
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	shipperName := o.Shipper()
	if o.HasShipper() {
		shipper, getErr := h.sources.Users.Get(ctx, o.Shipper())
		if getErr != nil && !errors.Is(getErr, errs.ErrObjectNotFound) {
			return OrderDetailsResponse{}, getErr
		}
		if getErr == nil && shipper.DisplayName() != "" {
			shipperName = shipper.DisplayName()
		}
	}

	details := OrderDetailsResponse{
		OrderSummaryResponse: summarize(o, kernel.ShortID(o.ID(), orderIDs(all))),
		Address:              o.Address(),
		Phone:                o.Phone(),
		Note:                 o.Note(),
		Payment:              o.PaymentMethod().String(),
		PaymentReference:     o.PaymentReference(),
		ShipperName:          shipperName,
		ComplaintText:        o.Complaint(),
		Rated:                o.IsRated(),
	}
	for _, it := range o.Items() {
		details.Items = append(details.Items, OrderItemResponse{
			FoodID:     it.FoodID(),
			Name:       it.Name(),
			Restaurant: it.Restaurant(),
			Variation:  it.Variation(),
			Quantity:   it.Quantity(),
			UnitPrice:  it.UnitPrice().Add(it.VariationDelta()),
			LineTotal:  it.LineTotal(),
		})
	}
	details.Text = FormatOrderDetails(o, shipperName)
	return details, nil
}

// FormatOrderDetails renders the multi-line order view used by support and
// restaurant screens.
func FormatOrderDetails(o *order.Order, shipperName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s\n", o.ID())
	fmt.Fprintf(&b, "Customer: %s\n", o.Customer())
	fmt.Fprintf(&b, "Address: %s\n", o.Address())
	fmt.Fprintf(&b, "Phone: %s\n", o.Phone())
	fmt.Fprintf(&b, "Created: %s\n", o.CreatedAt().Format(createdLayout))
	fmt.Fprintf(&b, "Status: %s\n", o.Status())
	fmt.Fprintf(&b, "Payment: %s", o.PaymentMethod())
	if o.PaymentReference() != "" {
		fmt.Fprintf(&b, " (%s)", o.PaymentReference())
	}
	b.WriteString("\n")
	if o.Note() != "" {
		fmt.Fprintf(&b, "Note: %s\n", o.Note())
	}
	b.WriteString("Items:\n")
	for _, it := range o.Items() {
		name := it.Name()
		if it.Variation() != "" {
			name += " (" + it.Variation() + ")"
		}
		fmt.Fprintf(&b, "  - %s x%d  VND %s\n", name, it.Quantity(), it.LineTotal())
	}
	fmt.Fprintf(&b, "Total: VND %s\n", o.Total())
	if o.HasComplaint() {
		fmt.Fprintf(&b, "Complaint: %s\n", o.Complaint())
	}
	if o.HasShipper() {
		fmt.Fprintf(&b, "Shipper: %s\n", shipperName)
	}
	return b.String()
}
