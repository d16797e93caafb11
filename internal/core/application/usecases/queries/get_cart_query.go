package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

type GetCartQuery struct {
	customer user.Actor

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customer user.Actor) (GetCartQuery, error) {
	if err := customer.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customer: customer, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartLineResponse prices a line at the current catalog price. Lines whose
// food or variation disappeared are reported with Available false and left
// out of the total.
type CartLineResponse struct {
	FoodID    kernel.UUID
	Name      string
	Variation string
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
	Available bool
}

type CartResponse struct {
	Owner   string
	Lines   []CartLineResponse
	Total   kernel.Money
	IsEmpty bool
}

type GetCartQueryHandler struct {
	sources Sources
}

func NewGetCartQueryHandler(sources Sources) GetCartQueryHandler {
	return GetCartQueryHandler{sources: sources}
}

// Handle computes the total afresh on every call; it is never cached.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}
	if query.customer.Role != user.Customer {
		return CartResponse{}, errs.ErrNotACustomer
	}

	c, err := h.sources.Carts.Get(ctx, query.customer.Username)
	if err != nil {
		return CartResponse{}, err
	}

	resp := CartResponse{Owner: c.Owner(), IsEmpty: c.IsEmpty(), Lines: make([]CartLineResponse, 0, len(c.Lines()))}
	for _, line := range c.Lines() {
		r := CartLineResponse{FoodID: line.FoodID, Variation: line.Variation, Quantity: line.Quantity}

		item, getErr := h.sources.Foods.Get(ctx, line.FoodID)
		switch {
		case errors.Is(getErr, errs.ErrObjectNotFound):
			r.Name = line.FoodID.String()
		case getErr != nil:
			return CartResponse{}, getErr
		default:
			r.Name = item.Name()
			if unit, priceErr := item.UnitPrice(line.Variation); priceErr == nil {
				if r.LineTotal, err = unit.Times(line.Quantity); err != nil {
					return CartResponse{}, err
				}
				r.UnitPrice = unit
				r.Available = item.InStock()
			}
		}

		if r.Available {
			if resp.Total, err = resp.Total.Plus(r.LineTotal); err != nil {
				return CartResponse{}, err
			}
		}
		resp.Lines = append(resp.Lines, r)
	}
	return resp, nil
}
