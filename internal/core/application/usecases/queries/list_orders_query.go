package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to actor, oldest first.
//
// Example:
//
//	query, _ := NewListOrdersQuery(bob)
//	orders, _ := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Println(o.Line) // [9b2f6c] alice - VND 9.99 - PLACED
//	}
type ListOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor user.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Actor {
	return q.actor
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID        kernel.UUID
	ShortID   string
	Customer  string
	Total     kernel.Money
	Status    string
	Shipper   string
	Complaint bool
	CreatedAt time.Time
	Line      string
}
