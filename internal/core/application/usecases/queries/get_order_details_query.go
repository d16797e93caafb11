package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery fetches one order with its items and a printable summary.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.UUID, actor user.Actor) (GetOrderDetailsQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderDetailsQuery) Actor() user.Actor {
	return q.actor
}

type OrderItemResponse struct {
	FoodID     kernel.UUID
	Name       string
	Restaurant string
	Variation  string
	Quantity   int
	UnitPrice  kernel.Money
	LineTotal  kernel.Money
}

type OrderDetailsResponse struct {
	OrderSummaryResponse

	Address          string
	Phone            string
	Note             string
	Payment          string
	PaymentReference string
	ShipperName      string
	ComplaintText    string
	Rated            bool
	Items            []OrderItemResponse
	Text             string
}

// MessageResponse is one chat line.
type MessageResponse struct {
	Sender string
	Text   string
	SentAt time.Time
}
