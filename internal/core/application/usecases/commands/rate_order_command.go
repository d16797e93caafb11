package commands

import (
	"errors"
	"maps"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand carries a customer's feedback batch for a delivered order:
// per-food scores and an optional score for the shipper.
//
// Example:
//
//	five := 5
//	cmd, _ := NewRateOrderCommand(orderID, alice,
//	    map[kernel.UUID]order.FoodFeedback{burgerID: {Rating: 4, Comment: "juicy"}},
//	    &five, "fast")
//	err := handler.Handle(ctx, cmd)
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer user.Actor
	feedback order.Feedback

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(
	orderID kernel.UUID,
	customer user.Actor,
	foods map[kernel.UUID]order.FoodFeedback,
	shipperRating *int,
	shipperComment string,
) (RateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), customer.Validate()); err != nil {
		return RateOrderCommand{}, err
	}

	fb := order.Feedback{Foods: maps.Clone(foods), ShipperComment: shipperComment}
	if shipperRating != nil {
		r := *shipperRating
		fb.ShipperRating = &r
	}
	return RateOrderCommand{orderID: orderID, customer: customer, feedback: fb, guard: guard.NewConstructorGuard()}, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RateOrderCommand) Customer() user.Actor {
	return c.customer
}

func (c RateOrderCommand) Feedback() order.Feedback {
	return c.feedback
}
