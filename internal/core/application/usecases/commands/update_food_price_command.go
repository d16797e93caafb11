package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateFoodPriceCommandIsNotConstructed = errors.New(
	"UpdateFoodPriceCommand must be created via NewUpdateFoodPriceCommand constructor",
)

// UpdateFoodPriceCommand changes the base price of an item. Placed orders keep
// the price they were checked out at.
type UpdateFoodPriceCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	foodID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateFoodPriceCommand(actor user.Actor, foodID kernel.UUID, price kernel.Money) (UpdateFoodPriceCommand, error) {
	var priceErr error
	if price.IsNegative() {
		priceErr = errs.NewValueIsOutOfRangeError("price", price.String(), "0.00", "any")
	}
	if err := errors.Join(actor.Validate(), foodID.Validate(), priceErr); err != nil {
		return UpdateFoodPriceCommand{}, err
	}
	return UpdateFoodPriceCommand{
		actor:  actor,
		foodID: foodID,
		price:  price,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateFoodPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodPriceCommandIsNotConstructed)
}

func (c UpdateFoodPriceCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateFoodPriceCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c UpdateFoodPriceCommand) Price() kernel.Money {
	return c.price
}
