package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand adds qty units of a food (optionally a named variation) to
// the customer's cart.
//
// Example:
//
//	cmd, _ := NewAddToCartCommand(alice, burgerID, "Large", 2)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrItemUnavailable) {
//	    // sold out or the restaurant closed
//	}
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customer  user.Actor
	foodID    kernel.UUID
	variation string
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddToCartCommand(customer user.Actor, foodID kernel.UUID, variation string, quantity int) (AddToCartCommand, error) {
	if err := validateCartLine(customer, foodID, quantity); err != nil {
		return AddToCartCommand{}, err
	}
	return AddToCartCommand{
		customer:  customer,
		foodID:    foodID,
		variation: variation,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) Customer() user.Actor {
	return c.customer
}

func (c AddToCartCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c AddToCartCommand) Variation() string {
	return c.variation
}

func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func validateCartLine(customer user.Actor, foodID kernel.UUID, quantity int) error {
	return errors.Join(customer.Validate(), foodID.Validate(), kernel.CheckQuantity(quantity))
}
