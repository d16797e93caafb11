package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand decrements a cart line by qty; a line reaching zero is dropped.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	customer  user.Actor
	foodID    kernel.UUID
	variation string
	quantity  int

	guard guard.ConstructorGuard
}

func NewRemoveFromCartCommand(
	customer user.Actor,
	foodID kernel.UUID,
	variation string,
	quantity int,
) (RemoveFromCartCommand, error) {
	if err := validateCartLine(customer, foodID, quantity); err != nil {
		return RemoveFromCartCommand{}, err
	}
	return RemoveFromCartCommand{
		customer:  customer,
		foodID:    foodID,
		variation: variation,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

func (c RemoveFromCartCommand) Customer() user.Actor {
	return c.customer
}

func (c RemoveFromCartCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c RemoveFromCartCommand) Variation() string {
	return c.variation
}

func (c RemoveFromCartCommand) Quantity() int {
	return c.quantity
}
