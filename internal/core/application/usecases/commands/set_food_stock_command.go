package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetFoodStockCommandIsNotConstructed = errors.New(
	"SetFoodStockCommand must be created via NewSetFoodStockCommand constructor",
)

// SetFoodStockCommand flips an item between in stock and sold out.
type SetFoodStockCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	foodID  kernel.UUID
	inStock bool

	guard guard.ConstructorGuard
}

func NewSetFoodStockCommand(actor user.Actor, foodID kernel.UUID, inStock bool) (SetFoodStockCommand, error) {
	if err := errors.Join(actor.Validate(), foodID.Validate()); err != nil {
		return SetFoodStockCommand{}, err
	}
	return SetFoodStockCommand{
		actor:   actor,
		foodID:  foodID,
		inStock: inStock,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetFoodStockCommand) Validate() error {
	return c.guard.Validate(ErrSetFoodStockCommandIsNotConstructed)
}

func (c SetFoodStockCommand) Actor() user.Actor {
	return c.actor
}

func (c SetFoodStockCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c SetFoodStockCommand) InStock() bool {
	return c.inStock
}
