package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveFoodItemCommandIsNotConstructed = errors.New(
	"RemoveFoodItemCommand must be created via NewRemoveFoodItemCommand constructor",
)

// RemoveFoodItemCommand takes an item off the menu. Orders that already
// contain it keep their snapshot.
type RemoveFoodItemCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	foodID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveFoodItemCommand(actor user.Actor, foodID kernel.UUID) (RemoveFoodItemCommand, error) {
	if err := errors.Join(actor.Validate(), foodID.Validate()); err != nil {
		return RemoveFoodItemCommand{}, err
	}
	return RemoveFoodItemCommand{actor: actor, foodID: foodID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFoodItemCommandIsNotConstructed)
}

func (c RemoveFoodItemCommand) Actor() user.Actor {
	return c.actor
}

func (c RemoveFoodItemCommand) FoodID() kernel.UUID {
	return c.foodID
}
