package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrEditFoodItemCommandIsNotConstructed = errors.New(
	"EditFoodItemCommand must be created via NewEditFoodItemCommand constructor",
)

// EditFoodItemCommand rewrites the descriptive part of a menu entry: name,
// description, category and the full variation list. Price and stock have
// their own commands.
type EditFoodItemCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	foodID      kernel.UUID
	name        string
	description string
	category    string
	variations  []food.Variation

	guard guard.ConstructorGuard
}

func NewEditFoodItemCommand(
	actor user.Actor,
	foodID kernel.UUID,
	name, description, category string,
	variations []food.Variation,
) (EditFoodItemCommand, error) {
	var nameErr, categoryErr error
	if name == "" {
		nameErr = food.ErrNameIsRequired
	}
	if category == "" {
		categoryErr = food.ErrCategoryIsRequired
	}
	if err := errors.Join(actor.Validate(), foodID.Validate(), nameErr, categoryErr); err != nil {
		return EditFoodItemCommand{}, err
	}

	return EditFoodItemCommand{
		actor:       actor,
		foodID:      foodID,
		name:        name,
		description: description,
		category:    category,
		variations:  append([]food.Variation(nil), variations...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c EditFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrEditFoodItemCommandIsNotConstructed)
}

func (c EditFoodItemCommand) Actor() user.Actor {
	return c.actor
}

func (c EditFoodItemCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c EditFoodItemCommand) Name() string {
	return c.name
}

func (c EditFoodItemCommand) Description() string {
	return c.description
}

func (c EditFoodItemCommand) Category() string {
	return c.category
}

func (c EditFoodItemCommand) Variations() []food.Variation {
	return append([]food.Variation(nil), c.variations...)
}
