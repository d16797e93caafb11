package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddFoodItemCommandIsNotConstructed = errors.New(
	"AddFoodItemCommand must be created via NewAddFoodItemCommand constructor",
)

// AddFoodItemCommand puts a new item on a restaurant's menu.
//
// Example:
//
//	cmd, err := NewAddFoodItemCommand(actor, "Classic Burger", "beef, cheddar",
//	    kernel.MustParseMoney("6.99"), "Burgers", "burgerking",
//	    []food.Variation{{Name: "Large", Delta: kernel.MustParseMoney("1.50")}})
//	if err != nil {
//	    return err
//	}
//	item, err := handler.Handle(ctx, cmd)
type AddFoodItemCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	name        string
	description string
	price       kernel.Money
	category    string
	restaurant  string
	variations  []food.Variation

	guard guard.ConstructorGuard
}

// NewAddFoodItemCommand validates the request. An empty restaurant defaults to
// the actor itself, so restaurants never have to name themselves.
func NewAddFoodItemCommand(
	actor user.Actor,
	name, description string,
	price kernel.Money,
	category, restaurant string,
	variations []food.Variation,
) (AddFoodItemCommand, error) {
	if restaurant == "" {
		restaurant = actor.Username
	}

	cmd := AddFoodItemCommand{
		description: description,
		variations:  append([]food.Variation(nil), variations...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
		cmd.setRestaurant(restaurant),
	); err != nil {
		return AddFoodItemCommand{}, err
	}

	return cmd, nil
}

func (c AddFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodItemCommandIsNotConstructed)
}

func (c AddFoodItemCommand) Actor() user.Actor { return c.actor }
func (c AddFoodItemCommand) Name() string { return c.name }
func (c AddFoodItemCommand) Description() string { return c.description }
func (c AddFoodItemCommand) Price() kernel.Money { return c.price }
func (c AddFoodItemCommand) Category() string { return c.category }
func (c AddFoodItemCommand) Restaurant() string { return c.restaurant }
func (c AddFoodItemCommand) Variations() []food.Variation {
	return append([]food.Variation(nil), c.variations...)
}

func (c *AddFoodItemCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddFoodItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddFoodItemCommand) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0.00", "any")
	}
	c.price = price
	return nil
}

func (c *AddFoodItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}

func (c *AddFoodItemCommand) setRestaurant(restaurant string) error {
	if restaurant == "" {
		return errs.NewValueIsRequiredError("restaurant")
	}
	c.restaurant = restaurant
	return nil
}
