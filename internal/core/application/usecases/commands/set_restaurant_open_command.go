package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetRestaurantOpenCommandIsNotConstructed = errors.New(
	"SetRestaurantOpenCommand must be created via NewSetRestaurantOpenCommand constructor",
)

// SetRestaurantOpenCommand opens or closes a restaurant. A closed restaurant's
// foods cannot be added to carts or checked out.
type SetRestaurantOpenCommand struct { //nolint:recvcheck //using for validation
	actor      user.Actor
	restaurant string
	open       bool

	guard guard.ConstructorGuard
}

// NewSetRestaurantOpenCommand defaults an empty restaurant to the actor.
func NewSetRestaurantOpenCommand(actor user.Actor, restaurant string, open bool) (SetRestaurantOpenCommand, error) {
	if restaurant == "" {
		restaurant = actor.Username
	}
	var restaurantErr error
	if restaurant == "" {
		restaurantErr = errs.NewValueIsRequiredError("restaurant")
	}
	if err := errors.Join(actor.Validate(), restaurantErr); err != nil {
		return SetRestaurantOpenCommand{}, err
	}
	return SetRestaurantOpenCommand{
		actor:      actor,
		restaurant: restaurant,
		open:       open,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetRestaurantOpenCommand) Validate() error {
	return c.guard.Validate(ErrSetRestaurantOpenCommandIsNotConstructed)
}

func (c SetRestaurantOpenCommand) Actor() user.Actor {
	return c.actor
}

func (c SetRestaurantOpenCommand) Restaurant() string {
	return c.restaurant
}

func (c SetRestaurantOpenCommand) Open() bool {
	return c.open
}
