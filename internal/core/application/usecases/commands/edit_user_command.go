package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrEditUserCommandIsNotConstructed = errors.New(
	"EditUserCommand must be created via NewEditUserCommand constructor",
)

// EditUserCommand lets user management staff rewrite another account's role
// and profile. The username never changes. Orders keep the address, phone
// and names captured at their checkout.
type EditUserCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	username    string
	role        user.Role
	address     string
	phone       string
	displayName string

	guard guard.ConstructorGuard
}

func NewEditUserCommand(
	actor user.Actor,
	username string,
	role user.Role,
	address, phone, displayName string,
) (EditUserCommand, error) {
	var usernameErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if err := errors.Join(actor.Validate(), usernameErr, role.Validate()); err != nil {
		return EditUserCommand{}, err
	}

	return EditUserCommand{
		actor:       actor,
		username:    username,
		role:        role,
		address:     address,
		phone:       phone,
		displayName: displayName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c EditUserCommand) Validate() error {
	return c.guard.Validate(ErrEditUserCommandIsNotConstructed)
}

func (c EditUserCommand) Actor() user.Actor {
	return c.actor
}

func (c EditUserCommand) Username() string {
	return c.username
}

func (c EditUserCommand) Role() user.Role {
	return c.role
}

func (c EditUserCommand) Address() string {
	return c.address
}

func (c EditUserCommand) Phone() string {
	return c.phone
}

func (c EditUserCommand) DisplayName() string {
	return c.displayName
}
