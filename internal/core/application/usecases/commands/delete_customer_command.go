package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes a customer account and its cart. Orders the
// customer placed stay in the system.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	username string

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(actor user.Actor, username string) (DeleteCustomerCommand, error) {
	var usernameErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if err := errors.Join(actor.Validate(), usernameErr); err != nil {
		return DeleteCustomerCommand{}, err
	}
	return DeleteCustomerCommand{actor: actor, username: username, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) Actor() user.Actor {
	return c.actor
}

func (c DeleteCustomerCommand) Username() string {
	return c.username
}
