package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand changes the actor's own delivery address and phone.
// Orders already placed keep the contact details they were checked out with.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	address string
	phone   string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(actor user.Actor, address, phone string) (UpdateProfileCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	return UpdateProfileCommand{actor: actor, address: address, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateProfileCommand) Address() string {
	return c.address
}

func (c UpdateProfileCommand) Phone() string {
	return c.phone
}

type UpdateProfileCommandHandler struct {
	deps Deps
}

func NewUpdateProfileCommandHandler(deps Deps) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{deps: deps}
}

func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.deps.Users.Update(ctx, cmd.Actor().Username, func(u *user.User) error {
		u.UpdateProfile(cmd.Address(), cmd.Phone())
		return nil
	})
}
