package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand adds a platform user. Credentials are verified by the
// identity collaborator upstream; only the profile is stored here.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	profile *user.User

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	username string,
	role user.Role,
	address, phone, displayName string,
) (RegisterUserCommand, error) {
	profile, err := user.NewUser(username, role, address, phone, displayName)
	if err != nil {
		return RegisterUserCommand{}, err
	}
	return RegisterUserCommand{profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// User returns a copy of the profile to register.
func (c RegisterUserCommand) User() *user.User {
	return c.profile.Clone()
}
