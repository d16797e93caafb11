package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
)

type RegisterUserCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewRegisterUserCommandHandler(deps Deps) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{deps: deps, logger: deps.logger("register_user")}
}

// Handle fails with errs.ErrValueIsInvalid when the username is taken.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u := cmd.User()
	if err := h.deps.Users.Add(ctx, u); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "User registered", "username", u.Username(), "role", u.Role().String())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.UserRegistered,
		Actor:   u.Actor().String(),
		Subject: u.Username(),
		Message: fmt.Sprintf("%s joined as %s", u.Username(), u.Role()),
	})
	return u, nil
}
