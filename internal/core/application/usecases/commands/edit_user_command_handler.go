package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

type EditUserCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewEditUserCommandHandler(deps Deps) EditUserCommandHandler {
	return EditUserCommandHandler{deps: deps, logger: deps.logger("edit_user")}
}

// Handle is restricted to Administrator, Admin and Owner. Admin and Owner
// accounts, and the Admin and Owner roles, are reserved to Admin and Owner.
// A restaurant keeps its role while it still has items on the menu.
func (h EditUserCommandHandler) Handle(ctx context.Context, cmd EditUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	actor := cmd.Actor()
	if !actor.Role.CanGrant(cmd.Role()) {
		return nil, errs.NewUnauthorizedError(actor.String(), fmt.Sprintf("grant the %s role", cmd.Role()))
	}

	menu, err := h.menuSize(ctx, cmd.Username())
	if err != nil {
		return nil, err
	}

	var before user.Role
	var edited *user.User
	err = h.deps.Users.Update(ctx, cmd.Username(), func(u *user.User) error {
		if !actor.Role.CanGrant(u.Role()) {
			return errs.NewUnauthorizedError(actor.String(), fmt.Sprintf("edit the %s account %s", u.Role(), u.Username()))
		}
		if u.Role() == user.Restaurant && cmd.Role() != user.Restaurant && menu > 0 {
			return errs.NewValueIsInvalidErrorWithCause("role",
				fmt.Errorf("%s still has %d item(s) on the menu", u.Username(), menu))
		}
		before = u.Role()
		if err := u.Edit(cmd.Role(), cmd.Address(), cmd.Phone(), cmd.DisplayName()); err != nil {
			return err
		}
		edited = u.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "User edited",
		"username", edited.Username(),
		"role", edited.Role().String(),
		"by", actor.Username,
	)
	message := fmt.Sprintf("%s profile updated", edited.Username())
	if before != edited.Role() {
		message = fmt.Sprintf("%s changed from %s to %s", edited.Username(), before, edited.Role())
	}
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.UserUpdated,
		Actor:   actor.String(),
		Subject: edited.Username(),
		Message: message,
	})
	return edited, nil
}

func (h EditUserCommandHandler) menuSize(ctx context.Context, restaurant string) (int, error) {
	items, err := h.deps.Foods.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, item := range items {
		if item.Restaurant() == restaurant {
			n++
		}
	}
	return n, nil
}
