package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

type DeleteCustomerCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewDeleteCustomerCommandHandler(deps Deps) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{deps: deps, logger: deps.logger("delete_customer")}
}

// Handle is restricted to Administrator and Admin, and only ever deletes
// Customer accounts.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if role := cmd.Actor().Role; role != user.Administrator && role != user.Admin {
		return errs.NewUnauthorizedError(cmd.Actor().String(), "delete customers")
	}

	target, err := h.deps.Users.Get(ctx, cmd.Username())
	if err != nil {
		return err
	}
	if target.Role() != user.Customer {
		return errs.NewValueIsInvalidErrorWithCause("username",
			fmt.Errorf("%s is a %s, only customers can be deleted", target.Username(), target.Role()))
	}

	if err = h.deps.Users.Remove(ctx, target.Username()); err != nil {
		return err
	}
	if err = h.deps.Carts.Remove(ctx, target.Username()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Customer deleted", "username", target.Username(), "by", cmd.Actor().Username)
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.UserDeleted,
		Actor:   cmd.Actor().String(),
		Subject: target.Username(),
		Message: fmt.Sprintf("customer %s deleted", target.Username()),
	})
	return nil
}
