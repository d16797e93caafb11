package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
)

type SetRestaurantOpenCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewSetRestaurantOpenCommandHandler(deps Deps) SetRestaurantOpenCommandHandler {
	return SetRestaurantOpenCommandHandler{deps: deps, logger: deps.logger("set_restaurant_open")}
}

func (h SetRestaurantOpenCommandHandler) Handle(ctx context.Context, cmd SetRestaurantOpenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := authorizeCatalog(cmd.Actor(), cmd.Restaurant()); err != nil {
		return err
	}

	err := h.deps.Users.Update(ctx, cmd.Restaurant(), func(u *user.User) error {
		return u.SetOpen(cmd.Open())
	})
	if err != nil {
		return err
	}

	state := "closed"
	if cmd.Open() {
		state = "open"
	}
	h.logger.InfoContext(ctx, "Restaurant availability changed", "restaurant", cmd.Restaurant(), "open", cmd.Open())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.CatalogChanged,
		Actor:   cmd.Actor().String(),
		Subject: cmd.Restaurant(),
		Message: fmt.Sprintf("%s is now %s", cmd.Restaurant(), state),
	})
	return nil
}
