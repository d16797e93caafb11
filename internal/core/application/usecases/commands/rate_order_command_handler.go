package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// RateOrderCommandHandler records feedback on the order first, under its lock,
// and only then spreads the scores to the catalog and the shipper. Because an
// order is rated once, a retry after a partial failure cannot double count.
type RateOrderCommandHandler struct {
	deps       Deps
	aggregator services.FeedbackAggregator
	logger     *slog.Logger
}

func NewRateOrderCommandHandler(deps Deps) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		deps:       deps,
		aggregator: services.NewFeedbackAggregator(),
		logger:     deps.logger("rate_order"),
	}
}

func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.Customer().Role != user.Customer {
		return errs.NewUnauthorizedError(cmd.Customer().String(), "rate orders")
	}

	var distribution services.Distribution
	err := h.deps.Orders.Update(ctx, cmd.OrderID(), func(o *order.Order) error {
		d, err := h.aggregator.Record(o, cmd.Customer().Username, cmd.Feedback())
		if err != nil {
			return err
		}
		distribution = d
		return nil
	})
	if err != nil {
		return err
	}

	for _, rating := range distribution.Foods {
		err = h.deps.Foods.Update(ctx, rating.FoodID, func(f *food.FoodItem) error {
			return h.aggregator.ApplyToFood(f, rating)
		})
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.InfoContext(ctx, "Rated food left the catalog, kept on the order only",
				"order_id", cmd.OrderID().String(), "food_id", rating.FoodID.String())
			continue
		}
		if err != nil {
			return err
		}
	}

	if s := distribution.Shipper; s != nil {
		err = h.deps.Users.Update(ctx, s.Shipper, func(u *user.User) error {
			return h.aggregator.ApplyToShipper(u, *s)
		})
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.InfoContext(ctx, "Rated shipper no longer registered", "shipper", s.Shipper)
		} else if err != nil {
			return err
		}
	}

	h.logger.InfoContext(ctx, "Order rated",
		"order_id", cmd.OrderID().String(), "foods", len(distribution.Foods), "shipper", distribution.Shipper != nil)
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.OrderRated,
		OrderID: cmd.OrderID().String(),
		Actor:   cmd.Customer().String(),
		Message: fmt.Sprintf("rated %d food(s)%s", len(distribution.Foods), shipperSuffix(distribution.Shipper)),
	})
	return nil
}

func shipperSuffix(s *services.ShipperRating) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf(" and shipper %s %d/5", s.Shipper, s.Rating)
}
