package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ChangeStatusCommandHandler applies a transition inside the order's critical
// section, so of two racing claims (or a customer and a restaurant cancelling
// at once) exactly one succeeds and the other sees the winner's state.
type ChangeStatusCommandHandler struct {
	deps   Deps
	policy services.TransitionPolicy
	logger *slog.Logger
}

func NewChangeStatusCommandHandler(deps Deps) ChangeStatusCommandHandler {
	policy := deps.Policy
	if policy.CancellationWindow() <= 0 {
		policy = services.NewTransitionPolicy(services.DefaultCancellationWindow)
	}
	return ChangeStatusCommandHandler{deps: deps, policy: policy, logger: deps.logger("change_status")}
}

// Handle returns the order as committed by the transition.
//
// Returns errs.ErrAlreadyClaimed (as *errs.AlreadyClaimedError), errs.ErrInvalidTransition,
// errs.ErrUnauthorized or errs.ErrCancellationWindowClosed when the move is refused.
func (h ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		committed *order.Order
		from      order.Status
	)
	err := h.deps.Orders.Update(ctx, cmd.OrderID(), func(o *order.Order) error {
		from = o.Status()
		if err := h.policy.Apply(o, cmd.Actor(), cmd.Target(), h.deps.now()); err != nil {
			return err
		}
		committed = o.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", committed.ID().String(),
		"from", from.String(),
		"to", committed.Status().String(),
		"actor", cmd.Actor().Username,
	)

	event := ports.Event{
		Type:    ports.OrderStatusChanged,
		OrderID: committed.ID().String(),
		Actor:   cmd.Actor().String(),
		Status:  committed.Status().String(),
		Total:   committed.Total().String(),
		Message: fmt.Sprintf("%s -> %s", from, committed.Status()),
	}
	if committed.Status() == order.AcceptedByShipper {
		event.Type = ports.OrderClaimed
		event.Message = fmt.Sprintf("claimed by %s", committed.Shipper())
	}
	h.deps.publish(ctx, h.logger, event)
	return committed, nil
}
