package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

type PostMessageCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewPostMessageCommandHandler(deps Deps) PostMessageCommandHandler {
	return PostMessageCommandHandler{deps: deps, logger: deps.logger("post_message")}
}

// Handle reports errs.ErrChatNotAvailable outside AcceptedByShipper/Delivering
// before checking who is posting.
func (h PostMessageCommandHandler) Handle(ctx context.Context, cmd PostMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.deps.Orders.Update(ctx, cmd.OrderID(), func(o *order.Order) error {
		if o.Status().AllowsChat() {
			if err := h.deps.Policy.AuthorizeChat(o, cmd.Actor()); err != nil {
				return err
			}
		}
		return o.PostMessage(cmd.Actor().Username, cmd.Text(), h.deps.now())
	})
	if err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "Chat message posted", "order_id", cmd.OrderID().String(), "sender", cmd.Actor().Username)
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.OrderMessagePosted,
		OrderID: cmd.OrderID().String(),
		Actor:   cmd.Actor().String(),
		Message: cmd.Text(),
	})
	return nil
}
