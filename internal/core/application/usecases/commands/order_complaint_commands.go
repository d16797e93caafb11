package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAttachComplaintCommandIsNotConstructed = errors.New(
		"AttachComplaintCommand must be created via NewAttachComplaintCommand constructor",
	)
	ErrResolveOrderComplaintCommandIsNotConstructed = errors.New(
		"ResolveOrderComplaintCommand must be created via NewResolveOrderComplaintCommand constructor",
	)
)

// AttachComplaintCommand sets the order's active complaint. A new complaint
// replaces the previous text; the order status is never touched.
type AttachComplaintCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer user.Actor
	text     string

	guard guard.ConstructorGuard
}

func NewAttachComplaintCommand(orderID kernel.UUID, customer user.Actor, text string) (AttachComplaintCommand, error) {
	var textErr error
	if text == "" {
		textErr = errs.NewValueIsRequiredError("complaint")
	}
	if err := errors.Join(orderID.Validate(), customer.Validate(), textErr); err != nil {
		return AttachComplaintCommand{}, err
	}
	return AttachComplaintCommand{orderID: orderID, customer: customer, text: text, guard: guard.NewConstructorGuard()}, nil
}

func (c AttachComplaintCommand) Validate() error {
	return c.guard.Validate(ErrAttachComplaintCommandIsNotConstructed)
}

func (c AttachComplaintCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AttachComplaintCommand) Customer() user.Actor {
	return c.customer
}

func (c AttachComplaintCommand) Text() string {
	return c.text
}

type AttachComplaintCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewAttachComplaintCommandHandler(deps Deps) AttachComplaintCommandHandler {
	return AttachComplaintCommandHandler{deps: deps, logger: deps.logger("attach_complaint")}
}

// Handle accepts complaints from the customer who placed the order only.
func (h AttachComplaintCommandHandler) Handle(ctx context.Context, cmd AttachComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.deps.Orders.Update(ctx, cmd.OrderID(), func(o *order.Order) error {
		if cmd.Customer().Role != user.Customer || o.Customer() != cmd.Customer().Username {
			return errs.NewUnauthorizedError(cmd.Customer().String(), "complain about this order")
		}
		return o.AttachComplaint(cmd.Text())
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Complaint attached to order", "order_id", cmd.OrderID().String())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.OrderComplaintFiled,
		OrderID: cmd.OrderID().String(),
		Actor:   cmd.Customer().String(),
		Message: cmd.Text(),
	})
	return nil
}

// ResolveOrderComplaintCommand clears an order's active complaint.
type ResolveOrderComplaintCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewResolveOrderComplaintCommand(orderID kernel.UUID, actor user.Actor) (ResolveOrderComplaintCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ResolveOrderComplaintCommand{}, err
	}
	return ResolveOrderComplaintCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ResolveOrderComplaintCommand) Validate() error {
	return c.guard.Validate(ErrResolveOrderComplaintCommandIsNotConstructed)
}

func (c ResolveOrderComplaintCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ResolveOrderComplaintCommand) Actor() user.Actor {
	return c.actor
}

type ResolveOrderComplaintCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewResolveOrderComplaintCommandHandler(deps Deps) ResolveOrderComplaintCommandHandler {
	return ResolveOrderComplaintCommandHandler{deps: deps, logger: deps.logger("resolve_order_complaint")}
}

func (h ResolveOrderComplaintCommandHandler) Handle(ctx context.Context, cmd ResolveOrderComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireSupport(cmd.Actor(), "resolve complaints"); err != nil {
		return err
	}

	if err := h.deps.Orders.Update(ctx, cmd.OrderID(), (*order.Order).ResolveComplaint); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order complaint resolved", "order_id", cmd.OrderID().String(), "by", cmd.Actor().Username)
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.OrderComplaintClosed,
		OrderID: cmd.OrderID().String(),
		Actor:   cmd.Actor().String(),
		Message: "complaint resolved",
	})
	return nil
}
