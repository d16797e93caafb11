package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetChatQueryIsNotConstructed = errors.New(
	"GetChatQuery must be created via NewGetChatQuery constructor",
)

type GetChatQuery struct {
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewGetChatQuery(orderID kernel.UUID, actor user.Actor) (GetChatQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetChatQuery{}, err
	}
	return GetChatQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetChatQuery) Validate() error {
	return q.guard.Validate(ErrGetChatQueryIsNotConstructed)
}

// GetChatQueryHandler returns the transcript to the order's customer, its
// assigned shipper and staff. A delivered order has an empty transcript.
type GetChatQueryHandler struct {
	sources Sources
}

func NewGetChatQueryHandler(sources Sources) GetChatQueryHandler {
	return GetChatQueryHandler{sources: sources}
}

func (h GetChatQueryHandler) Handle(ctx context.Context, query GetChatQuery) ([]MessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.sources.Orders.Get(ctx, query.orderID)
	if err != nil {
		return nil, err
	}

	actor := query.actor
	member := (actor.Role == user.Customer && o.Customer() == actor.Username) ||
		(actor.Role == user.Shipper && o.Shipper() == actor.Username)
	if !member && !actor.Role.IsStaff() {
		return nil, errs.NewUnauthorizedError(actor.String(), "read this chat")
	}

	out := make([]MessageResponse, 0, len(o.Chat()))
	for _, m := range o.Chat() {
		out = append(out, MessageResponse{Sender: m.Sender, Text: m.Text, SentAt: m.SentAt})
	}
	return out, nil
}
