package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrPostMessageCommandIsNotConstructed = errors.New(
	"PostMessageCommand must be created via NewPostMessageCommand constructor",
)

// PostMessageCommand appends a line to the customer/shipper chat of an order.
type PostMessageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Actor
	text    string

	guard guard.ConstructorGuard
}

func NewPostMessageCommand(orderID kernel.UUID, actor user.Actor, text string) (PostMessageCommand, error) {
	var textErr error
	if text == "" {
		textErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(orderID.Validate(), actor.Validate(), textErr); err != nil {
		return PostMessageCommand{}, err
	}
	return PostMessageCommand{orderID: orderID, actor: actor, text: text, guard: guard.NewConstructorGuard()}, nil
}

func (c PostMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostMessageCommandIsNotConstructed)
}

func (c PostMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PostMessageCommand) Actor() user.Actor {
	return c.actor
}

func (c PostMessageCommand) Text() string {
	return c.text
}
