package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand asks to move an order to target on behalf of actor.
// The named constructors below cover every transition of the lifecycle.
//
// Example:
//
//	cmd, _ := NewClaimOrderCommand(orderID, bob)
//	err := handler.Handle(ctx, cmd)
//	var claimed *errs.AlreadyClaimedError
//	if errors.As(err, &claimed) {
//	    fmt.Printf("too late, %s took it\n", claimed.Shipper)
//	}
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Actor
	target  order.Status

	guard guard.ConstructorGuard
}

func NewChangeStatusCommand(orderID kernel.UUID, actor user.Actor, target order.Status) (ChangeStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), target.Validate()); err != nil {
		return ChangeStatusCommand{}, err
	}
	return ChangeStatusCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewStartPreparingCommand moves a Placed order to Preparing.
func NewStartPreparingCommand(orderID kernel.UUID, restaurant user.Actor) (ChangeStatusCommand, error) {
	return NewChangeStatusCommand(orderID, restaurant, order.Preparing)
}

// NewMarkReadyCommand moves a Placed or Preparing order to ReadyForPickup.
func NewMarkReadyCommand(orderID kernel.UUID, restaurant user.Actor) (ChangeStatusCommand, error) {
	return NewChangeStatusCommand(orderID, restaurant, order.ReadyForPickup)
}

// NewClaimOrderCommand assigns the shipper to an unassigned order.
func NewClaimOrderCommand(orderID kernel.UUID, shipper user.Actor) (ChangeStatusCommand, error) {
	return NewChangeStatusCommand(orderID, shipper, order.AcceptedByShipper)
}

func NewStartDeliveryCommand(orderID kernel.UUID, shipper user.Actor) (ChangeStatusCommand, error) {
	return NewChangeStatusCommand(orderID, shipper, order.Delivering)
}

func NewMarkDeliveredCommand(orderID kernel.UUID, shipper user.Actor) (ChangeStatusCommand, error) {
	return NewChangeStatusCommand(orderID, shipper, order.Delivered)
}

// NewCancelOrderCommand cancels a Placed order inside the cancellation window.
func NewCancelOrderCommand(orderID kernel.UUID, actor user.Actor) (ChangeStatusCommand, error) {
	return NewChangeStatusCommand(orderID, actor, order.Cancelled)
}

func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeStatusCommand) Actor() user.Actor {
	return c.actor
}

func (c ChangeStatusCommand) Target() order.Status {
	return c.target
}
