package services

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// DefaultCancellationWindow is how long after checkout an order may still be cancelled.
const DefaultCancellationWindow = 60 * time.Second

// scope narrows a role grant to the actors related to the order.
type scope func(o *order.Order, actor user.Actor) bool

func anyone(*order.Order, user.Actor) bool { return true }

func ownsItems(o *order.Order, a user.Actor) bool { return o.HasRestaurant(a.Username) }

func placedIt(o *order.Order, a user.Actor) bool { return o.Customer() == a.Username }

func assignedShipper(o *order.Order, a user.Actor) bool { return o.Shipper() == a.Username }

type grant struct {
	role  user.Role
	scope scope
}

// authorizations is the role × target status table. A transition is allowed
// when any grant for the target matches the actor's role and scope.
//
//nolint:exhaustive // Placed and Unknown are never targets
var authorizations = map[order.Status][]grant{
	order.Preparing: {
		{role: user.Restaurant, scope: ownsItems},
		{role: user.Owner, scope: anyone},
	},
	order.ReadyForPickup: {
		{role: user.Restaurant, scope: ownsItems},
		{role: user.Owner, scope: anyone},
	},
	order.AcceptedByShipper: {
		{role: user.Shipper, scope: anyone},
	},
	order.Delivering: {
		{role: user.Shipper, scope: assignedShipper},
	},
	order.Delivered: {
		{role: user.Shipper, scope: assignedShipper},
	},
	order.Cancelled: {
		{role: user.Customer, scope: placedIt},
		{role: user.Restaurant, scope: ownsItems},
	},
}

// TransitionPolicy is the single place deciding whether an actor may move an
// order to a target status, and the entry point that applies the move.
//
// Check order:
//  1. a claim on an already claimed order fails with AlreadyClaimed naming the winner
//  2. the status move must be legal (InvalidTransition)
//  3. the actor must hold a matching grant (Unauthorized)
//  4. state rules of the target apply, e.g. the cancellation window
//
// Apply must run inside the order's critical section so that concurrent claims
// observe each other.
type TransitionPolicy struct {
	cancellationWindow time.Duration
}

// NewTransitionPolicy creates a policy with the given cancellation window; a
// non-positive window falls back to DefaultCancellationWindow.
func NewTransitionPolicy(cancellationWindow time.Duration) TransitionPolicy {
	if cancellationWindow <= 0 {
		cancellationWindow = DefaultCancellationWindow
	}
	return TransitionPolicy{cancellationWindow: cancellationWindow}
}

func (p TransitionPolicy) CancellationWindow() time.Duration {
	return p.cancellationWindow
}

// IsGranted reports whether role could ever move an order to target,
// regardless of the relationship to a particular order.
func (p TransitionPolicy) IsGranted(role user.Role, target order.Status) bool {
	for _, g := range authorizations[target] {
		if g.role == role {
			return true
		}
	}
	return false
}

// Authorize checks the actor against the authorization table for target.
func (p TransitionPolicy) Authorize(o *order.Order, actor user.Actor, target order.Status) error {
	for _, g := range authorizations[target] {
		if g.role == actor.Role && g.scope(o, actor) {
			return nil
		}
	}
	return errs.NewUnauthorizedError(actor.String(), fmt.Sprintf("move order to %s", target))
}

// Apply validates and performs the transition of o to target on behalf of actor.
func (p TransitionPolicy) Apply(o *order.Order, actor user.Actor, target order.Status, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if target == order.AcceptedByShipper && o.HasShipper() {
		return errs.NewAlreadyClaimedError(o.ID().String(), o.Shipper())
	}
	if !o.Status().CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(o.Status(), target)
	}
	if err := p.Authorize(o, actor, target); err != nil {
		return err
	}

	switch target {
	case order.Preparing:
		return o.Prepare()
	case order.ReadyForPickup:
		return o.MarkReady()
	case order.AcceptedByShipper:
		return o.Claim(actor.Username)
	case order.Delivering:
		return o.StartDelivery()
	case order.Delivered:
		return o.Deliver()
	case order.Cancelled:
		return o.Cancel(now, p.cancellationWindow)
	default:
		return errs.NewInternalError(fmt.Errorf("no transition handler for %s", target))
	}
}

// AuthorizeChat allows the order's customer and its assigned shipper to post.
func (p TransitionPolicy) AuthorizeChat(o *order.Order, actor user.Actor) error {
	switch {
	case actor.Role == user.Customer && placedIt(o, actor):
		return nil
	case actor.Role == user.Shipper && o.HasShipper() && assignedShipper(o, actor):
		return nil
	default:
		return errs.NewUnauthorizedError(actor.String(), "chat on this order")
	}
}
