package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Preparing ──> ReadyForPickup ──> AcceptedByShipper ──> Delivering ──> Delivered
//	Placed ──> ReadyForPickup            (restaurant skips preparing)
//	Placed ──> AcceptedByShipper         (shipper claims early)
//	Placed ──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status right after checkout.
	Placed

	// Preparing means the restaurant has started cooking.
	Preparing

	// ReadyForPickup means the food is waiting for a shipper.
	ReadyForPickup

	// AcceptedByShipper means exactly one shipper has claimed the order.
	AcceptedByShipper

	// Delivering means the assigned shipper is on the way.
	Delivering

	// Delivered is terminal; ratings and complaints may still attach.
	Delivered

	// Cancelled is terminal and only reachable from Placed.
	Cancelled
)

// successors is the complete set of legal status moves. Anything absent is
// rejected with an InvalidTransitionError.
//
//nolint:exhaustive // terminal and unknown statuses have no successors
var successors = map[Status][]Status{
	Placed:            {Preparing, ReadyForPickup, AcceptedByShipper, Cancelled},
	Preparing:         {ReadyForPickup},
	ReadyForPickup:    {AcceptedByShipper},
	AcceptedByShipper: {Delivering},
	Delivering:        {Delivered},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Placed:            "PLACED",
		Preparing:         "PREPARING",
		ReadyForPickup:    "READY_FOR_PICKUP",
		AcceptedByShipper: "ACCEPTED_BY_SHIPPER",
		Delivering:        "DELIVERING",
		Delivered:         "DELIVERED",
		Cancelled:         "CANCELLED",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Placed, Preparing, ReadyForPickup, AcceptedByShipper, Delivering, Delivered, Cancelled}
}

// ParseStatus maps a persisted or user supplied name back to a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if st.String() == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the declared statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper snake case name of the status, "UNKNOWN" for
// values outside the enum.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Successors returns the statuses reachable from s in one step.
func (s Status) Successors() []Status {
	return append([]Status(nil), successors[s]...)
}

// CanTransitionTo reports whether target is a legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range successors[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the move s -> target is legal.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, *errs.InvalidTransitionError) otherwise
//
// Example:
//
//	next, err := order.Placed.TransitionTo(order.Preparing) // PREPARING, nil
//	_, err = order.Delivered.TransitionTo(order.Cancelled)  // InvalidTransition
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// AllowsChat reports whether the customer and shipper may exchange messages.
func (s Status) AllowsChat() bool {
	return s == AcceptedByShipper || s == Delivering
}

// ValidateCanHaveShipper checks that the shipper assignment is consistent with
// the status. Claimed statuses require a shipper, earlier ones must have none.
func (s Status) ValidateCanHaveShipper(hasShipper bool) error {
	claimed := s == AcceptedByShipper || s == Delivering || s == Delivered

	if hasShipper && !claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a shipper", s),
		)
	}
	if !hasShipper && claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no shipper", s),
		)
	}
	return nil
}
