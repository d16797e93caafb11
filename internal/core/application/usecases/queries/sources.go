// Package queries contains read-only operations over the fulfillment state.
// Query handlers never mutate aggregates; every aggregate they see is a clone
// taken under that aggregate's own lock, so reads never wait for a checkout
// or a claim in progress on another order.
package queries

import (
	"fooddelivery/internal/core/ports"
)

// Sources bundles the read sides query handlers need.
type Sources struct {
	Foods      ports.FoodRepository
	Users      ports.UserRepository
	Carts      ports.CartRepository
	Orders     ports.OrderRepository
	Complaints ports.ComplaintRepository
	Activity   ports.ActivityLog
}
