package queries

import (
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// canView reports whether actor may see o in listings and detail views:
// customers see their orders, restaurants the orders with their food, shippers
// their assignments and anything still up for grabs, staff everything.
func canView(o *order.Order, actor user.Actor) bool {
	switch {
	case actor.Role.IsStaff():
		return true
	case actor.Role == user.Customer:
		return o.Customer() == actor.Username
	case actor.Role == user.Restaurant:
		return o.HasRestaurant(actor.Username)
	case actor.Role == user.Shipper:
		return o.Shipper() == actor.Username || isClaimable(o)
	default:
		return false
	}
}

func isClaimable(o *order.Order) bool {
	return !o.HasShipper() && o.Status().CanTransitionTo(order.AcceptedByShipper)
}
