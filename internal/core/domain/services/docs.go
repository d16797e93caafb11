// Package services provides domain services that coordinate business rules
// spanning more than one aggregate of the food ordering domain.
//
// The package includes:
//   - TransitionPolicy: the authorization table for order status changes and chat
//   - CheckoutService: turns a Cart into a Placed Order with price snapshots
//   - FeedbackAggregator: spreads a delivered order's ratings to foods and the shipper
//   - EnsureAvailable: the stock / open restaurant / variation check shared by cart and checkout
package services
