// Package order provides the Order aggregate of the fulfillment engine: the
// frozen items a customer checked out, the status state machine shared by
// restaurants, shippers and customers, the claim that binds exactly one
// shipper, the time-boxed cancellation, the customer/shipper chat, the order
// scoped complaint and the post-delivery feedback batch.
//
// The package includes:
//   - Order: the aggregate root and its State snapshot for persistence
//   - Item: a priced line snapshot taken at checkout
//   - Status: the lifecycle enum and its transition table
//   - PaymentMethod, Message, Feedback: supporting value objects
//
// Key business rules:
//   - Total always equals the sum of (unit price + variation delta) × quantity
//   - Cancelled is only reachable from Placed, inside the cancellation window
//   - The first claim wins; every later claim learns who won
//   - Delivering -> Delivered discards the chat transcript for good
//
// Who may trigger which transition is decided by services.TransitionPolicy;
// this package enforces legality and the state-dependent rules only.
package order
