package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
//
// Concurrency contract:
//   - Update runs fn inside the critical section of that single order; two
//     Updates on different orders never block each other
//   - Get and List return clones, so readers never race with writers
type OrderRepository interface {
	// Add stores a new order. The order must be valid and its id unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns a copy of the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update loads the order, applies fn under the order's lock and keeps
	// the result only when fn returns nil.
	//
	// Example:
	//   err := repo.Update(ctx, id, func(o *order.Order) error {
	//       return o.Claim("shipper1")
	//   })
	Update(ctx context.Context, id kernel.UUID, fn func(o *order.Order) error) error

	// List returns copies of all orders, oldest first.
	List(ctx context.Context) ([]*order.Order, error)

	// Replace swaps the whole collection, used when restoring a snapshot.
	Replace(ctx context.Context, orders []*order.Order) error
}
