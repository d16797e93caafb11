package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
)

// CartRepository holds one cart per customer. A customer without stored
// lines gets an empty cart.
type CartRepository interface {
	Get(ctx context.Context, owner string) (*cart.Cart, error)
	// Update applies fn under the owner's cart lock; changes are kept only
	// when fn returns nil.
	Update(ctx context.Context, owner string, fn func(c *cart.Cart) error) error
	Remove(ctx context.Context, owner string) error
}
