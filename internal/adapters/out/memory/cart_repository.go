package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/ports"
)

var _ ports.CartRepository = &CartRepository{}

// CartRepository keeps one cart per customer, created on first use.
type CartRepository struct {
	carts *store[string, *cart.Cart]
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: newStore[string, *cart.Cart]("cart")}
}

func (r *CartRepository) Get(_ context.Context, owner string) (*cart.Cart, error) {
	c, err := r.carts.get(owner)
	if err != nil {
		return cart.NewCart(owner)
	}
	return c, nil
}

func (r *CartRepository) Update(_ context.Context, owner string, fn func(c *cart.Cart) error) error {
	return r.carts.upsert(owner, func() (*cart.Cart, error) { return cart.NewCart(owner) }, fn)
}

// Remove drops the owner's cart; a customer who never used one is not an error.
func (r *CartRepository) Remove(_ context.Context, owner string) error {
	_ = r.carts.remove(owner)
	return nil
}
