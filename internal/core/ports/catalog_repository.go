package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
)

// FoodRepository stores catalog entries. It is synchronized independently of
// orders so catalog listings never wait on an order lock.
type FoodRepository interface {
	Add(ctx context.Context, item *food.FoodItem) error
	Get(ctx context.Context, id kernel.UUID) (*food.FoodItem, error)
	Update(ctx context.Context, id kernel.UUID, fn func(f *food.FoodItem) error) error
	Remove(ctx context.Context, id kernel.UUID) error
	// List returns copies of all items in insertion order.
	List(ctx context.Context) ([]*food.FoodItem, error)
	Replace(ctx context.Context, items []*food.FoodItem) error
}
