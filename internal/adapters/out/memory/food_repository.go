package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

var _ ports.FoodRepository = &FoodRepository{}

// FoodRepository is the in-memory catalog. It has its own locks, independent
// of the order store.
type FoodRepository struct {
	foods *store[kernel.UUID, *food.FoodItem]
}

func NewFoodRepository() *FoodRepository {
	return &FoodRepository{foods: newStore[kernel.UUID, *food.FoodItem]("food")}
}

func (r *FoodRepository) Add(_ context.Context, item *food.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return r.foods.add(item.ID(), item)
}

func (r *FoodRepository) Get(_ context.Context, id kernel.UUID) (*food.FoodItem, error) {
	return r.foods.get(id)
}

func (r *FoodRepository) Update(_ context.Context, id kernel.UUID, fn func(f *food.FoodItem) error) error {
	return r.foods.update(id, fn)
}

func (r *FoodRepository) Remove(_ context.Context, id kernel.UUID) error {
	return r.foods.remove(id)
}

func (r *FoodRepository) List(_ context.Context) ([]*food.FoodItem, error) {
	return r.foods.list(), nil
}

func (r *FoodRepository) Replace(_ context.Context, items []*food.FoodItem) error {
	return r.foods.replace((*food.FoodItem).ID, items)
}
