package services

import (
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// EnsureAvailable checks that f can be put into a cart or checked out with the
// given variation: the item is in stock, its restaurant exists and is open,
// and the variation is offered.
func EnsureAvailable(f *food.FoodItem, restaurant *user.User, variation string) error {
	if !f.InStock() {
		return errs.NewItemUnavailableError(f.Name(), "out of stock")
	}
	if restaurant == nil || restaurant.Role() != user.Restaurant || !restaurant.IsOpen() {
		return errs.NewItemUnavailableError(f.Name(), "restaurant is closed")
	}
	if _, err := f.VariationDelta(variation); err != nil {
		return err
	}
	return nil
}
