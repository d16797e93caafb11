package services

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// Catalog is the read view of foods and restaurants checkout prices against.
type Catalog struct {
	Foods       map[kernel.UUID]*food.FoodItem
	Restaurants map[string]*user.User
}

// CheckoutService turns a cart into a Placed order. It captures the unit price,
// variation delta, name and restaurant of every line and the customer's
// contact details at this instant.
//
// CheckoutService does not touch the cart; clearing it is part of the caller's
// atomic step once the order is stored.
//
// Example:
//
//	o, err := services.NewCheckoutService().Checkout(kernel.NewUUID(), customer, c, catalog,
//	    "ring twice", order.CashOnDelivery, time.Now())
//	if errors.Is(err, errs.ErrEmptyCart) {
//	    // nothing to order
//	}
type CheckoutService struct{}

func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout builds the order.
//
// Returns:
//   - errs.ErrNotACustomer unless customer has the Customer role
//   - errs.ErrEmptyCart when the cart has no lines
//   - *errs.ItemUnavailableError when a food vanished, is out of stock or its restaurant closed
func (CheckoutService) Checkout(
	id kernel.UUID,
	customer *user.User,
	c *cart.Cart,
	catalog Catalog,
	note string,
	payment order.PaymentMethod,
	now time.Time,
) (*order.Order, error) {
	if customer == nil || customer.Role() != user.Customer {
		return nil, errs.ErrNotACustomer
	}
	if c.Owner() != customer.Username() {
		return nil, errs.NewInternalError(
			fmt.Errorf("cart of %s used for checkout by %s", c.Owner(), customer.Username()))
	}
	if c.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}

	items := make([]order.Item, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		f, ok := catalog.Foods[line.FoodID]
		if !ok {
			return nil, errs.NewItemUnavailableError(line.FoodID.String(), "no longer on the menu")
		}
		if err := EnsureAvailable(f, catalog.Restaurants[f.Restaurant()], line.Variation); err != nil {
			return nil, err
		}

		delta, err := f.VariationDelta(line.Variation)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(f.ID(), f.Name(), f.Restaurant(), f.Price(), line.Variation, delta, line.Quantity)
		if err != nil {
			return nil, errs.NewInternalError(err)
		}
		items = append(items, item)
	}

	return order.NewOrder(id, customer.Username(), items, customer.Address(), customer.Phone(), note, payment, now)
}
