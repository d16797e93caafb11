package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	customer *user.User
	cart     *cart.Cart
	catalog  services.Catalog
	burger   *food.FoodItem
	coke     *food.FoodItem
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()
	customer, err := user.NewUser("customer1", user.Customer, "12 Elm St", "555-0101", "")
	require.NoError(t, err)
	restaurant, err := user.NewUser("burgerking", user.Restaurant, "", "", "Burger King")
	require.NoError(t, err)
	burger, err := food.NewFoodItem(kernel.NewUUID(), "Classic Burger", "", kernel.MustParseMoney("6.99"), "Burgers", "burgerking")
	require.NoError(t, err)
	coke, err := food.NewFoodItem(kernel.NewUUID(), "Coke", "", kernel.MustParseMoney("1.50"), "Drinks", "burgerking")
	require.NoError(t, err)

	c, err := cart.NewCart("customer1")
	require.NoError(t, err)
	require.NoError(t, c.Add(burger.ID(), "", 1))
	require.NoError(t, c.Add(coke.ID(), "", 2))

	return checkoutFixture{
		customer: customer,
		cart:     c,
		burger:   burger,
		coke:     coke,
		catalog: services.Catalog{
			Foods:       map[kernel.UUID]*food.FoodItem{burger.ID(): burger, coke.ID(): coke},
			Restaurants: map[string]*user.User{"burgerking": restaurant},
		},
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	svc := services.NewCheckoutService()

	t.Run("should place burger and two cokes for 9.99", func(t *testing.T) {
		f := newCheckoutFixture(t)

		o, err := svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "9.99", o.Total().String())
		assert.Equal(t, "12 Elm St", o.Address())
		assert.Equal(t, "555-0101", o.Phone())
		assert.False(t, f.cart.IsEmpty(), "clearing the cart belongs to the caller")
	})

	t.Run("should keep total after later price and profile changes", func(t *testing.T) {
		f := newCheckoutFixture(t)
		o, err := svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.Online, checkoutTime)
		require.NoError(t, err)

		require.NoError(t, f.burger.ChangePrice(kernel.MustParseMoney("12.00")))
		f.customer.UpdateProfile("99 Oak Ave", "555-9999")

		assert.Equal(t, "9.99", o.Total().String())
		assert.Equal(t, "12 Elm St", o.Address())
		assert.Equal(t, kernel.MustParseMoney("6.99"), o.Items()[0].UnitPrice())
	})

	t.Run("should snapshot variation delta", func(t *testing.T) {
		f := newCheckoutFixture(t)
		require.NoError(t, f.burger.AddVariation("Large", kernel.MustParseMoney("2.00")))
		require.NoError(t, f.cart.Add(f.burger.ID(), "Large", 1))

		o, err := svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)

		require.NoError(t, err)
		assert.Equal(t, "18.98", o.Total().String())
		assert.Equal(t, kernel.MustParseMoney("2.00"), o.Items()[2].VariationDelta())
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.cart.Clear()

		_, err := svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)

		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("should reject non customer", func(t *testing.T) {
		f := newCheckoutFixture(t)
		shipper, _ := user.NewUser("customer1", user.Shipper, "", "", "")

		_, err := svc.Checkout(kernel.NewUUID(), shipper, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)

		assert.ErrorIs(t, err, errs.ErrNotACustomer)
	})

	t.Run("should reject item that became unavailable", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.coke.SetInStock(false)

		_, err := svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)

		require.ErrorIs(t, err, errs.ErrItemUnavailable)
		assert.ErrorContains(t, err, "out of stock")
	})

	t.Run("should reject closed restaurant and removed food", func(t *testing.T) {
		f := newCheckoutFixture(t)
		require.NoError(t, f.catalog.Restaurants["burgerking"].SetOpen(false))

		_, err := svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)
		assert.ErrorIs(t, err, errs.ErrItemUnavailable)

		f = newCheckoutFixture(t)
		delete(f.catalog.Foods, f.coke.ID())

		_, err = svc.Checkout(kernel.NewUUID(), f.customer, f.cart, f.catalog, "", order.CashOnDelivery, checkoutTime)
		assert.ErrorIs(t, err, errs.ErrItemUnavailable)
	})
}
