package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredFor(t *testing.T, foodID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(foodID, "Classic Burger", "burgerking", kernel.MustParseMoney("6.99"), "", 0, 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.State{
		ID:        kernel.NewUUID(),
		Customer:  "customer1",
		Items:     []order.Item{item},
		Status:    order.Delivered,
		Payment:   order.CashOnDelivery,
		Shipper:   "shipper1",
		CreatedAt: checkoutTime,
	})
	require.NoError(t, err)
	return o
}

func TestFeedbackAggregator(t *testing.T) {
	agg := services.NewFeedbackAggregator()

	t.Run("should compute exact mean across orders", func(t *testing.T) {
		burger, err := food.NewFoodItem(kernel.NewUUID(), "Classic Burger", "", kernel.MustParseMoney("6.99"), "Burgers", "burgerking")
		require.NoError(t, err)

		for _, rating := range []int{5, 4, 0} {
			o := deliveredFor(t, burger.ID())
			d, err := agg.Record(o, "customer1", order.Feedback{
				Foods: map[kernel.UUID]order.FoodFeedback{burger.ID(): {Rating: rating}},
			})
			require.NoError(t, err)
			require.Len(t, d.Foods, 1)
			assert.Nil(t, d.Shipper)

			require.NoError(t, agg.ApplyToFood(burger, d.Foods[0]))
		}

		assert.InDelta(t, 3.0, burger.Average(), 1e-9)
		assert.Equal(t, []int{5, 4, 0}, burger.Ratings())
	})

	t.Run("should route shipper rating to assigned shipper", func(t *testing.T) {
		shipper, err := user.NewUser("shipper1", user.Shipper, "", "", "")
		require.NoError(t, err)
		o := deliveredFor(t, kernel.NewUUID())
		four := 4

		d, err := agg.Record(o, "customer1", order.Feedback{ShipperRating: &four, ShipperComment: "polite"})
		require.NoError(t, err)
		require.NotNil(t, d.Shipper)
		assert.Equal(t, "shipper1", d.Shipper.Shipper)

		require.NoError(t, agg.ApplyToShipper(shipper, *d.Shipper))
		assert.Equal(t, []int{4}, shipper.ShipperRatings())
		assert.Equal(t, []string{"polite"}, shipper.ShipperComments())
	})

	t.Run("should refuse to apply to wrong aggregate", func(t *testing.T) {
		other, _ := user.NewUser("shipper2", user.Shipper, "", "", "")

		err := agg.ApplyToShipper(other, services.ShipperRating{Shipper: "shipper1", Rating: 3})

		assert.ErrorIs(t, err, errs.ErrInternal)
	})

	t.Run("should surface order rule violations", func(t *testing.T) {
		o := orderIn(t, order.Delivering)
		three := 3

		_, err := agg.Record(o, "customer1", order.Feedback{ShipperRating: &three})

		assert.ErrorIs(t, err, errs.ErrOrderNotDeliverable)
	})
}
