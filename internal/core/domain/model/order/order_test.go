package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burgerID = kernel.NewUUID()
	cokeID   = kernel.NewUUID()
	created  = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newItems(t *testing.T) []order.Item {
	t.Helper()
	burger, err := order.NewItem(burgerID, "Classic Burger", "burgerking", kernel.MustParseMoney("6.99"), "", 0, 1)
	require.NoError(t, err)
	coke, err := order.NewItem(cokeID, "Coke", "burgerking", kernel.MustParseMoney("1.50"), "", 0, 2)
	require.NoError(t, err)
	return []order.Item{burger, coke}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "customer1", newItems(t), "12 Elm St", "555-0101", "no onions",
		order.CashOnDelivery, created)
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	require.NoError(t, o.MarkReady())
	require.NoError(t, o.Claim("shipper1"))
	require.NoError(t, o.StartDelivery())
	require.NoError(t, o.Deliver())
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create placed order with snapshot total", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "customer1", o.Customer())
		assert.Equal(t, "9.99", o.Total().String())
		assert.Equal(t, "12 Elm St", o.Address())
		assert.Equal(t, "555-0101", o.Phone())
		assert.Equal(t, "no onions", o.Note())
		assert.Equal(t, order.CashOnDelivery, o.PaymentMethod())
		assert.False(t, o.HasShipper())
		assert.Equal(t, []string{"burgerking"}, o.Restaurants())
		assert.True(t, o.HasRestaurant("burgerking"))
		assert.False(t, o.HasRestaurant("pizzahub"))
	})

	t.Run("should include variation delta in total", func(t *testing.T) {
		large, err := order.NewItem(burgerID, "Classic Burger", "burgerking",
			kernel.MustParseMoney("6.99"), "Large", kernel.MustParseMoney("3.00"), 2)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), "customer1", []order.Item{large}, "", "", "", order.Online, created)

		require.NoError(t, err)
		assert.Equal(t, "19.98", o.Total().String())
		assert.Equal(t, "2x Classic Burger (Large)", large.Label())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "", nil, "", "", "", order.UnknownPayment, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrCustomerIsRequired)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
		assert.ErrorContains(t, err, "payment method is invalid")
		assert.ErrorContains(t, err, "created at")
	})

	t.Run("should reject zero value items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "customer1", []order.Item{{}}, "", "", "", order.CashOnDelivery, created)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestNewItem(t *testing.T) {
	_, err := order.NewItem(kernel.UUID{}, "", "", kernel.Cents(100), "Small", kernel.Cents(-200), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = order.NewItem(kernel.NewUUID(), "Burger", "Burgers", kernel.MaxMoney, "", 0, kernel.MaxQuantity+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	item, err := order.NewItem(kernel.NewUUID(), "Burger", "Burgers", kernel.MaxMoney, "", 0, kernel.MaxQuantity)
	require.NoError(t, err)
	assert.Equal(t, int64(kernel.MaxMoney)*kernel.MaxQuantity, item.LineTotal().Cents())
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Prepare())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.Claim("shipper1"))
		assert.Equal(t, order.AcceptedByShipper, o.Status())
		assert.Equal(t, "shipper1", o.Shipper())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.Deliver())

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should allow ready straight from placed", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.MarkReady())

		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("should reject illegal moves", func(t *testing.T) {
		o := newOrder(t)

		assert.ErrorIs(t, o.StartDelivery(), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should refuse transitions after delivery", func(t *testing.T) {
		o := deliveredOrder(t)

		assert.ErrorIs(t, o.Prepare(), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.Cancel(created, time.Minute), errs.ErrInvalidTransition)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("should report winner to later claimers", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Claim("shipperA"))

		err := o.Claim("shipperB")

		require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
		var claimed *errs.AlreadyClaimedError
		require.ErrorAs(t, err, &claimed)
		assert.Equal(t, "shipperA", claimed.Shipper)
		assert.Equal(t, "shipperA", o.Shipper())
	})

	t.Run("should report winner even after delivery", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.Claim("shipper2")

		assert.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	})

	t.Run("should reject claim while preparing", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Prepare())

		err := o.Claim("shipper1")

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.False(t, o.HasShipper())
	})

	t.Run("should require shipper", func(t *testing.T) {
		assert.ErrorIs(t, newOrder(t).Claim(""), errs.ErrValueIsRequired)
	})
}

func TestOrder_Cancel(t *testing.T) {
	window := 60 * time.Second

	t.Run("should cancel just inside the window", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel(created.Add(window-time.Millisecond), window))

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should refuse at exactly the window", func(t *testing.T) {
		o := newOrder(t)

		err := o.Cancel(created.Add(window), window)

		require.ErrorIs(t, err, errs.ErrCancellationWindowClosed)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should refuse once status advanced", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Prepare())

		err := o.Cancel(created, window)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should let the first cancel win", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(created, window))

		assert.ErrorIs(t, o.Cancel(created, window), errs.ErrInvalidTransition)
	})
}

func TestOrder_Chat(t *testing.T) {
	t.Run("should refuse chat before claim", func(t *testing.T) {
		o := newOrder(t)

		assert.ErrorIs(t, o.PostMessage("customer1", "hi", created), errs.ErrChatNotAvailable)
	})

	t.Run("should keep transcript while delivering", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Claim("shipper1"))
		require.NoError(t, o.PostMessage("customer1", "where are you?", created))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.PostMessage("shipper1", "2 minutes", created.Add(time.Minute)))

		chat := o.Chat()

		require.Len(t, chat, 2)
		assert.Equal(t, order.Message{Sender: "shipper1", Text: "2 minutes", SentAt: created.Add(time.Minute)}, chat[1])
		assert.ErrorIs(t, o.PostMessage("customer1", "", created), errs.ErrValueIsRequired)
	})

	t.Run("should clear transcript on delivery", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Claim("shipper1"))
		require.NoError(t, o.PostMessage("customer1", "hello", created))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.Deliver())

		assert.Empty(t, o.Chat())
		assert.ErrorIs(t, o.PostMessage("customer1", "thanks", created), errs.ErrChatNotAvailable)
	})
}

func TestOrder_Complaint(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.AttachComplaint("cold fries"))
	require.NoError(t, o.AttachComplaint("missing coke"))
	assert.Equal(t, "missing coke", o.Complaint())
	assert.Equal(t, order.Placed, o.Status())

	require.NoError(t, o.ResolveComplaint())
	assert.False(t, o.HasComplaint())
	assert.ErrorIs(t, o.ResolveComplaint(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, o.AttachComplaint(""), errs.ErrValueIsRequired)
}

func TestOrder_ApplyFeedback(t *testing.T) {
	five := 5

	t.Run("should store batch once", func(t *testing.T) {
		o := deliveredOrder(t)
		fb := order.Feedback{
			Foods:          map[kernel.UUID]order.FoodFeedback{burgerID: {Rating: 4, Comment: "juicy"}},
			ShipperRating:  &five,
			ShipperComment: "fast",
		}

		require.NoError(t, o.ApplyFeedback("customer1", fb))

		assert.True(t, o.IsRated())
		assert.Equal(t, order.FoodFeedback{Rating: 4, Comment: "juicy"}, o.FoodFeedback()[burgerID])
		rating, ok := o.ShipperRating()
		assert.True(t, ok)
		assert.Equal(t, 5, rating)
		assert.Equal(t, "fast", o.ShipperComment())

		err := o.ApplyFeedback("customer1", fb)
		assert.ErrorContains(t, err, "order already rated")
	})

	t.Run("should require delivered order", func(t *testing.T) {
		o := newOrder(t)

		err := o.ApplyFeedback("customer1", order.Feedback{ShipperRating: &five})

		assert.ErrorIs(t, err, errs.ErrOrderNotDeliverable)
	})

	t.Run("should require the ordering customer", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.ApplyFeedback("customer2", order.Feedback{ShipperRating: &five})

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject whole batch on one bad rating", func(t *testing.T) {
		o := deliveredOrder(t)
		six := 6

		err := o.ApplyFeedback("customer1", order.Feedback{
			Foods:         map[kernel.UUID]order.FoodFeedback{burgerID: {Rating: 3}, cokeID: {Rating: 9}},
			ShipperRating: &six,
		})

		require.ErrorIs(t, err, errs.ErrInvalidRating)
		assert.False(t, o.IsRated())
		assert.Empty(t, o.FoodFeedback())
	})

	t.Run("should reject foods outside the order", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.ApplyFeedback("customer1", order.Feedback{
			Foods: map[kernel.UUID]order.FoodFeedback{kernel.NewUUID(): {Rating: 3}},
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty batch", func(t *testing.T) {
		assert.ErrorIs(t, deliveredOrder(t).ApplyFeedback("customer1", order.Feedback{}), errs.ErrValueIsRequired)
	})
}

func TestOrder_RecordPayment(t *testing.T) {
	online, err := order.NewOrder(kernel.NewUUID(), "customer1", newItems(t), "", "", "", order.Online, created)
	require.NoError(t, err)

	require.NoError(t, online.RecordPayment("txn-1"))
	assert.Equal(t, "txn-1", online.PaymentReference())
	assert.ErrorIs(t, newOrder(t).RecordPayment("txn-2"), errs.ErrValueIsInvalid)
}

func TestOrder_CloneIsIndependent(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.Claim("shipper1"))
	require.NoError(t, o.PostMessage("customer1", "hi", created))

	c := o.Clone()
	require.NoError(t, c.PostMessage("shipper1", "hello", created))
	require.NoError(t, c.StartDelivery())

	assert.Len(t, o.Chat(), 1)
	assert.Equal(t, order.AcceptedByShipper, o.Status())
	assert.True(t, o.IsEqual(c))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip state", func(t *testing.T) {
		o := deliveredOrder(t)
		four := 4
		require.NoError(t, o.AttachComplaint("late"))
		require.NoError(t, o.ApplyFeedback("customer1", order.Feedback{ShipperRating: &four}))

		restored, err := order.RestoreOrder(o.State())

		require.NoError(t, err)
		assert.Equal(t, o.State(), restored.State())
		assert.Equal(t, "9.99", restored.Total().String())
	})

	t.Run("should reject inconsistent shipper", func(t *testing.T) {
		s := newOrder(t).State()
		s.Shipper = "shipper1"

		_, err := order.RestoreOrder(s)

		assert.ErrorContains(t, err, "to have a shipper")
	})

	t.Run("should reject chat outside delivery", func(t *testing.T) {
		s := newOrder(t).State()
		s.Chat = []order.Message{{Sender: "customer1", Text: "hi", SentAt: created}}

		_, err := order.RestoreOrder(s)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
