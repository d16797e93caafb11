package commands_test

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func (s *CommandsSuite) TestCheckout_BurgerAndTwoCokes() {
	placed := s.placeOrder()

	s.Equal(order.Placed, placed.Status())
	s.Equal(kernel.MustParseMoney("9.99"), placed.Total())
	s.Equal("alice street 1", placed.Address())
	s.Equal(startOfDay, placed.CreatedAt())

	stored, err := s.deps.Orders.Get(s.ctx, placed.ID())
	s.Require().NoError(err)
	s.True(stored.IsEqual(placed))

	c, _ := s.deps.Carts.Get(s.ctx, "alice")
	s.True(c.IsEmpty())

	events := s.publishedOf(ports.OrderPlaced)
	s.Require().Len(events, 1)
	s.Equal(placed.ID().String(), events[0].OrderID)
	s.Equal("9.99", events[0].Total)
	s.payments.AssertNotCalled(s.T(), "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CommandsSuite) TestCheckout_SnapshotsVariationPrice() {
	s.Require().NoError(s.addToCart(alice, s.burger, "Large", 2))

	placed, err := s.checkout(alice, order.CashOnDelivery)

	s.Require().NoError(err)
	s.Equal(kernel.MustParseMoney("16.98"), placed.Total())
	s.Equal("2x Classic Burger (Large)", placed.Items()[0].Label())
}

func (s *CommandsSuite) TestCheckout_Failures() {
	s.Run("empty cart", func() {
		_, err := s.checkout(alice, order.CashOnDelivery)

		s.ErrorIs(err, errs.ErrEmptyCart)
	})

	s.Run("not a customer", func() {
		_, err := s.checkout(burgerking, order.CashOnDelivery)

		s.ErrorIs(err, errs.ErrNotACustomer)
	})

	s.Run("unavailable item leaves the cart untouched", func() {
		s.Require().NoError(s.addToCart(alice, s.coke, "", 2))
		stock, err := commands.NewSetFoodStockCommand(burgerking, s.coke.ID(), false)
		s.Require().NoError(err)
		s.Require().NoError(commands.NewSetFoodStockCommandHandler(s.deps).Handle(s.ctx, stock))

		_, err = s.checkout(alice, order.CashOnDelivery)

		s.ErrorIs(err, errs.ErrItemUnavailable)
		c, _ := s.deps.Carts.Get(s.ctx, "alice")
		s.Equal(2, c.Quantity(s.coke.ID(), ""))
		orders, _ := s.deps.Orders.List(s.ctx)
		s.Empty(orders)
	})

	s.Run("removed item", func() {
		remove, err := commands.NewRemoveFoodItemCommand(burgerking, s.coke.ID())
		s.Require().NoError(err)
		s.Require().NoError(commands.NewRemoveFoodItemCommandHandler(s.deps).Handle(s.ctx, remove))

		_, err = s.checkout(alice, order.CashOnDelivery)

		s.ErrorIs(err, errs.ErrItemUnavailable)
		s.ErrorContains(err, "no longer on the menu")
	})
}

func (s *CommandsSuite) TestCheckout_OnlinePayment() {
	s.Run("records the gateway reference", func() {
		s.payments.On("Charge", mock.Anything, mock.Anything, "alice", kernel.MustParseMoney("9.99")).
			Return("SIM-000001", nil).Once()
		s.Require().NoError(s.addToCart(alice, s.burger, "", 1))
		s.Require().NoError(s.addToCart(alice, s.coke, "", 2))

		placed, err := s.checkout(alice, order.Online)

		s.Require().NoError(err)
		s.Equal("SIM-000001", placed.PaymentReference())
		s.payments.AssertExpectations(s.T())
	})

	s.Run("declined payment keeps the cart", func() {
		s.payments.On("Charge", mock.Anything, mock.Anything, "dave", mock.Anything).
			Return("", fmt.Errorf("%w: over limit", errs.ErrPaymentDeclined)).Once()
		s.Require().NoError(s.addToCart(dave, s.pizza, "", 1))

		_, err := s.checkout(dave, order.Online)

		s.ErrorIs(err, errs.ErrPaymentDeclined)
		c, _ := s.deps.Carts.Get(s.ctx, "dave")
		s.Equal(1, c.Quantity(s.pizza.ID(), ""))
	})
}

func (s *CommandsSuite) TestCheckout_RefundsWhenOrderIsNotStored() {
	storeDown := errors.New("order store unavailable")
	s.deps.Orders = failingOrders{OrderRepository: s.deps.Orders, err: storeDown}
	s.Require().NoError(s.addToCart(alice, s.burger, "", 1))

	s.Run("refunds the charge and keeps the cart", func() {
		s.payments.On("Charge", mock.Anything, mock.Anything, "alice", kernel.MustParseMoney("6.99")).
			Return("SIM-000002", nil).Once()
		s.payments.On("Refund", mock.Anything, "SIM-000002").Return(nil).Once()

		_, err := s.checkout(alice, order.Online)

		s.ErrorIs(err, storeDown)
		s.payments.AssertExpectations(s.T())
		c, _ := s.deps.Carts.Get(s.ctx, "alice")
		s.Equal(1, c.Quantity(s.burger.ID(), ""))
		s.Empty(s.publishedOf(ports.OrderPlaced))
	})

	s.Run("a failed refund still reports the store error", func() {
		s.payments.On("Charge", mock.Anything, mock.Anything, "alice", mock.Anything).
			Return("SIM-000003", nil).Once()
		s.payments.On("Refund", mock.Anything, "SIM-000003").Return(errors.New("gateway timeout")).Once()

		_, err := s.checkout(alice, order.Online)

		s.ErrorIs(err, storeDown)
		s.payments.AssertExpectations(s.T())
	})

	s.Run("cash orders have nothing to refund", func() {
		_, err := s.checkout(alice, order.CashOnDelivery)

		s.ErrorIs(err, storeDown)
		s.payments.AssertNotCalled(s.T(), "Refund", mock.Anything, "")
	})
}
