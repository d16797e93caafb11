package commands_test

import (
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

func (s *CommandsSuite) TestAddToCart() {
	s.Run("accumulates quantity per variation", func() {
		s.Require().NoError(s.addToCart(alice, s.burger, "", 1))
		s.Require().NoError(s.addToCart(alice, s.burger, "", 2))
		s.Require().NoError(s.addToCart(alice, s.burger, "Large", 1))

		c, err := s.deps.Carts.Get(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal(3, c.Quantity(s.burger.ID(), ""))
		s.Equal(1, c.Quantity(s.burger.ID(), "Large"))
	})

	s.Run("rejects unknown variation", func() {
		err := s.addToCart(alice, s.burger, "Huge", 1)

		s.ErrorIs(err, errs.ErrValueIsInvalid)
		s.ErrorIs(err, food.ErrVariationNotFound)
	})

	s.Run("rejects non customers", func() {
		err := s.addToCart(bob, s.burger, "", 1)

		s.ErrorIs(err, errs.ErrNotACustomer)
	})

	s.Run("rejects unknown foods", func() {
		cmd, err := commands.NewAddToCartCommand(alice, kernel.NewUUID(), "", 1)
		s.Require().NoError(err)

		err = commands.NewAddToCartCommandHandler(s.deps).Handle(s.ctx, cmd)

		s.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (s *CommandsSuite) TestRemoveFromCart() {
	s.Require().NoError(s.addToCart(alice, s.coke, "", 2))
	handler := commands.NewRemoveFromCartCommandHandler(s.deps)

	cmd, err := commands.NewRemoveFromCartCommand(alice, s.coke.ID(), "", 1)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(s.ctx, cmd))

	c, _ := s.deps.Carts.Get(s.ctx, "alice")
	s.Equal(1, c.Quantity(s.coke.ID(), ""))

	s.Require().NoError(handler.Handle(s.ctx, cmd))
	c, _ = s.deps.Carts.Get(s.ctx, "alice")
	s.True(c.IsEmpty())

	s.ErrorIs(handler.Handle(s.ctx, cmd), errs.ErrObjectNotFound)
}

func (s *CommandsSuite) TestClearCart() {
	s.Require().NoError(s.addToCart(alice, s.coke, "", 2))

	cmd, err := commands.NewClearCartCommand(alice)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewClearCartCommandHandler(s.deps).Handle(s.ctx, cmd))

	c, _ := s.deps.Carts.Get(s.ctx, "alice")
	s.True(c.IsEmpty())
}

func (s *CommandsSuite) TestReorder() {
	past := s.placeOrder()
	handler := commands.NewReorderCommandHandler(s.deps)

	s.Run("copies the past items back", func() {
		cmd, err := commands.NewReorderCommand(alice, past.ID())
		s.Require().NoError(err)
		s.Require().NoError(handler.Handle(s.ctx, cmd))

		again, err := s.checkout(alice, order.CashOnDelivery)
		s.Require().NoError(err)
		s.Equal(past.Total(), again.Total())
	})

	s.Run("other customers cannot reorder it", func() {
		cmd, err := commands.NewReorderCommand(dave, past.ID())
		s.Require().NoError(err)

		s.ErrorIs(handler.Handle(s.ctx, cmd), errs.ErrUnauthorized)
	})

	s.Run("leaves the cart untouched when an item vanished", func() {
		s.Require().NoError(s.addToCart(alice, s.pizza, "", 1))
		remove, err := commands.NewRemoveFoodItemCommand(burgerking, s.coke.ID())
		s.Require().NoError(err)
		s.Require().NoError(commands.NewRemoveFoodItemCommandHandler(s.deps).Handle(s.ctx, remove))

		cmd, err := commands.NewReorderCommand(alice, past.ID())
		s.Require().NoError(err)
		err = handler.Handle(s.ctx, cmd)

		s.ErrorIs(err, errs.ErrItemUnavailable)
		c, _ := s.deps.Carts.Get(s.ctx, "alice")
		s.Require().Len(c.Lines(), 1)
		s.Equal(s.pizza.ID(), c.Lines()[0].FoodID)
	})
}
