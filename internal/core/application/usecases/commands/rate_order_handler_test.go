package commands_test

import (
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

func (s *CommandsSuite) rate(o *order.Order, customer user.Actor, foods map[kernel.UUID]order.FoodFeedback, shipper *int) error {
	cmd, err := commands.NewRateOrderCommand(o.ID(), customer, foods, shipper, "")
	s.Require().NoError(err)
	return commands.NewRateOrderCommandHandler(s.deps).Handle(s.ctx, cmd)
}

func (s *CommandsSuite) TestRateOrder_ExactMeanAcrossOrders() {
	for _, score := range []int{5, 4, 4} {
		o := s.deliverOrder()
		s.Require().NoError(s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{
			s.burger.ID(): {Rating: score, Comment: "ok"},
		}, &score))
	}

	burger, err := s.deps.Foods.Get(s.ctx, s.burger.ID())
	s.Require().NoError(err)
	s.InDelta(13.0/3.0, burger.Average(), 1e-9)
	s.Equal([]int{5, 4, 4}, burger.Ratings())
	s.Len(burger.Comments(), 3)

	coke, _ := s.deps.Foods.Get(s.ctx, s.coke.ID())
	s.Zero(coke.RatingCount())

	shipper, err := s.deps.Users.Get(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal([]int{5, 4, 4}, shipper.ShipperRatings())
	s.Empty(shipper.ShipperComments())
	s.Len(s.publishedOf(ports.OrderRated), 3)
}

func (s *CommandsSuite) TestRateOrder_BatchIsAllOrNothing() {
	o := s.deliverOrder()
	bad := 6

	err := s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{
		s.burger.ID(): {Rating: 5},
		s.coke.ID():   {Rating: 3},
	}, &bad)

	s.ErrorIs(err, errs.ErrInvalidRating)
	burger, _ := s.deps.Foods.Get(s.ctx, s.burger.ID())
	s.Zero(burger.RatingCount())
	stored, _ := s.deps.Orders.Get(s.ctx, o.ID())
	s.False(stored.IsRated())
}

func (s *CommandsSuite) TestRateOrder_Refusals() {
	s.Run("not delivered", func() {
		o := s.placeOrder()
		err := s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{s.burger.ID(): {Rating: 5}}, nil)
		s.ErrorIs(err, errs.ErrOrderNotDeliverable)
	})

	o := s.deliverOrder()

	s.Run("another customer", func() {
		err := s.rate(o, dave, map[kernel.UUID]order.FoodFeedback{s.burger.ID(): {Rating: 5}}, nil)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("food outside the order", func() {
		err := s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{s.pizza.ID(): {Rating: 5}}, nil)
		s.ErrorIs(err, errs.ErrValueIsInvalid)
	})

	s.Run("twice", func() {
		s.Require().NoError(s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{s.burger.ID(): {Rating: 5}}, nil))

		err := s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{s.burger.ID(): {Rating: 1}}, nil)

		s.ErrorIs(err, errs.ErrValueIsInvalid)
		s.ErrorContains(err, "order already rated")
		burger, _ := s.deps.Foods.Get(s.ctx, s.burger.ID())
		s.Equal([]int{5}, burger.Ratings())
	})
}

func (s *CommandsSuite) TestRateOrder_RemovedFoodIsKeptOnOrder() {
	o := s.deliverOrder()
	remove, err := commands.NewRemoveFoodItemCommand(burgerking, s.coke.ID())
	s.Require().NoError(err)
	s.Require().NoError(commands.NewRemoveFoodItemCommandHandler(s.deps).Handle(s.ctx, remove))

	err = s.rate(o, alice, map[kernel.UUID]order.FoodFeedback{
		s.burger.ID(): {Rating: 4},
		s.coke.ID():   {Rating: 2, Comment: "flat"},
	}, nil)

	s.Require().NoError(err)
	stored, _ := s.deps.Orders.Get(s.ctx, o.ID())
	s.Equal(order.FoodFeedback{Rating: 2, Comment: "flat"}, stored.FoodFeedback()[s.coke.ID()])
	burger, _ := s.deps.Foods.Get(s.ctx, s.burger.ID())
	s.Equal([]int{4}, burger.Ratings())
}
