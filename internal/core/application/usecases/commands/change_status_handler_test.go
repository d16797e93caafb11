package commands_test

import (
	"errors"
	"sync"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

func (s *CommandsSuite) TestChangeStatus_FullLifecycle() {
	o := s.deliverOrder()

	stored, err := s.deps.Orders.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Delivered, stored.Status())
	s.Equal("bob", stored.Shipper())

	s.Len(s.publishedOf(ports.OrderStatusChanged), 4)
	claims := s.publishedOf(ports.OrderClaimed)
	s.Require().Len(claims, 1)
	s.Equal("ACCEPTED_BY_SHIPPER", claims[0].Status)
	s.Contains(claims[0].Message, "bob")
}

func (s *CommandsSuite) TestChangeStatus_TwoShippersRace() {
	o := s.placeOrder()
	handler := commands.NewChangeStatusCommandHandler(s.deps)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  []*errs.AlreadyClaimedError
	)
	for _, shipper := range []user.Actor{bob, carol} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewClaimOrderCommand(o.ID(), shipper)
			if err != nil {
				return
			}
			_, err = handler.Handle(s.ctx, cmd)

			mu.Lock()
			defer mu.Unlock()
			var claimed *errs.AlreadyClaimedError
			switch {
			case err == nil:
				winners = append(winners, shipper.Username)
			case errors.As(err, &claimed):
				losers = append(losers, claimed)
			}
		}()
	}
	wg.Wait()

	s.Require().Len(winners, 1)
	s.Require().Len(losers, 1)
	s.Equal(winners[0], losers[0].Shipper)

	stored, err := s.deps.Orders.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(winners[0], stored.Shipper())
	s.Len(s.publishedOf(ports.OrderClaimed), 1)
}

func (s *CommandsSuite) TestChangeStatus_CancellationWindow() {
	s.Run("just inside the window", func() {
		o := s.placeOrder()
		s.now = startOfDay.Add(59 * time.Second)

		cancelled, err := s.move(o.ID(), alice, order.Cancelled)

		s.Require().NoError(err)
		s.Equal(order.Cancelled, cancelled.Status())
	})

	s.Run("at the window", func() {
		s.now = startOfDay
		o := s.placeOrder()
		s.now = startOfDay.Add(60 * time.Second)

		_, err := s.move(o.ID(), alice, order.Cancelled)

		s.ErrorIs(err, errs.ErrCancellationWindowClosed)
		stored, _ := s.deps.Orders.Get(s.ctx, o.ID())
		s.Equal(order.Placed, stored.Status())
	})
}

func (s *CommandsSuite) TestChangeStatus_CancelRace() {
	o := s.placeOrder()

	_, err := s.move(o.ID(), alice, order.Cancelled)
	s.Require().NoError(err)
	_, err = s.move(o.ID(), burgerking, order.Cancelled)

	s.ErrorIs(err, errs.ErrInvalidTransition)
}

func (s *CommandsSuite) TestChangeStatus_Refusals() {
	o := s.placeOrder()

	s.Run("foreign restaurant", func() {
		_, err := s.move(o.ID(), pizzahub, order.Preparing)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("illegal jump", func() {
		_, err := s.move(o.ID(), bob, order.Delivered)
		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("customer cannot prepare", func() {
		_, err := s.move(o.ID(), alice, order.Preparing)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("another shipper cannot deliver", func() {
		_, err := s.move(o.ID(), bob, order.AcceptedByShipper)
		s.Require().NoError(err)

		_, err = s.move(o.ID(), carol, order.Delivering)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("unknown order", func() {
		cmd, err := commands.NewCancelOrderCommand(s.pizza.ID(), alice)
		s.Require().NoError(err)

		_, err = commands.NewChangeStatusCommandHandler(s.deps).Handle(s.ctx, cmd)
		s.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (s *CommandsSuite) TestPostMessage() {
	o := s.placeOrder()
	handler := commands.NewPostMessageCommandHandler(s.deps)
	post := func(actor user.Actor, text string) error {
		cmd, err := commands.NewPostMessageCommand(o.ID(), actor, text)
		s.Require().NoError(err)
		return handler.Handle(s.ctx, cmd)
	}

	s.ErrorIs(post(alice, "hello?"), errs.ErrChatNotAvailable)

	_, err := s.move(o.ID(), bob, order.AcceptedByShipper)
	s.Require().NoError(err)

	s.Require().NoError(post(alice, "gate code 1234"))
	s.Require().NoError(post(bob, "on my way"))
	s.ErrorIs(post(carol, "hi"), errs.ErrUnauthorized)
	s.ErrorIs(post(dave, "hi"), errs.ErrUnauthorized)

	stored, _ := s.deps.Orders.Get(s.ctx, o.ID())
	s.Require().Len(stored.Chat(), 2)
	s.Equal("bob", stored.Chat()[1].Sender)
	s.Len(s.publishedOf(ports.OrderMessagePosted), 2)

	_, err = s.move(o.ID(), bob, order.Delivering)
	s.Require().NoError(err)
	_, err = s.move(o.ID(), bob, order.Delivered)
	s.Require().NoError(err)

	stored, _ = s.deps.Orders.Get(s.ctx, o.ID())
	s.Empty(stored.Chat())
	s.ErrorIs(post(alice, "thanks"), errs.ErrChatNotAvailable)
}
