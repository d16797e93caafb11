package commands_test

import (
	"errors"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

func (s *CommandsSuite) TestComplaints_FreeStanding() {
	file, err := commands.NewFileComplaintCommand(bob, "app crashes on login")
	s.Require().NoError(err)
	c, err := commands.NewFileComplaintCommandHandler(s.deps).Handle(s.ctx, file)
	s.Require().NoError(err)
	s.Equal(complaint.Pending, c.Status())
	s.Equal(user.Shipper, c.Role())

	resolve := commands.NewResolveComplaintCommandHandler(s.deps)

	byCustomer, err := commands.NewResolveComplaintCommand(c.ID(), alice)
	s.Require().NoError(err)
	s.ErrorIs(resolve.Handle(s.ctx, byCustomer), errs.ErrUnauthorized)

	bySupport, err := commands.NewResolveComplaintCommand(c.ID(), support)
	s.Require().NoError(err)
	s.Require().NoError(resolve.Handle(s.ctx, bySupport))

	stored, _ := s.deps.Complaints.Get(s.ctx, c.ID())
	s.Equal(complaint.Resolved, stored.Status())
	s.ErrorIs(resolve.Handle(s.ctx, bySupport), errs.ErrValueIsInvalid)
	s.Len(s.publishedOf(ports.ComplaintResolved), 1)
}

func (s *CommandsSuite) TestComplaints_OnOrder() {
	o := s.placeOrder()
	attach := commands.NewAttachComplaintCommandHandler(s.deps)

	cmd, err := commands.NewAttachComplaintCommand(o.ID(), dave, "cold")
	s.Require().NoError(err)
	s.ErrorIs(attach.Handle(s.ctx, cmd), errs.ErrUnauthorized)

	for _, text := range []string{"cold", "missing coke"} {
		cmd, err = commands.NewAttachComplaintCommand(o.ID(), alice, text)
		s.Require().NoError(err)
		s.Require().NoError(attach.Handle(s.ctx, cmd))
	}

	stored, _ := s.deps.Orders.Get(s.ctx, o.ID())
	s.Equal("missing coke", stored.Complaint())
	s.Equal(order.Placed, stored.Status())

	resolve, err := commands.NewResolveOrderComplaintCommand(o.ID(), support)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewResolveOrderComplaintCommandHandler(s.deps).Handle(s.ctx, resolve))

	stored, _ = s.deps.Orders.Get(s.ctx, o.ID())
	s.False(stored.HasComplaint())
	s.Len(s.publishedOf(ports.OrderComplaintClosed), 1)
}

func (s *CommandsSuite) TestUsers() {
	s.Run("register rejects duplicates", func() {
		cmd, err := commands.NewRegisterUserCommand("alice", user.Customer, "", "", "")
		s.Require().NoError(err)

		_, err = commands.NewRegisterUserCommandHandler(s.deps).Handle(s.ctx, cmd)

		s.ErrorIs(err, errs.ErrValueIsInvalid)
	})

	s.Run("profile change applies to later orders only", func() {
		placed := s.placeOrder()
		cmd, err := commands.NewUpdateProfileCommand(alice, "42 New Road", "555-9999")
		s.Require().NoError(err)
		s.Require().NoError(commands.NewUpdateProfileCommandHandler(s.deps).Handle(s.ctx, cmd))

		stored, _ := s.deps.Orders.Get(s.ctx, placed.ID())
		s.Equal("alice street 1", stored.Address())

		again := s.placeOrder()
		s.Equal("42 New Road", again.Address())
		s.Equal("555-9999", again.Phone())
	})

	s.Run("delete customer", func() {
		s.Require().NoError(s.addToCart(dave, s.pizza, "", 1))
		handler := commands.NewDeleteCustomerCommandHandler(s.deps)

		bySupport, err := commands.NewDeleteCustomerCommand(support, "dave")
		s.Require().NoError(err)
		s.ErrorIs(handler.Handle(s.ctx, bySupport), errs.ErrUnauthorized)

		shipper, err := commands.NewDeleteCustomerCommand(backoffice, "bob")
		s.Require().NoError(err)
		s.ErrorIs(handler.Handle(s.ctx, shipper), errs.ErrValueIsInvalid)

		cmd, err := commands.NewDeleteCustomerCommand(backoffice, "dave")
		s.Require().NoError(err)
		s.Require().NoError(handler.Handle(s.ctx, cmd))

		_, err = s.deps.Users.Get(s.ctx, "dave")
		s.ErrorIs(err, errs.ErrObjectNotFound)
		c, _ := s.deps.Carts.Get(s.ctx, "dave")
		s.True(c.IsEmpty())
	})
}

func (s *CommandsSuite) TestEditUser() {
	edit := func(actor user.Actor, username string, role user.Role, address, phone, displayName string) (*user.User, error) {
		cmd, err := commands.NewEditUserCommand(actor, username, role, address, phone, displayName)
		s.Require().NoError(err)
		return commands.NewEditUserCommandHandler(s.deps).Handle(s.ctx, cmd)
	}

	s.Run("placed orders keep the old profile", func() {
		placed := s.placeOrder()

		edited, err := edit(backoffice, "alice", user.Customer, "7 Harbour St", "555-7777", "Alice")

		s.Require().NoError(err)
		s.Equal("7 Harbour St", edited.Address())
		stored, _ := s.deps.Orders.Get(s.ctx, placed.ID())
		s.Equal("alice street 1", stored.Address())
		events := s.publishedOf(ports.UserUpdated)
		s.Require().Len(events, 1)
		s.Equal("alice", events[0].Subject)
	})

	s.Run("role change keeps shipper feedback", func() {
		s.Require().NoError(s.deps.Users.Update(s.ctx, "carol", func(u *user.User) error {
			return u.AddShipperRating(5, "")
		}))

		edited, err := edit(admin, "carol", user.CustomerService, "", "", "Carol")

		s.Require().NoError(err)
		s.Equal(user.CustomerService, edited.Role())
		s.Equal([]int{5}, edited.ShipperRatings())
		s.Equal("carol changed from SHIPPER to CUSTOMER_SERVICE", s.publishedOf(ports.UserUpdated)[1].Message)
	})

	s.Run("only admin and owner hand out admin", func() {
		_, err := edit(backoffice, "dave", user.Admin, "", "", "")
		s.ErrorIs(err, errs.ErrUnauthorized)

		_, err = edit(backoffice, "root", user.Customer, "", "", "")
		s.ErrorIs(err, errs.ErrUnauthorized)

		stored, _ := s.deps.Users.Get(s.ctx, "root")
		s.Equal(user.Admin, stored.Role())
	})

	s.Run("other roles may not edit accounts", func() {
		_, err := edit(support, "dave", user.Customer, "", "", "")
		s.ErrorIs(err, errs.ErrUnauthorized)

		_, err = edit(alice, "alice", user.Admin, "", "", "")
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("restaurant with a menu keeps its role", func() {
		_, err := edit(admin, "burgerking", user.Customer, "", "", "")
		s.ErrorIs(err, errs.ErrValueIsInvalid)

		renamed, err := edit(admin, "burgerking", user.Restaurant, "1 Grill Way", "", "Burger King Express")
		s.Require().NoError(err)
		s.Equal("Burger King Express", renamed.DisplayName())
	})

	s.Run("unknown account", func() {
		_, err := edit(admin, "nobody", user.Customer, "", "", "")
		s.ErrorIs(err, errs.ErrObjectNotFound)
	})

	s.Run("command validation", func() {
		_, err := commands.NewEditUserCommand(admin, "", user.UnknownRole, "", "", "")
		s.ErrorIs(err, errs.ErrValueIsRequired)
		s.ErrorIs(err, errs.ErrValueIsInvalid)
	})
}

func (s *CommandsSuite) TestSnapshots() {
	store := &MockSnapshotStore{}
	s.deps.Snapshots = store
	placed := s.placeOrder()

	s.Run("save hands every aggregate to the store", func() {
		store.On("Save", mock.Anything, mock.MatchedBy(func(d ports.Dataset) bool {
			return len(d.Foods) == 3 && len(d.Users) == 9 && len(d.Orders) == 1 && len(d.Complaints) == 0
		})).Return(nil).Once()

		s.Require().NoError(commands.NewSaveSnapshotCommandHandler(s.deps).Handle(s.ctx, commands.NewSaveSnapshotCommand()))
		store.AssertExpectations(s.T())
	})

	s.Run("empty snapshot keeps current state", func() {
		store.On("Load", mock.Anything).Return(ports.Dataset{}, nil).Once()

		loaded, err := commands.NewLoadSnapshotCommandHandler(s.deps).Handle(s.ctx, commands.NewLoadSnapshotCommand())

		s.Require().NoError(err)
		s.False(loaded)
		_, err = s.deps.Orders.Get(s.ctx, placed.ID())
		s.NoError(err)
	})

	s.Run("load replaces state", func() {
		store.On("Load", mock.Anything).Return(ports.Dataset{Foods: nil, Users: nil, Orders: []*order.Order{placed}}, nil).Once()

		loaded, err := commands.NewLoadSnapshotCommandHandler(s.deps).Handle(s.ctx, commands.NewLoadSnapshotCommand())

		s.Require().NoError(err)
		s.True(loaded)
		foods, _ := s.deps.Foods.List(s.ctx)
		s.Empty(foods)
		orders, _ := s.deps.Orders.List(s.ctx)
		s.Len(orders, 1)
	})

	s.Run("store failure surfaces", func() {
		store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		err := commands.NewSaveSnapshotCommandHandler(s.deps).Handle(s.ctx, commands.NewSaveSnapshotCommand())

		s.ErrorContains(err, "disk full")
	})
}

func (s *CommandsSuite) TestPublishFailureDoesNotUndoChange() {
	s.events.ExpectedCalls = nil
	s.events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	o := s.placeOrder()

	stored, err := s.deps.Orders.Get(s.ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Placed, stored.Status())
}
