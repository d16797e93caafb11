package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(
	ctx context.Context,
	orderID kernel.UUID,
	customer string,
	amount kernel.Money,
) (string, error) {
	args := m.Called(ctx, orderID, customer, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) Refund(ctx context.Context, reference string) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

// failingOrders rejects every new order and delegates the rest.
type failingOrders struct {
	ports.OrderRepository
	err error
}

func (f failingOrders) Add(context.Context, *order.Order) error {
	return f.err
}

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) Save(ctx context.Context, d ports.Dataset) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockSnapshotStore) Load(ctx context.Context) (ports.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Dataset), args.Error(1)
}

var (
	alice      = user.Actor{Username: "alice", Role: user.Customer}
	dave       = user.Actor{Username: "dave", Role: user.Customer}
	bob        = user.Actor{Username: "bob", Role: user.Shipper}
	carol      = user.Actor{Username: "carol", Role: user.Shipper}
	burgerking = user.Actor{Username: "burgerking", Role: user.Restaurant}
	pizzahub   = user.Actor{Username: "pizzahub", Role: user.Restaurant}
	admin      = user.Actor{Username: "root", Role: user.Admin}
	support    = user.Actor{Username: "helpdesk", Role: user.CustomerService}
	backoffice = user.Actor{Username: "backoffice", Role: user.Administrator}
)

var startOfDay = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// CommandsSuite wires every handler to fresh in-memory repositories seeded
// with two restaurants, customers, shippers and staff.
type CommandsSuite struct {
	suite.Suite

	ctx      context.Context
	now      time.Time
	events   *MockEventPublisher
	payments *MockPaymentGateway
	deps     commands.Deps

	burger *food.FoodItem
	coke   *food.FoodItem
	pizza  *food.FoodItem
}

func (s *CommandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = startOfDay
	s.events = &MockEventPublisher{}
	s.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.payments = &MockPaymentGateway{}

	s.deps = commands.Deps{
		Foods:      memory.NewFoodRepository(),
		Users:      memory.NewUserRepository(),
		Carts:      memory.NewCartRepository(),
		Orders:     memory.NewOrderRepository(),
		Complaints: memory.NewComplaintRepository(),
		Payments:   s.payments,
		Events:     s.events,
		Policy:     services.NewTransitionPolicy(services.DefaultCancellationWindow),
		Clock:      func() time.Time { return s.now },
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, a := range []user.Actor{alice, dave, bob, carol, burgerking, pizzahub, admin, support, backoffice} {
		u, err := user.NewUser(a.Username, a.Role, a.Username+" street 1", "555-01"+a.Username[:2], a.Username)
		s.Require().NoError(err)
		s.Require().NoError(s.deps.Users.Add(s.ctx, u))
	}

	s.burger = s.addFood("Classic Burger", "6.99", "Burgers", burgerking, food.Variation{Name: "Large", Delta: kernel.MustParseMoney("1.50")})
	s.coke = s.addFood("Coke", "1.50", "Drinks", burgerking)
	s.pizza = s.addFood("Margherita", "9.00", "Pizza", pizzahub)
}

func (s *CommandsSuite) addFood(name, price, category string, restaurant user.Actor, variations ...food.Variation) *food.FoodItem {
	cmd, err := commands.NewAddFoodItemCommand(restaurant, name, "", kernel.MustParseMoney(price), category, "", variations)
	s.Require().NoError(err)
	item, err := commands.NewAddFoodItemCommandHandler(s.deps).Handle(s.ctx, cmd)
	s.Require().NoError(err)
	return item
}

func (s *CommandsSuite) addToCart(customer user.Actor, item *food.FoodItem, variation string, qty int) error {
	cmd, err := commands.NewAddToCartCommand(customer, item.ID(), variation, qty)
	s.Require().NoError(err)
	return commands.NewAddToCartCommandHandler(s.deps).Handle(s.ctx, cmd)
}

func (s *CommandsSuite) checkout(customer user.Actor, payment order.PaymentMethod) (*order.Order, error) {
	cmd, err := commands.NewCheckoutCommand(customer, "", payment)
	s.Require().NoError(err)
	return commands.NewCheckoutCommandHandler(s.deps).Handle(s.ctx, cmd)
}

// placeOrder checks out one burger and two cokes for alice.
func (s *CommandsSuite) placeOrder() *order.Order {
	s.Require().NoError(s.addToCart(alice, s.burger, "", 1))
	s.Require().NoError(s.addToCart(alice, s.coke, "", 2))
	o, err := s.checkout(alice, order.CashOnDelivery)
	s.Require().NoError(err)
	return o
}

func (s *CommandsSuite) move(orderID kernel.UUID, actor user.Actor, target order.Status) (*order.Order, error) {
	cmd, err := commands.NewChangeStatusCommand(orderID, actor, target)
	s.Require().NoError(err)
	return commands.NewChangeStatusCommandHandler(s.deps).Handle(s.ctx, cmd)
}

// deliverOrder places an order and walks it to Delivered with bob as shipper.
func (s *CommandsSuite) deliverOrder() *order.Order {
	o := s.placeOrder()
	for _, step := range []struct {
		actor  user.Actor
		target order.Status
	}{
		{burgerking, order.Preparing},
		{burgerking, order.ReadyForPickup},
		{bob, order.AcceptedByShipper},
		{bob, order.Delivering},
		{bob, order.Delivered},
	} {
		_, err := s.move(o.ID(), step.actor, step.target)
		s.Require().NoError(err)
	}
	return o
}

func (s *CommandsSuite) publishedOf(eventType ports.EventType) []ports.Event {
	var out []ports.Event
	for _, call := range s.events.Calls {
		if e, ok := call.Arguments.Get(1).(ports.Event); ok && e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
