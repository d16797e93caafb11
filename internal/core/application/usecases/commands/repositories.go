// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command follows the same pattern: a validated command value, a handler
// that mutates aggregates through the per-aggregate critical sections of the
// repositories, and an event published once the change is committed.
package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// Clock returns the current instant. Handlers never call time.Now directly so
// tests can pin the cancellation window.
type Clock func() time.Time

// Deps bundles the collaborators command handlers share.
//
// Repository Update methods are the only mutation path: each runs its callback
// inside the critical section of a single aggregate and commits only when the
// callback returns nil.
//
// Example:
//
//	deps := commands.Deps{
//	    Foods: foods, Users: users, Carts: carts, Orders: orders, Complaints: complaints,
//	    Payments: gateway, Events: publisher,
//	    Policy: services.NewTransitionPolicy(time.Minute),
//	    Clock:  time.Now,
//	    Logger: logger,
//	}
//	handler := commands.NewChangeStatusCommandHandler(deps)
type Deps struct {
	Foods      ports.FoodRepository
	Users      ports.UserRepository
	Carts      ports.CartRepository
	Orders     ports.OrderRepository
	Complaints ports.ComplaintRepository
	Snapshots  ports.SnapshotStore
	Payments   ports.PaymentGateway
	Events     ports.EventPublisher

	Policy services.TransitionPolicy
	Clock  Clock
	Logger *slog.Logger
}

func (d Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

func (d Deps) logger(component string) *slog.Logger {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}

// publish hands the event to the publisher after the state change is
// committed. A failing sink never undoes the change; it is logged instead.
func (d Deps) publish(ctx context.Context, logger *slog.Logger, event ports.Event) {
	if d.Events == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = d.now()
	}
	if err := d.Events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", event.Type, "error", err)
	}
}
