package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CheckoutCommandHandler runs checkout inside the customer's cart critical
// section: the order is stored and the cart cleared together, and on any
// failure the cart is left exactly as it was.
type CheckoutCommandHandler struct {
	deps     Deps
	checkout services.CheckoutService
	logger   *slog.Logger
}

func NewCheckoutCommandHandler(deps Deps) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		deps:     deps,
		checkout: services.NewCheckoutService(),
		logger:   deps.logger("checkout"),
	}
}

// Handle places the order and returns it.
//
// Returns errs.ErrNotACustomer, errs.ErrEmptyCart, *errs.ItemUnavailableError
// or errs.ErrPaymentDeclined (wrapped) for an Online payment the gateway refused.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireCustomer(cmd.Customer()); err != nil {
		return nil, err
	}

	customer, err := h.deps.Users.Get(ctx, cmd.Customer().Username)
	if err != nil {
		return nil, err
	}

	var placed *order.Order
	err = h.deps.Carts.Update(ctx, customer.Username(), func(c *cart.Cart) error {
		catalog, catalogErr := h.catalogFor(ctx, c)
		if catalogErr != nil {
			return catalogErr
		}

		o, checkoutErr := h.checkout.Checkout(kernel.NewUUID(), customer, c, catalog,
			cmd.Note(), cmd.Payment(), h.deps.now())
		if checkoutErr != nil {
			return checkoutErr
		}

		if o.PaymentMethod() == order.Online {
			if h.deps.Payments == nil {
				return errs.NewInternalError(errors.New("no payment gateway configured"))
			}
			reference, chargeErr := h.deps.Payments.Charge(ctx, o.ID(), customer.Username(), o.Total())
			if chargeErr != nil {
				return chargeErr
			}
			if chargeErr = o.RecordPayment(reference); chargeErr != nil {
				h.refund(ctx, o, reference, chargeErr)
				return chargeErr
			}
		}

		if addErr := h.deps.Orders.Add(ctx, o); addErr != nil {
			h.refund(ctx, o, o.PaymentReference(), addErr)
			return addErr
		}
		c.Clear()
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order placed",
		"order_id", placed.ID().String(),
		"customer", placed.Customer(),
		"total", placed.Total().String(),
		"payment", placed.PaymentMethod().String(),
	)
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.OrderPlaced,
		OrderID: placed.ID().String(),
		Actor:   cmd.Customer().String(),
		Status:  placed.Status().String(),
		Total:   placed.Total().String(),
		Message: fmt.Sprintf("%s placed an order of %d item(s) for VND %s",
			placed.Customer(), len(placed.Items()), placed.Total()),
	})
	return placed, nil
}

// refund reverses the charge of an order that was never stored. A failed
// refund is logged at Error with the gateway reference for manual follow up.
func (h CheckoutCommandHandler) refund(ctx context.Context, o *order.Order, reference string, cause error) {
	if reference == "" {
		return
	}
	// The order is already lost; a cancelled request must not cancel the refund.
	refundCtx := context.WithoutCancel(ctx)
	if err := h.deps.Payments.Refund(refundCtx, reference); err != nil {
		h.logger.ErrorContext(ctx, "Failed to refund charge of unsaved order",
			"order_id", o.ID().String(),
			"customer", o.Customer(),
			"reference", reference,
			"total", o.Total().String(),
			"cause", cause,
			"error", err,
		)
		return
	}
	h.logger.WarnContext(ctx, "Refunded charge of unsaved order",
		"order_id", o.ID().String(),
		"reference", reference,
		"cause", cause,
	)
}

// catalogFor reads the current catalog entries of the cart's foods and their
// restaurants. Missing foods stay out of the view so checkout reports them.
func (h CheckoutCommandHandler) catalogFor(ctx context.Context, c *cart.Cart) (services.Catalog, error) {
	catalog := services.Catalog{
		Foods:       make(map[kernel.UUID]*food.FoodItem),
		Restaurants: make(map[string]*user.User),
	}

	for _, line := range c.Lines() {
		if _, seen := catalog.Foods[line.FoodID]; seen {
			continue
		}
		item, err := h.deps.Foods.Get(ctx, line.FoodID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return services.Catalog{}, err
		}
		catalog.Foods[line.FoodID] = item

		if _, seen := catalog.Restaurants[item.Restaurant()]; seen {
			continue
		}
		restaurant, err := h.deps.Users.Get(ctx, item.Restaurant())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return services.Catalog{}, err
		}
		catalog.Restaurants[item.Restaurant()] = restaurant
	}
	return catalog, nil
}
