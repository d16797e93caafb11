package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// orderID accepts either a full UUID or a short id prefix as shown in lists.
func (s *Server) orderID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Param("id")
	if id, err := kernel.UUIDFromString(raw); err == nil {
		return id, nil
	}

	query, err := queries.NewResolveShortIDQuery(raw)
	if err != nil {
		return kernel.UUID{}, err
	}
	return s.h.ResolveShortID.Handle(ctx.Request().Context(), query)
}

// CreateOrder handles POST /api/v1/orders - checks out the caller's cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payment, err := order.ParsePaymentMethod(body.Payment)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(actorOf(ctx), body.Note, payment)
	if err != nil {
		return fail(ctx, err)
	}

	o, err := s.h.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromOrder(o))
}

// GetOrders handles GET /api/v1/orders - the orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderSummary(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(id, actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	details, err := s.h.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status. Claiming is a
// move to ACCEPTED_BY_SHIPPER; cancelling is a move to CANCELLED.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeStatusCommand(id, actorOf(ctx), target)
	if err != nil {
		return fail(ctx, err)
	}

	o, err := s.h.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// Reorder handles POST /api/v1/orders/:id/reorder - refills the cart.
func (s *Server) Reorder(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewReorderCommand(actorOf(ctx), id)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.Reorder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return s.GetCart(ctx)
}

// GetChat handles GET /api/v1/orders/:id/chat.
func (s *Server) GetChat(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetChatQuery(id, actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	messages, err := s.h.GetChat.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMessages(messages))
}

// PostMessage handles POST /api/v1/orders/:id/chat.
func (s *Server) PostMessage(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var body NewMessage
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPostMessageCommand(id, actorOf(ctx), body.Text)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.PostMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// RateOrder handles POST /api/v1/orders/:id/rating. Foods are keyed by food id.
func (s *Server) RateOrder(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var body NewRating
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	foods := make(map[kernel.UUID]order.FoodFeedback, len(body.Foods))
	for rawID, r := range body.Foods {
		foodID, idErr := kernel.UUIDFromString(rawID)
		if idErr != nil {
			return badRequest(ctx, "Invalid food id "+rawID)
		}
		foods[foodID] = order.FoodFeedback{Rating: r.Rating, Comment: r.Comment}
	}

	cmd, err := commands.NewRateOrderCommand(id, actorOf(ctx), foods, body.ShipperRating, body.ShipperComment)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.RateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AttachComplaint handles POST /api/v1/orders/:id/complaint.
func (s *Server) AttachComplaint(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var body NewMessage
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAttachComplaintCommand(id, actorOf(ctx), body.Text)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.AttachComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ResolveOrderComplaint handles DELETE /api/v1/orders/:id/complaint.
func (s *Server) ResolveOrderComplaint(ctx echo.Context) error {
	id, err := s.orderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewResolveOrderComplaintCommand(id, actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.ResolveOrderComplaint.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
