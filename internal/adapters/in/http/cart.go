package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetCart handles GET /api/v1/cart - the caller's cart priced at current prices.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	cart, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(cart))
}

// AddCartItem handles POST /api/v1/cart/items. Quantity defaults to 1.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var body NewCartLine
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	foodID, err := kernel.UUIDFromString(body.FoodID)
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cmd, err := commands.NewAddToCartCommand(actorOf(ctx), foodID, body.Variation, body.Quantity)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return s.GetCart(ctx)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:food_id?variation=&quantity=.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	foodID, err := kernel.UUIDFromString(ctx.Param("food_id"))
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}

	var quantity *int
	if err = runtime.BindQueryParameter("form", true, false, "quantity", ctx.QueryParams(), &quantity); err != nil {
		return badRequest(ctx, "Invalid quantity")
	}
	var variation *string
	if err = runtime.BindQueryParameter("form", true, false, "variation", ctx.QueryParams(), &variation); err != nil {
		return badRequest(ctx, "Invalid variation")
	}

	cmd, err := commands.NewRemoveFromCartCommand(actorOf(ctx), foodID, valueOr(variation, ""), valueOr(quantity, 1))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return s.GetCart(ctx)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(actorOf(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// valueOr dereferences an optional parameter bound by runtime.BindQueryParameter.
func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
