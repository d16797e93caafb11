package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetFoods handles GET /api/v1/foods?category=&restaurant= - lists the menu.
func (s *Server) GetFoods(ctx echo.Context) error {
	var category, restaurant *string
	if err := errors.Join(
		runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &category),
		runtime.BindQueryParameter("form", true, false, "restaurant", ctx.QueryParams(), &restaurant),
	); err != nil {
		return badRequest(ctx, "Invalid filter")
	}
	query := queries.NewListFoodsQuery(valueOr(category, ""), valueOr(restaurant, ""))

	foods, err := s.h.ListFoods.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Food, 0, len(foods))
	for _, f := range foods {
		response = append(response, toFood(f))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCategories handles GET /api/v1/categories?restaurant= - "All" comes first.
func (s *Server) GetCategories(ctx echo.Context) error {
	query := queries.NewListCategoriesQuery(ctx.QueryParam("restaurant"))

	categories, err := s.h.ListCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, categories)
}

// GetFoodReviews handles GET /api/v1/foods/:id/reviews.
func (s *Server) GetFoodReviews(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}

	query, err := queries.NewGetFoodReviewsQuery(id)
	if err != nil {
		return fail(ctx, err)
	}

	reviews, err := s.h.GetFoodReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReviews(reviews))
}

// GetShipperRatings handles GET /api/v1/shippers/:username/ratings.
func (s *Server) GetShipperRatings(ctx echo.Context) error {
	query, err := queries.NewGetShipperRatingsQuery(ctx.Param("username"))
	if err != nil {
		return fail(ctx, err)
	}

	reviews, err := s.h.GetShipperRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReviews(reviews))
}

// CreateFood handles POST /api/v1/foods - adds an item to a menu.
func (s *Server) CreateFood(ctx echo.Context) error {
	var body NewFoodItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.ParseMoney(body.Price)
	if err != nil {
		return fail(ctx, err)
	}

	variations, err := parseVariations(body.Variations)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddFoodItemCommand(actorOf(ctx), body.Name, body.Description,
		price, body.Category, body.Restaurant, variations)
	if err != nil {
		return fail(ctx, err)
	}

	item, err := s.h.AddFoodItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromFoodItem(item))
}

// EditFood handles PUT /api/v1/foods/:id - replaces name, description,
// category and variations.
func (s *Server) EditFood(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}

	var body FoodEdit
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	variations, err := parseVariations(body.Variations)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewEditFoodItemCommand(actorOf(ctx), id, body.Name, body.Description, body.Category, variations)
	if err != nil {
		return fail(ctx, err)
	}

	item, err := s.h.EditFoodItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromFoodItem(item))
}

// DeleteFood handles DELETE /api/v1/foods/:id.
func (s *Server) DeleteFood(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}

	cmd, err := commands.NewRemoveFoodItemCommand(actorOf(ctx), id)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.RemoveFoodItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetFoodStock handles PUT /api/v1/foods/:id/stock.
func (s *Server) SetFoodStock(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}

	var body StockUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetFoodStockCommand(actorOf(ctx), id, body.InStock)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.SetFoodStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetFoodPrice handles PUT /api/v1/foods/:id/price.
func (s *Server) SetFoodPrice(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid food id")
	}

	var body PriceUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.ParseMoney(body.Price)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateFoodPriceCommand(actorOf(ctx), id, price)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.UpdateFoodPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetRestaurantOpen handles PUT /api/v1/restaurants/:username/open.
func (s *Server) SetRestaurantOpen(ctx echo.Context) error {
	var body OpenUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRestaurantOpenCommand(actorOf(ctx), ctx.Param("username"), body.Open)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.h.SetRestaurantOpen.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseVariations(in []NewVariation) ([]food.Variation, error) {
	variations := make([]food.Variation, 0, len(in))
	for _, v := range in {
		delta, err := kernel.ParseMoney(v.Delta)
		if err != nil {
			return nil, err
		}
		variations = append(variations, food.Variation{Name: v.Name, Delta: delta})
	}
	return variations, nil
}
