package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// AllCategories selects every category in ListFoodsQuery.
const AllCategories = "All"

var (
	ErrListFoodsQueryIsNotConstructed = errors.New(
		"ListFoodsQuery must be created via NewListFoodsQuery constructor",
	)
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// ListFoodsQuery filters the catalog by category and/or restaurant; empty
// filters (or AllCategories) match everything.
type ListFoodsQuery struct {
	category   string
	restaurant string

	guard guard.ConstructorGuard
}

func NewListFoodsQuery(category, restaurant string) ListFoodsQuery {
	if category == AllCategories {
		category = ""
	}
	return ListFoodsQuery{category: category, restaurant: restaurant, guard: guard.NewConstructorGuard()}
}

func (q ListFoodsQuery) Validate() error {
	return q.guard.Validate(ErrListFoodsQueryIsNotConstructed)
}

type VariationResponse struct {
	Name      string
	Delta     kernel.Money
	UnitPrice kernel.Money
}

type FoodResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	Restaurant  string
	InStock     bool
	Average     float64
	RatingCount int
	Variations  []VariationResponse
}

func toFoodResponse(f *food.FoodItem) FoodResponse {
	r := FoodResponse{
		ID:          f.ID(),
		Name:        f.Name(),
		Description: f.Description(),
		Price:       f.Price(),
		Category:    f.Category(),
		Restaurant:  f.Restaurant(),
		InStock:     f.InStock(),
		Average:     f.Average(),
		RatingCount: f.RatingCount(),
	}
	for _, v := range f.Variations() {
		r.Variations = append(r.Variations, VariationResponse{Name: v.Name, Delta: v.Delta, UnitPrice: f.Price().Add(v.Delta)})
	}
	return r
}

type ListFoodsQueryHandler struct {
	sources Sources
}

func NewListFoodsQueryHandler(sources Sources) ListFoodsQueryHandler {
	return ListFoodsQueryHandler{sources: sources}
}

func (h ListFoodsQueryHandler) Handle(ctx context.Context, query ListFoodsQuery) ([]FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.sources.Foods.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FoodResponse, 0, len(items))
	for _, f := range items {
		if query.category != "" && f.Category() != query.category {
			continue
		}
		if query.restaurant != "" && f.Restaurant() != query.restaurant {
			continue
		}
		out = append(out, toFoodResponse(f))
	}
	return out, nil
}

// ListCategoriesQuery returns AllCategories followed by every category in
// catalog order, optionally limited to one restaurant.
type ListCategoriesQuery struct {
	restaurant string

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(restaurant string) ListCategoriesQuery {
	return ListCategoriesQuery{restaurant: restaurant, guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

type ListCategoriesQueryHandler struct {
	sources Sources
}

func NewListCategoriesQueryHandler(sources Sources) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{sources: sources}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.sources.Foods.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{AllCategories: true}
	out := []string{AllCategories}
	for _, f := range items {
		if query.restaurant != "" && f.Restaurant() != query.restaurant {
			continue
		}
		if !seen[f.Category()] {
			seen[f.Category()] = true
			out = append(out, f.Category())
		}
	}
	return out, nil
}
