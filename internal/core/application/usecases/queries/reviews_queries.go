package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetFoodReviewsQueryIsNotConstructed = errors.New(
		"GetFoodReviewsQuery must be created via NewGetFoodReviewsQuery constructor",
	)
	ErrGetShipperRatingsQueryIsNotConstructed = errors.New(
		"GetShipperRatingsQuery must be created via NewGetShipperRatingsQuery constructor",
	)
)

type ReviewsResponse struct {
	Subject  string
	Average  float64
	Count    int
	Ratings  []int
	Comments []string
}

type GetFoodReviewsQuery struct {
	foodID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetFoodReviewsQuery(foodID kernel.UUID) (GetFoodReviewsQuery, error) {
	if err := foodID.Validate(); err != nil {
		return GetFoodReviewsQuery{}, err
	}
	return GetFoodReviewsQuery{foodID: foodID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetFoodReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodReviewsQueryIsNotConstructed)
}

type GetFoodReviewsQueryHandler struct {
	sources Sources
}

func NewGetFoodReviewsQueryHandler(sources Sources) GetFoodReviewsQueryHandler {
	return GetFoodReviewsQueryHandler{sources: sources}
}

func (h GetFoodReviewsQueryHandler) Handle(ctx context.Context, query GetFoodReviewsQuery) (ReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewsResponse{}, err
	}

	f, err := h.sources.Foods.Get(ctx, query.foodID)
	if err != nil {
		return ReviewsResponse{}, err
	}
	return ReviewsResponse{
		Subject:  f.Name(),
		Average:  f.Average(),
		Count:    f.RatingCount(),
		Ratings:  f.Ratings(),
		Comments: f.Comments(),
	}, nil
}

type GetShipperRatingsQuery struct {
	shipper string

	guard guard.ConstructorGuard
}

func NewGetShipperRatingsQuery(shipper string) (GetShipperRatingsQuery, error) {
	if shipper == "" {
		return GetShipperRatingsQuery{}, errs.NewValueIsRequiredError("shipper")
	}
	return GetShipperRatingsQuery{shipper: shipper, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipperRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperRatingsQueryIsNotConstructed)
}

// GetShipperRatingsQueryHandler computes the shipper's mean on demand from the
// full rating list.
type GetShipperRatingsQueryHandler struct {
	sources Sources
}

func NewGetShipperRatingsQueryHandler(sources Sources) GetShipperRatingsQueryHandler {
	return GetShipperRatingsQueryHandler{sources: sources}
}

func (h GetShipperRatingsQueryHandler) Handle(ctx context.Context, query GetShipperRatingsQuery) (ReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewsResponse{}, err
	}

	u, err := h.sources.Users.Get(ctx, query.shipper)
	if err != nil {
		return ReviewsResponse{}, err
	}
	if u.Role() != user.Shipper {
		return ReviewsResponse{}, errs.NewObjectNotFoundError("shipper", query.shipper)
	}

	subject := u.DisplayName()
	if subject == "" {
		subject = u.Username()
	}
	return ReviewsResponse{
		Subject:  subject,
		Average:  u.ShipperAverage(),
		Count:    len(u.ShipperRatings()),
		Ratings:  u.ShipperRatings(),
		Comments: u.ShipperComments(),
	}, nil
}
