package services

import (
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// FoodRating is one score to append to a catalog item.
type FoodRating struct {
	FoodID  kernel.UUID
	Rating  int
	Comment string
}

// ShipperRating is the score to append to the assigned shipper.
type ShipperRating struct {
	Shipper string
	Rating  int
	Comment string
}

// Distribution is what a rated order fans out to the catalog and the shipper.
type Distribution struct {
	Foods   []FoodRating
	Shipper *ShipperRating
}

// FeedbackAggregator records a customer's feedback batch on the order and
// spreads it to the rated foods and the shipper.
//
// The batch is validated as a whole by Record before any aggregate changes,
// so applying the resulting Distribution cannot fail on a bad score.
type FeedbackAggregator struct{}

func NewFeedbackAggregator() FeedbackAggregator {
	return FeedbackAggregator{}
}

// Record stores fb on o and returns the ratings to distribute, foods in item order.
func (FeedbackAggregator) Record(o *order.Order, customer string, fb order.Feedback) (Distribution, error) {
	if err := o.ApplyFeedback(customer, fb); err != nil {
		return Distribution{}, err
	}

	var d Distribution
	for _, it := range o.Items() {
		ff, ok := fb.Foods[it.FoodID()]
		if !ok || containsFood(d.Foods, it.FoodID()) {
			continue
		}
		d.Foods = append(d.Foods, FoodRating{FoodID: it.FoodID(), Rating: ff.Rating, Comment: ff.Comment})
	}
	if rating, ok := o.ShipperRating(); ok && o.HasShipper() {
		d.Shipper = &ShipperRating{Shipper: o.Shipper(), Rating: rating, Comment: o.ShipperComment()}
	}
	return d, nil
}

// ApplyToFood appends r to f and recomputes its average.
func (FeedbackAggregator) ApplyToFood(f *food.FoodItem, r FoodRating) error {
	if !f.ID().IsEqual(r.FoodID) {
		return errs.NewInternalError(errs.NewValueIsInvalidError("food rating target"))
	}
	return f.AddRating(r.Rating, r.Comment)
}

// ApplyToShipper appends r to the shipper's raw rating lists.
func (FeedbackAggregator) ApplyToShipper(u *user.User, r ShipperRating) error {
	if u.Username() != r.Shipper {
		return errs.NewInternalError(errs.NewValueIsInvalidError("shipper rating target"))
	}
	return u.AddShipperRating(r.Rating, r.Comment)
}

func containsFood(ratings []FoodRating, id kernel.UUID) bool {
	for _, r := range ratings {
		if r.FoodID.IsEqual(id) {
			return true
		}
	}
	return false
}
