package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
)

// FoodFeedback is the customer's score for one food of a delivered order.
type FoodFeedback struct {
	Rating  int
	Comment string
}

// Feedback is the complete rating batch a customer submits for one order.
// Rating the shipper is optional and so is rating any particular food.
type Feedback struct {
	Foods          map[kernel.UUID]FoodFeedback
	ShipperRating  *int
	ShipperComment string
}

// IsEmpty reports whether the batch rates nothing at all.
func (f Feedback) IsEmpty() bool {
	return len(f.Foods) == 0 && f.ShipperRating == nil
}

// Validate checks every score in the batch, reporting all offenders at once.
func (f Feedback) Validate() error {
	var errList []error
	for _, ff := range f.Foods {
		if err := kernel.ValidateRating(ff.Rating); err != nil {
			errList = append(errList, err)
		}
	}
	if f.ShipperRating != nil {
		if err := kernel.ValidateRating(*f.ShipperRating); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
