package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Rating bounds, inclusive.
const (
	MinRating = 0
	MaxRating = 5
)

// ValidateRating rejects scores outside [MinRating, MaxRating] with errs.ErrInvalidRating.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidRating, rating)
	}
	return nil
}

// Mean is the arithmetic mean of ratings, 0 for an empty slice.
func Mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
