package food

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrCategoryIsRequired   = errs.NewValueIsRequiredError("category")
	ErrRestaurantIsRequired = errs.NewValueIsRequiredError("restaurant")
	// ErrFoodItemIsNotConstructed is returned when using a zero-value FoodItem.
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")
	// ErrVariationNotFound is returned when a variation name is not offered by the item.
	ErrVariationNotFound = errors.New("variation not found")
)

// Variation is a named option of a food item (size, flavour, ...) with a
// signed price delta added to the base price.
type Variation struct {
	Name  string
	Delta kernel.Money
}

// FoodItem is a catalog entry owned by one restaurant. It is an aggregate
// root: ratings and comments submitted after deliveries accumulate on it.
//
// Invariants:
//   - Price is never negative, and price + delta is never negative for any variation
//   - Variation names are unique and non-empty; "" means "no variation"
//   - Average is the arithmetic mean of all ratings, recomputed on every new rating
type FoodItem struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	restaurant  string
	inStock     bool
	variations  []Variation

	ratings  []int
	comments []string
	average  float64

	guard guard.ConstructorGuard
}

// NewFoodItem creates an in-stock item without variations or ratings.
//
// Parameters:
//   - id: unique identifier
//   - name, category: required display fields
//   - price: base unit price, must not be negative
//   - restaurant: username of the owning restaurant
//
// Example:
//
//	burger, err := food.NewFoodItem(kernel.NewUUID(), "Classic Burger", "Beef patty",
//	    kernel.MustParseMoney("6.99"), "Burgers", "pizzahub")
func NewFoodItem(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	category, restaurant string,
) (*FoodItem, error) {
	f := &FoodItem{
		description: description,
		inStock:     true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setCategory(category),
		f.setRestaurant(restaurant),
		f.setPrice(price),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFoodItem rebuilds an item from a persisted snapshot. The average is
// recomputed from ratings rather than trusted from storage.
func RestoreFoodItem(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	category, restaurant string,
	inStock bool,
	variations []Variation,
	ratings []int,
	comments []string,
) (*FoodItem, error) {
	f, err := NewFoodItem(id, name, description, price, category, restaurant)
	if err != nil {
		return nil, err
	}

	for _, v := range variations {
		if err = f.AddVariation(v.Name, v.Delta); err != nil {
			return nil, err
		}
	}
	for _, r := range ratings {
		if err = kernel.ValidateRating(r); err != nil {
			return nil, err
		}
	}

	f.inStock = inStock
	f.ratings = append([]int(nil), ratings...)
	f.comments = append([]string(nil), comments...)
	f.average = kernel.Mean(f.ratings)
	return f, nil
}

// Validate ensures the item was created through its constructors.
func (f *FoodItem) Validate() error {
	if f == nil {
		return ErrFoodItemIsNotConstructed
	}
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

// IsEqual compares items by identity.
func (f *FoodItem) IsEqual(other *FoodItem) bool {
	return other != nil && f.id.IsEqual(other.id)
}

func (f *FoodItem) ID() kernel.UUID { return f.id }
func (f *FoodItem) Name() string { return f.name }
func (f *FoodItem) Description() string { return f.description }
func (f *FoodItem) Price() kernel.Money { return f.price }
func (f *FoodItem) Category() string { return f.category }
func (f *FoodItem) Restaurant() string { return f.restaurant }
func (f *FoodItem) InStock() bool { return f.inStock }
func (f *FoodItem) Average() float64 { return f.average }
func (f *FoodItem) RatingCount() int { return len(f.ratings) }
func (f *FoodItem) Ratings() []int { return append([]int(nil), f.ratings...) }
func (f *FoodItem) Comments() []string { return append([]string(nil), f.comments...) }
func (f *FoodItem) Variations() []Variation {
	return append([]Variation(nil), f.variations...)
}

// SetInStock flips availability for new cart additions.
func (f *FoodItem) SetInStock(inStock bool) {
	f.inStock = inStock
}

// ChangePrice sets a new base price. Existing orders are unaffected because
// they captured their own unit price at checkout.
func (f *FoodItem) ChangePrice(price kernel.Money) error {
	if err := kernel.CheckAmount("price", price); err != nil {
		return err
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	for _, v := range f.variations {
		if price.Add(v.Delta).IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("price",
				fmt.Errorf("variation %q would cost %s", v.Name, price.Add(v.Delta)))
		}
	}
	f.price = price
	return nil
}

// Edit replaces the name, description, category and variation list in one
// step. Nothing changes unless every value is acceptable. Carts pick the new
// values up at checkout; placed orders keep the snapshot they were taken with.
func (f *FoodItem) Edit(name, description, category string, variations []Variation) error {
	edited := f.Clone()
	edited.description = description
	edited.variations = nil

	errList := []error{edited.setName(name), edited.setCategory(category)}
	for _, v := range variations {
		errList = append(errList, edited.AddVariation(v.Name, v.Delta))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	f.name = edited.name
	f.description = edited.description
	f.category = edited.category
	f.variations = edited.variations
	return nil
}

// AddVariation offers a new option. The delta may be negative as long as the
// resulting unit price stays non-negative.
func (f *FoodItem) AddVariation(name string, delta kernel.Money) error {
	if name == "" {
		return errs.NewValueIsRequiredError("variation")
	}
	if _, ok := f.findVariation(name); ok {
		return errs.NewValueIsInvalidErrorWithCause("variation", fmt.Errorf("%q already exists", name))
	}
	if err := kernel.CheckAmount("variation delta", delta); err != nil {
		return err
	}
	if f.price.Add(delta).IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("variation",
			fmt.Errorf("%q would cost %s", name, f.price.Add(delta)))
	}

	f.variations = append(f.variations, Variation{Name: name, Delta: delta})
	return nil
}

// HasVariation reports whether name is offered; "" always is.
func (f *FoodItem) HasVariation(name string) bool {
	if name == "" {
		return true
	}
	_, ok := f.findVariation(name)
	return ok
}

// VariationDelta returns the price delta of name ("" costs nothing extra).
func (f *FoodItem) VariationDelta(name string) (kernel.Money, error) {
	if name == "" {
		return 0, nil
	}
	v, ok := f.findVariation(name)
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause("variation",
			fmt.Errorf("%w: %q on %s", ErrVariationNotFound, name, f.name))
	}
	return v.Delta, nil
}

// UnitPrice is the current price of one unit with the given variation.
func (f *FoodItem) UnitPrice(variation string) (kernel.Money, error) {
	delta, err := f.VariationDelta(variation)
	if err != nil {
		return 0, err
	}
	return f.price.Add(delta), nil
}

// AddRating records a score (and a non-empty comment) and recomputes the average.
func (f *FoodItem) AddRating(rating int, comment string) error {
	if err := kernel.ValidateRating(rating); err != nil {
		return err
	}

	f.ratings = append(f.ratings, rating)
	if comment != "" {
		f.comments = append(f.comments, comment)
	}
	f.average = kernel.Mean(f.ratings)
	return nil
}

// Clone returns a deep copy safe to hand to concurrent readers.
func (f *FoodItem) Clone() *FoodItem {
	c := *f
	c.variations = f.Variations()
	c.ratings = f.Ratings()
	c.comments = f.Comments()
	return &c
}

func (f *FoodItem) findVariation(name string) (Variation, bool) {
	for _, v := range f.variations {
		if v.Name == name {
			return v, true
		}
	}
	return Variation{}, false
}

func (f *FoodItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *FoodItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	f.name = name
	return nil
}

func (f *FoodItem) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	f.category = category
	return nil
}

func (f *FoodItem) setRestaurant(restaurant string) error {
	if restaurant == "" {
		return ErrRestaurantIsRequired
	}
	f.restaurant = restaurant
	return nil
}

func (f *FoodItem) setPrice(price kernel.Money) error {
	if err := kernel.CheckAmount("price", price); err != nil {
		return err
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	f.price = price
	return nil
}
