package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Item is a frozen order line. It copies everything the order needs to display
// and price itself from the catalog at checkout, so later catalog edits or
// removals never change a placed order.
type Item struct {
	foodID         kernel.UUID
	name           string
	restaurant     string
	unitPrice      kernel.Money
	variation      string
	variationDelta kernel.Money
	quantity       int
}

// NewItem creates an order line snapshot.
//
// Parameters:
//   - foodID: id of the catalog entry, kept only as a back reference
//   - name, restaurant: display and routing fields captured at checkout
//   - unitPrice: base price at checkout
//   - variation, variationDelta: chosen option ("" for none) and its delta
//   - quantity: number of units, at least 1
func NewItem(
	foodID kernel.UUID,
	name, restaurant string,
	unitPrice kernel.Money,
	variation string,
	variationDelta kernel.Money,
	quantity int,
) (Item, error) {
	var errList []error
	if err := foodID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if restaurant == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item restaurant"))
	}
	priceErr := errors.Join(kernel.CheckAmount("item price", unitPrice), kernel.CheckAmount("variation delta", variationDelta))
	if priceErr == nil && unitPrice.Add(variationDelta).IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%s is negative", unitPrice.Add(variationDelta)))
	}
	if priceErr != nil {
		errList = append(errList, priceErr)
	}
	if err := kernel.CheckQuantity(quantity); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		foodID:         foodID,
		name:           name,
		restaurant:     restaurant,
		unitPrice:      unitPrice,
		variation:      variation,
		variationDelta: variationDelta,
		quantity:       quantity,
	}, nil
}

func (i Item) FoodID() kernel.UUID { return i.foodID }
func (i Item) Name() string { return i.name }
func (i Item) Restaurant() string { return i.restaurant }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Variation() string { return i.variation }
func (i Item) VariationDelta() kernel.Money { return i.variationDelta }
func (i Item) Quantity() int { return i.quantity }

// LineTotal is (unit price + variation delta) × quantity. NewItem bounds
// prices and quantity, so the product always fits.
func (i Item) LineTotal() kernel.Money {
	total, _ := i.unitPrice.Add(i.variationDelta).Times(i.quantity)
	return total
}

// Label renders the line the way order details show it, e.g. "2x Coke" or
// "1x Classic Burger (Large)".
func (i Item) Label() string {
	if i.variation == "" {
		return fmt.Sprintf("%dx %s", i.quantity, i.name)
	}
	return fmt.Sprintf("%dx %s (%s)", i.quantity, i.name, i.variation)
}
