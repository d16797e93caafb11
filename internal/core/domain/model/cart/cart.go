package cart

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner")
	// ErrCartIsNotConstructed is returned when using a zero-value Cart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Line is one (food, variation) selection with its quantity.
type Line struct {
	FoodID    kernel.UUID
	Variation string
	Quantity  int
}

// PriceFunc resolves the current unit price (base + variation delta) of a line.
type PriceFunc func(line Line) (kernel.Money, error)

// Cart is the per-customer selection that checkout turns into an order.
// Lines keep insertion order and never hold a quantity below 1.
type Cart struct {
	owner string
	lines []Line

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for the given customer username.
func NewCart(owner string) (*Cart, error) {
	if owner == "" {
		return nil, ErrOwnerIsRequired
	}
	return &Cart{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

// RestoreCart rebuilds a cart from persisted lines, merging duplicates.
func RestoreCart(owner string, lines []Line) (*Cart, error) {
	c, err := NewCart(owner)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err = c.Add(l.FoodID, l.Variation, l.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Validate ensures the cart was created through its constructors.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) Owner() string {
	return c.owner
}

// Lines returns a copy of the selections in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Quantity returns the quantity of (foodID, variation), 0 when absent.
func (c *Cart) Quantity(foodID kernel.UUID, variation string) int {
	if i := c.indexOf(foodID, variation); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Add increases the quantity of (foodID, variation) by qty, creating the line
// when needed. A line never holds more than kernel.MaxQuantity units.
// Catalog availability is checked by the caller.
func (c *Cart) Add(foodID kernel.UUID, variation string, qty int) error {
	if err := foodID.Validate(); err != nil {
		return err
	}
	if err := kernel.CheckQuantity(qty); err != nil {
		return err
	}

	if i := c.indexOf(foodID, variation); i >= 0 {
		if err := kernel.CheckQuantity(c.lines[i].Quantity + qty); err != nil {
			return err
		}
		c.lines[i].Quantity += qty
		return nil
	}
	c.lines = append(c.lines, Line{FoodID: foodID, Variation: variation, Quantity: qty})
	return nil
}

// Remove decreases the quantity of (foodID, variation) by qty. A line reaching
// zero is dropped rather than stored.
func (c *Cart) Remove(foodID kernel.UUID, variation string, qty int) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, "unbounded")
	}

	i := c.indexOf(foodID, variation)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", fmt.Sprintf("%s/%s", foodID, variation))
	}

	c.lines[i].Quantity -= qty
	if c.lines[i].Quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
	return nil
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total sums unit price × quantity over all lines using current prices, so
// it is never cached and always reflects the catalog at call time.
func (c *Cart) Total(price PriceFunc) (kernel.Money, error) {
	var total kernel.Money
	for _, l := range c.lines {
		unit, err := price(l)
		if err != nil {
			return 0, err
		}
		line, err := unit.Times(l.Quantity)
		if err != nil {
			return 0, err
		}
		if total, err = total.Plus(line); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (c *Cart) Clone() *Cart {
	cp := *c
	cp.lines = c.Lines()
	return &cp
}

func (c *Cart) indexOf(foodID kernel.UUID, variation string) int {
	for i, l := range c.lines {
		if l.FoodID.IsEqual(foodID) && l.Variation == variation {
			return i
		}
	}
	return -1
}
