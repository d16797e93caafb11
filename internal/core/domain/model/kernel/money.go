package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Money is an exact currency amount in minor units (cents). Prices, variation
// deltas and totals all use it so that sums never accumulate floating point
// error. The zero value is a valid amount of 0.00.
type Money int64

const (
	// MaxMoney bounds every price and delta accepted from outside. Line totals
	// of up to MaxQuantity units then stay far below the int64 limit.
	MaxMoney Money = 1_000_000_000_000_00

	// MaxQuantity bounds the units of one food on a cart line or order item.
	MaxQuantity = 999
)

var ErrMoneyOverflow = errors.New("amount overflows")

// Cents builds Money from minor units.
func Cents(cents int64) Money {
	return Money(cents)
}

// ParseMoney parses a decimal amount with at most two fractional digits,
// e.g. "6.99", "-0.50", "12", "1.5".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewValueIsRequiredError("amount")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal with two digits precision", s))
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseUint(whole, 10, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && units > uint64(MaxMoney/100)) {
		return 0, errs.NewValueIsOutOfRangeError("amount", s, -MaxMoney, MaxMoney)
	}
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	cents, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	m := Money(int64(units)*100 + int64(cents))
	if m > MaxMoney {
		return 0, errs.NewValueIsOutOfRangeError("amount", s, -MaxMoney, MaxMoney)
	}
	if negative {
		m = -m
	}
	return m, nil
}

// CheckAmount reports amounts outside [-MaxMoney, MaxMoney] as out of range.
func CheckAmount(paramName string, m Money) error {
	if m > MaxMoney || m < -MaxMoney {
		return errs.NewValueIsOutOfRangeError(paramName, m, -MaxMoney, MaxMoney)
	}
	return nil
}

// CheckQuantity reports quantities outside [1, MaxQuantity] as out of range.
func CheckQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

// MustParseMoney is ParseMoney for literals known to be valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other. Operands are bounded by MaxMoney, so a single
// price plus delta cannot overflow; sums of many lines use Plus.
func (m Money) Add(other Money) Money {
	return m + other
}

// Plus returns m + other. A sum that does not fit is out of range and
// matches ErrMoneyOverflow.
func (m Money) Plus(other Money) (Money, error) {
	if (other > 0 && m > math.MaxInt64-other) || (other < 0 && m < math.MinInt64-other) {
		return 0, overflow(fmt.Sprintf("%s + %s", m, other))
	}
	return m + other, nil
}

// Times returns m multiplied by qty, failing like Plus on overflow.
func (m Money) Times(qty int) (Money, error) {
	if m == 0 || qty == 0 {
		return 0, nil
	}
	q := int64(qty)
	p := int64(m) * q
	if p/q != int64(m) || (q == -1 && m == math.MinInt64) {
		return 0, overflow(fmt.Sprintf("%s x %d", m, qty))
	}
	return Money(p), nil
}

func overflow(expr string) error {
	return errs.NewValueIsOutOfRangeErrorWithCause("amount", expr,
		Money(math.MinInt64), Money(math.MaxInt64), ErrMoneyOverflow)
}

// IsNegative reports whether m is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount with two decimals, e.g. "9.99" or "-0.50".
func (m Money) String() string {
	sign := ""
	v := uint64(m)
	if m < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
