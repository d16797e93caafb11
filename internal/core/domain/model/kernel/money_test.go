package kernel_test

import (
	"math"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Run("should parse valid amounts", func(t *testing.T) {
		testCases := []struct {
			in    string
			cents int64
		}{
			{"6.99", 699},
			{"1.50", 150},
			{"1.5", 150},
			{"12", 1200},
			{"0", 0},
			{"-0.50", -50},
			{"+2.05", 205},
			{" 3.10 ", 310},
		}

		for _, tc := range testCases {
			t.Run(tc.in, func(t *testing.T) {
				m, err := kernel.ParseMoney(tc.in)

				require.NoError(t, err)
				assert.Equal(t, tc.cents, m.Cents())
			})
		}
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		for _, in := range []string{"abc", "1.999", "1.", ".5", "-", "1,50"} {
			_, err := kernel.ParseMoney(in)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.ParseMoney("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject amounts beyond the bound", func(t *testing.T) {
		for _, in := range []string{"99999999999999999", "-99999999999999999", "1000000000000.01", "18446744073709551616"} {
			_, err := kernel.ParseMoney(in)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, in)
		}
	})

	t.Run("should accept the bound itself", func(t *testing.T) {
		m, err := kernel.ParseMoney("1000000000000.00")

		require.NoError(t, err)
		assert.Equal(t, kernel.MaxMoney, m)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	burger := kernel.MustParseMoney("6.99")
	coke := kernel.MustParseMoney("1.50")

	line, err := coke.Times(2)
	require.NoError(t, err)
	total, err := burger.Plus(line)
	require.NoError(t, err)

	assert.Equal(t, "9.99", total.String())
	assert.Equal(t, kernel.Cents(999), total)
	assert.Equal(t, kernel.Cents(849), burger.Add(coke))
}

func TestMoney_Overflow(t *testing.T) {
	t.Run("Plus", func(t *testing.T) {
		_, err := kernel.Cents(math.MaxInt64).Plus(1)
		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.Cents(math.MinInt64).Plus(-1)
		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
	})

	t.Run("Times", func(t *testing.T) {
		_, err := kernel.Cents(math.MaxInt64 / 2).Times(3)
		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)

		_, err = kernel.Cents(math.MinInt64).Times(-1)
		require.ErrorIs(t, err, kernel.ErrMoneyOverflow)

		m, err := kernel.MaxMoney.Times(kernel.MaxQuantity)
		require.NoError(t, err)
		assert.Equal(t, int64(kernel.MaxMoney)*kernel.MaxQuantity, m.Cents())
	})
}

func TestCheckAmountAndQuantity(t *testing.T) {
	require.NoError(t, kernel.CheckAmount("price", kernel.MaxMoney))
	require.NoError(t, kernel.CheckAmount("delta", -kernel.MaxMoney))
	require.ErrorIs(t, kernel.CheckAmount("price", kernel.MaxMoney+1), errs.ErrValueIsOutOfRange)

	require.NoError(t, kernel.CheckQuantity(1))
	require.NoError(t, kernel.CheckQuantity(kernel.MaxQuantity))
	require.ErrorIs(t, kernel.CheckQuantity(0), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, kernel.CheckQuantity(kernel.MaxQuantity+1), errs.ErrValueIsOutOfRange)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "0.00", kernel.Money(0).String())
	assert.Equal(t, "0.05", kernel.Cents(5).String())
	assert.Equal(t, "-0.50", kernel.Cents(-50).String())
	assert.Equal(t, "120.00", kernel.Cents(12000).String())
	assert.True(t, kernel.Cents(-1).IsNegative())
}

func TestMustParseMoney_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustParseMoney("x") })
}
