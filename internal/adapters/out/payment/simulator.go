package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var _ ports.PaymentGateway = &Simulator{}

var ErrAlreadyRefunded = errors.New("charge already refunded")

// Simulator approves online payments instantly. Charges above the configured
// limit are declined, which lets the decline path be exercised end to end.
type Simulator struct {
	limit kernel.Money
	seq   atomic.Int64

	mu       sync.Mutex
	charges  map[string]kernel.Money
	refunded map[string]bool
}

// NewSimulator creates a gateway declining charges above limit; a zero limit
// approves everything.
func NewSimulator(limit kernel.Money) *Simulator {
	return &Simulator{
		limit:    limit,
		charges:  make(map[string]kernel.Money),
		refunded: make(map[string]bool),
	}
}

func (s *Simulator) Charge(ctx context.Context, orderID kernel.UUID, customer string, amount kernel.Money) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if amount.IsNegative() {
		return "", errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	if s.limit > 0 && amount > s.limit {
		return "", fmt.Errorf("%w: %s exceeds the limit of %s for %s", errs.ErrPaymentDeclined, amount, s.limit, customer)
	}

	reference := fmt.Sprintf("SIM-%s-%04d", kernel.ShortID(orderID, nil), s.seq.Add(1))
	s.mu.Lock()
	s.charges[reference] = amount
	s.mu.Unlock()
	return reference, nil
}

// Refund reverses a charge made by this simulator. Unknown references are
// not found; a second refund of the same charge fails with ErrAlreadyRefunded.
func (s *Simulator) Refund(ctx context.Context, reference string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charges[reference]; !ok {
		return errs.NewObjectNotFoundError("payment reference", reference)
	}
	if s.refunded[reference] {
		return fmt.Errorf("%w: %s", ErrAlreadyRefunded, reference)
	}
	s.refunded[reference] = true
	return nil
}

// Refunded reports whether the charge behind reference was reversed.
func (s *Simulator) Refunded(reference string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refunded[reference]
}
