package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod int

const (
	UnknownPayment PaymentMethod = iota
	CashOnDelivery
	Online
)

func getPaymentStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPayment: "UNKNOWN",
		CashOnDelivery: "CASH_ON_DELIVERY",
		Online:         "ONLINE",
	}
}

func (p PaymentMethod) String() string {
	if str, ok := getPaymentStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

func (p PaymentMethod) Validate() error {
	if p != CashOnDelivery && p != Online {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// ParsePaymentMethod accepts the persisted names; "" defaults to CashOnDelivery.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "", "CASH_ON_DELIVERY":
		return CashOnDelivery, nil
	case "ONLINE":
		return Online, nil
	default:
		return UnknownPayment, errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%q is not a valid payment method", s))
	}
}
