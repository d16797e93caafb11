package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrResolveShortIDQueryIsNotConstructed = errors.New(
	"ResolveShortIDQuery must be created via NewResolveShortIDQuery constructor",
)

// ResolveShortIDQuery maps a display id ("9b2f6c", optionally "[9b2f6c]")
// back to the full order id.
type ResolveShortIDQuery struct {
	short string

	guard guard.ConstructorGuard
}

func NewResolveShortIDQuery(short string) (ResolveShortIDQuery, error) {
	short = strings.ToLower(strings.Trim(strings.TrimSpace(short), "[]"))
	if short == "" {
		return ResolveShortIDQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return ResolveShortIDQuery{short: short, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveShortIDQuery) Validate() error {
	return q.guard.Validate(ErrResolveShortIDQueryIsNotConstructed)
}

func (q ResolveShortIDQuery) Short() string {
	return q.short
}

type ResolveShortIDQueryHandler struct {
	sources Sources
}

func NewResolveShortIDQueryHandler(sources Sources) ResolveShortIDQueryHandler {
	return ResolveShortIDQueryHandler{sources: sources}
}

// Handle fails with NotFound when no order matches and ValueIsInvalid when the
// prefix is ambiguous.
func (h ResolveShortIDQueryHandler) Handle(ctx context.Context, query ResolveShortIDQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orders, err := h.sources.Orders.List(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	var matches []kernel.UUID
	for _, o := range orders {
		if strings.HasPrefix(o.ID().String(), query.Short()) {
			matches = append(matches, o.ID())
		}
	}

	switch len(matches) {
	case 0:
		return kernel.UUID{}, errs.NewObjectNotFoundError("order", query.Short())
	case 1:
		return matches[0], nil
	default:
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%q matches %d orders", query.Short(), len(matches)))
	}
}
