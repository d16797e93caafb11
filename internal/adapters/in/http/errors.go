package http

import (
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var statusByKind = map[string]int{
	"NotFound":                 http.StatusNotFound,
	"Unauthorized":             http.StatusForbidden,
	"NotACustomer":             http.StatusForbidden,
	"AlreadyClaimed":           http.StatusConflict,
	"InvalidTransition":        http.StatusConflict,
	"CancellationWindowClosed": http.StatusConflict,
	"ChatNotAvailable":         http.StatusConflict,
	"OrderNotDeliverable":      http.StatusConflict,
	"EmptyCart":                http.StatusConflict,
	"ItemUnavailable":          http.StatusConflict,
	"InvalidRating":            http.StatusUnprocessableEntity,
	"PaymentDeclined":          http.StatusUnprocessableEntity,
	"ValueIsRequired":          http.StatusUnprocessableEntity,
	"ValueIsOutOfRange":        http.StatusUnprocessableEntity,
	"ValueIsInvalid":           http.StatusUnprocessableEntity,
}

// StatusFor maps an error's kind to the HTTP status reported for it.
func StatusFor(err error) int {
	if status, ok := statusByKind[errs.Kind(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// fail writes err with its mapped status. Unclassified errors are reported as
// Internal without their message.
func fail(ctx echo.Context, err error) error {
	status := StatusFor(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Kind:    errs.Kind(err),
		Message: errs.Reason(err),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Kind:    "BadRequest",
		Message: message,
	})
}
