package http

import (
	"errors"
	"net/http"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/sale"
	"retail/internal/core/domain/services"
	"retail/internal/generated/servers"
	"retail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to its HTTP status. Checks run from
// the most specific error to the broadest sentinel.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrOtherWarehouse),
		errors.Is(err, commands.ErrForeignGroup),
		errors.Is(err, services.ErrForeignDelivery):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrOperationNotAllowed),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, deliverygroup.ErrGroupIsClosed),
		errors.Is(err, deliverygroup.ErrDeliveryAlreadyLoaded),
		errors.Is(err, sale.ErrSaleAlreadyCancelled),
		errors.Is(err, services.ErrWarehouseMismatch):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal failures are logged and hidden.
func fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Errorf("%s %s: %v", ctx.Request().Method, ctx.Path(), err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders echo's own errors (routing, binding, middleware) in
// the API's error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = fail(ctx, err)
		return
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		message = m
	}
	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(he.Code)
		return
	}
	_ = ctx.JSON(he.Code, servers.Error{Code: he.Code, Message: message})
}
