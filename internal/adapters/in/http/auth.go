package http

import (
	"net/http"
	"strings"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorKey = "retail.actor"

// ActorResolver verifies a bearer token and returns the signed-in employee.
type ActorResolver func(token string) (commands.Actor, error)

var (
	errMissingToken = echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	errBadToken     = echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
)

// Authenticate requires a valid bearer token on every request the skipper
// lets through and stores the actor in the context.
func Authenticate(resolve ActorResolver, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if skipper(ctx) {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || raw == "" {
				return errMissingToken
			}

			actor, err := resolve(raw)
			if err != nil {
				return errBadToken
			}
			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

// publicPaths skips authentication for login and everything outside the
// API prefix. The websocket route checks its own query token.
func publicPaths(ctx echo.Context) bool {
	path := ctx.Path()
	return path == "/api/v1/auth/login" || !strings.HasPrefix(path, "/api/")
}

// authorize returns the actor if its role grants p.
func authorize(ctx echo.Context, p employee.Permission) (commands.Actor, error) {
	actor, ok := ctx.Get(actorKey).(commands.Actor)
	if !ok {
		return commands.Actor{}, errMissingToken
	}
	if !actor.Role().Can(p) {
		return commands.Actor{}, echo.NewHTTPError(http.StatusForbidden, "the "+actor.Role().String()+" role cannot do this")
	}
	return actor, nil
}

// scopeWarehouse keeps admins' filter as requested and pins everyone else to
// their own warehouse.
func scopeWarehouse(actor commands.Actor, requested *kernel.UUID) *kernel.UUID {
	if actor.IsAdmin() {
		return requested
	}
	own := actor.WarehouseID()
	return &own
}
