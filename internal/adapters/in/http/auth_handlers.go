package http

import (
	"net/http"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/auth/login - exchanges credentials for a token.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(body.Login, body.Password)
	if err != nil {
		return fail(ctx, err)
	}

	session, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Token:       session.Token,
		ExpiresAt:   session.ExpiresAt,
		EmployeeId:  session.EmployeeID.Bytes(),
		FullName:    session.FullName,
		Role:        servers.Role(session.Role.String()),
		WarehouseId: session.WarehouseID.Bytes(),
	})
}
