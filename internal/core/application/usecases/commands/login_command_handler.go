package commands

import (
	"context"
	"errors"
	"time"

	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"
)

// ErrInvalidCredentials hides whether the login or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid login or password")

type LoginResult struct {
	Token       string
	ExpiresAt   time.Time
	EmployeeID  kernel.UUID
	FullName    string
	Role        employee.Role
	WarehouseID kernel.UUID
}

// LoginCommandHandler checks credentials and issues a session token.
type LoginCommandHandler struct {
	uowFactory EmployeeUoWFactory
	issuer     ports.TokenIssuer
}

func NewLoginCommandHandler(uowFactory EmployeeUoWFactory, issuer ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, issuer: issuer}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	e, err := uow.EmployeeRepository().GetByLogin(ctx, cmd.Login())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !e.CheckPassword(cmd.Password()) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := h.issuer.Issue(e)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:       token,
		ExpiresAt:   expiresAt,
		EmployeeID:  e.ID(),
		FullName:    e.FullName(),
		Role:        e.Role(),
		WarehouseID: e.WarehouseID(),
	}, nil
}
