package commands_test

import (
	"errors"
	"testing"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/employee"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(e *employee.Employee) (string, time.Time, error) {
	args := m.Called(e)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	e := newEmployee(t, "cashier", "cashier123", employee.Cashier)
	expires := time.Now().Add(time.Hour)

	uow := newMockUoW()
	issuer := new(MockTokenIssuer)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Employees.On("GetByLogin", ctx, "cashier").Return(e, nil).Once(),
		issuer.On("Issue", e).Return("signed", expires, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewLoginCommand(" cashier ", "cashier123")
	require.NoError(t, err)

	res, err := commands.NewLoginCommandHandler(employeeFactory{uow}, issuer).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "signed", res.Token)
	assert.Equal(t, expires, res.ExpiresAt)
	assert.Equal(t, e.ID(), res.EmployeeID)
	assert.Equal(t, employee.Cashier, res.Role)
	uow.AssertAll(t)
	issuer.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	e := newEmployee(t, "cashier", "cashier123", employee.Cashier)

	uow := newMockUoW()
	uow.expectRollback()
	uow.Employees.On("GetByLogin", ctx, "cashier").Return(e, nil).Once()

	cmd, _ := commands.NewLoginCommand("cashier", "wrong-password")
	_, err := commands.NewLoginCommandHandler(employeeFactory{uow}, new(MockTokenIssuer)).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	uow.AssertAll(t)
}

func TestLoginCommandHandler_Handle_UnknownLogin(t *testing.T) {
	ctx := t.Context()

	uow := newMockUoW()
	uow.expectRollback()
	uow.Employees.On("GetByLogin", ctx, "ghost").Return(nil, errs.NewObjectNotFoundError("login", "ghost")).Once()

	cmd, _ := commands.NewLoginCommand("ghost", "whatever")
	_, err := commands.NewLoginCommandHandler(employeeFactory{uow}, new(MockTokenIssuer)).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	boom := errors.New("connection reset")

	uow := newMockUoW()
	uow.expectRollback()
	uow.Employees.On("GetByLogin", ctx, "cashier").Return(nil, boom).Once()

	cmd, _ := commands.NewLoginCommand("cashier", "cashier123")
	_, err := commands.NewLoginCommandHandler(employeeFactory{uow}, new(MockTokenIssuer)).Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_ValidationError(t *testing.T) {
	_, err := commands.NewLoginCommandHandler(employeeFactory{newMockUoW()}, nil).
		Handle(t.Context(), commands.LoginCommand{})

	require.ErrorIs(t, err, commands.ErrLoginCommandIsNotConstructed)
}

func TestChangePasswordCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	e := newEmployee(t, "admin", "admin123", employee.Admin)

	uow := newMockUoW()
	uow.expectCommit()
	uow.Employees.On("GetByLogin", ctx, "admin").Return(e, nil).Once()
	uow.Employees.On("Update", ctx, e).Return(nil).Once()

	cmd, err := commands.NewChangePasswordCommand("admin", "n3w-secret")
	require.NoError(t, err)

	require.NoError(t, commands.NewChangePasswordCommandHandler(employeeFactory{uow}).Handle(ctx, cmd))
	assert.True(t, e.CheckPassword("n3w-secret"))
	uow.AssertAll(t)
}

func TestChangePasswordCommandHandler_Handle_TooShort(t *testing.T) {
	ctx := t.Context()
	e := newEmployee(t, "admin", "admin123", employee.Admin)

	uow := newMockUoW()
	uow.expectRollback()
	uow.Employees.On("GetByLogin", ctx, "admin").Return(e, nil).Once()

	cmd, _ := commands.NewChangePasswordCommand("admin", "123")

	require.ErrorIs(t, commands.NewChangePasswordCommandHandler(employeeFactory{uow}).Handle(ctx, cmd), errs.ErrValueIsInvalid)
	assert.True(t, e.CheckPassword("admin123"))
	uow.AssertAll(t)
}
