package commands_test

import (
	"testing"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, phone string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Olga", phone, "", "Mira 5", time.Now())
	require.NoError(t, err)
	return c
}

var olga = commands.CustomerContacts{FullName: "Olga Ivanova", Phone: "+79001112233", Address: "Mira 5"}

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("registers a new phone", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		uow.expectCommit()
		uow.Customers.On("GetByPhone", ctx, olga.Phone).Return(nil, errs.NewObjectNotFoundError("phone", olga.Phone)).Once()
		uow.Customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()

		cmd, err := commands.NewSaveCustomerCommand(kernel.NewUUID(), olga)
		require.NoError(t, err)

		require.NoError(t, commands.NewCreateCustomerCommandHandler(customerFactory{uow}).Handle(ctx, cmd))
		uow.AssertAll(t)
	})

	t.Run("refuses a taken phone", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		uow.expectRollback()
		uow.Customers.On("GetByPhone", ctx, olga.Phone).Return(newCustomer(t, olga.Phone), nil).Once()

		cmd, _ := commands.NewSaveCustomerCommand(kernel.NewUUID(), olga)
		err := commands.NewCreateCustomerCommandHandler(customerFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		uow.AssertAll(t)
	})
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t, olga.Phone)

	uow := newMockUoW()
	uow.expectCommit()
	uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.Customers.On("GetByPhone", ctx, olga.Phone).Return(c, nil).Once()
	uow.Customers.On("Update", ctx, c).Return(nil).Once()

	cmd, _ := commands.NewSaveCustomerCommand(c.ID(), olga)
	require.NoError(t, commands.NewUpdateCustomerCommandHandler(customerFactory{uow}).Handle(ctx, cmd))

	assert.Equal(t, "Olga Ivanova", c.FullName())
	uow.AssertAll(t)
}

func TestDeleteCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("deletes a customer without deliveries", func(t *testing.T) {
		ctx := t.Context()
		c := newCustomer(t, olga.Phone)

		uow := newMockUoW()
		uow.expectCommit()
		uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
		uow.Deliveries.On("ExistsForCustomer", ctx, c.ID()).Return(false, nil).Once()
		uow.Customers.On("Delete", ctx, c.ID()).Return(nil).Once()

		cmd, _ := commands.NewDeleteCustomerCommand(c.ID())
		require.NoError(t, commands.NewDeleteCustomerCommandHandler(customerFactory{uow}).Handle(ctx, cmd))
		uow.AssertAll(t)
	})

	t.Run("keeps customers with deliveries", func(t *testing.T) {
		ctx := t.Context()
		c := newCustomer(t, olga.Phone)

		uow := newMockUoW()
		uow.expectRollback()
		uow.Customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
		uow.Deliveries.On("ExistsForCustomer", ctx, c.ID()).Return(true, nil).Once()

		cmd, _ := commands.NewDeleteCustomerCommand(c.ID())
		err := commands.NewDeleteCustomerCommandHandler(customerFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrCustomerHasDeliveries)
		uow.AssertAll(t)
	})
}
