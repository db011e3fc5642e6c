package commands_test

import (
	"testing"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTakeDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("assigns a pending delivery to the storekeeper", func(t *testing.T) {
		ctx := t.Context()
		warehouseID := kernel.NewUUID()
		actor := newActor(t, employee.Storekeeper, warehouseID)
		d := newDelivery(t, warehouseID)

		uow := newMockUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			uow.Deliveries.On("Update", ctx, d).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewDeliveryCommand(actor, d.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewTakeDeliveryCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd))
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.True(t, d.IsAssignedTo(actor.ID()))
		uow.AssertAll(t)
	})

	t.Run("refuses deliveries already taken", func(t *testing.T) {
		ctx := t.Context()
		warehouseID := kernel.NewUUID()
		d := newDelivery(t, warehouseID)
		require.NoError(t, d.Assign(kernel.NewUUID()))

		uow := newMockUoW()
		uow.expectRollback()
		uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()

		cmd, _ := commands.NewDeliveryCommand(newActor(t, employee.Storekeeper, warehouseID), d.ID())
		err := commands.NewTakeDeliveryCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
		uow.AssertAll(t)
	})

	t.Run("refuses deliveries of other warehouses", func(t *testing.T) {
		ctx := t.Context()
		d := newDelivery(t, kernel.NewUUID())

		uow := newMockUoW()
		uow.expectRollback()
		uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()

		cmd, _ := commands.NewDeliveryCommand(newActor(t, employee.Storekeeper, kernel.NewUUID()), d.ID())
		err := commands.NewTakeDeliveryCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOtherWarehouse)
		assert.Equal(t, delivery.Pending, d.Status())
	})
}

func TestCompleteDeliveryCommandHandler_Handle(t *testing.T) {
	warehouseID := kernel.NewUUID()

	t.Run("the assignee completes", func(t *testing.T) {
		ctx := t.Context()
		actor := newActor(t, employee.Storekeeper, warehouseID)
		d := newDelivery(t, warehouseID)
		require.NoError(t, d.Assign(actor.ID()))

		uow := newMockUoW()
		uow.expectCommit()
		uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
		uow.Deliveries.On("Update", ctx, d).Return(nil).Once()

		cmd, _ := commands.NewDeliveryCommand(actor, d.ID())
		require.NoError(t, commands.NewCompleteDeliveryCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd))

		assert.Equal(t, delivery.Delivered, d.Status())
		assert.NotNil(t, d.DeliveredAt())
		uow.AssertAll(t)
	})

	t.Run("other storekeepers cannot complete", func(t *testing.T) {
		ctx := t.Context()
		d := newDelivery(t, warehouseID)
		require.NoError(t, d.Assign(kernel.NewUUID()))

		uow := newMockUoW()
		uow.expectRollback()
		uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()

		cmd, _ := commands.NewDeliveryCommand(newActor(t, employee.Storekeeper, warehouseID), d.ID())
		err := commands.NewCompleteDeliveryCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, services.ErrForeignDelivery)
		assert.Equal(t, delivery.Assigned, d.Status())
	})
}

func TestCancelDeliveryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	d := newDelivery(t, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectCommit()
	uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
	uow.Deliveries.On("Update", ctx, d).Return(nil).Once()

	cmd, _ := commands.NewDeliveryCommand(newActor(t, employee.Admin, kernel.NewUUID()), d.ID())
	require.NoError(t, commands.NewCancelDeliveryCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd))

	assert.Equal(t, delivery.Cancelled, d.Status())
	uow.AssertAll(t)
}

func TestCreateDeliveryGroupCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := newActor(t, employee.Storekeeper, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectCommit()
	uow.Groups.On("Add", ctx, mock.MatchedBy(func(g *deliverygroup.Group) bool {
		return g.Storekeeper().IsEqual(actor.ID()) &&
			g.WarehouseID().IsEqual(actor.WarehouseID()) &&
			g.Status() == deliverygroup.Preparing
	})).Return(nil).Once()

	cmd, err := commands.NewCreateDeliveryGroupCommand(actor, kernel.NewUUID(), "Gazelle A123BC")
	require.NoError(t, err)

	require.NoError(t, commands.NewCreateDeliveryGroupCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd))
	uow.AssertAll(t)

	_, err = commands.NewCreateDeliveryGroupCommand(actor, kernel.NewUUID(), " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddDeliveryToGroupCommandHandler_Handle(t *testing.T) {
	warehouseID := kernel.NewUUID()

	setup := func(t *testing.T) (commands.Actor, *deliverygroup.Group, *delivery.Delivery) {
		actor := newActor(t, employee.Storekeeper, warehouseID)
		g, err := deliverygroup.NewGroup(kernel.NewUUID(), actor.ID(), warehouseID, "Van", time.Now())
		require.NoError(t, err)
		d := newDelivery(t, warehouseID)
		require.NoError(t, d.Assign(actor.ID()))
		return actor, g, d
	}

	t.Run("loads the delivery and saves both aggregates", func(t *testing.T) {
		ctx := t.Context()
		actor, g, d := setup(t)

		uow := newMockUoW()
		uow.expectCommit()
		uow.Groups.On("Get", ctx, g.ID()).Return(g, nil).Once()
		uow.Deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
		uow.Groups.On("Update", ctx, g).Return(nil).Once()
		uow.Deliveries.On("Update", ctx, d).Return(nil).Once()

		cmd, err := commands.NewAddDeliveryToGroupCommand(actor, g.ID(), d.ID())
		require.NoError(t, err)

		require.NoError(t, commands.NewAddDeliveryToGroupCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd))
		assert.True(t, g.Contains(d.ID()))
		assert.Equal(t, delivery.InProgress, d.Status())
		uow.AssertAll(t)
	})

	t.Run("refuses groups of other storekeepers", func(t *testing.T) {
		ctx := t.Context()
		_, g, d := setup(t)

		uow := newMockUoW()
		uow.expectRollback()
		uow.Groups.On("Get", ctx, g.ID()).Return(g, nil).Once()

		cmd, _ := commands.NewAddDeliveryToGroupCommand(newActor(t, employee.Storekeeper, warehouseID), g.ID(), d.ID())
		err := commands.NewAddDeliveryToGroupCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrForeignGroup)
		uow.AssertAll(t)
	})

	t.Run("surfaces loader rules", func(t *testing.T) {
		ctx := t.Context()
		actor, g, _ := setup(t)
		foreign := newDelivery(t, warehouseID)
		require.NoError(t, foreign.Assign(kernel.NewUUID()))

		uow := newMockUoW()
		uow.expectRollback()
		uow.Groups.On("Get", ctx, g.ID()).Return(g, nil).Once()
		uow.Deliveries.On("Get", ctx, foreign.ID()).Return(foreign, nil).Once()

		cmd, _ := commands.NewAddDeliveryToGroupCommand(actor, g.ID(), foreign.ID())
		err := commands.NewAddDeliveryToGroupCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, services.ErrForeignDelivery)
		uow.Groups.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertAll(t)
	})
}

func TestCompleteDeliveryGroupCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	actor := newActor(t, employee.Storekeeper, warehouseID)
	g, err := deliverygroup.NewGroup(kernel.NewUUID(), actor.ID(), warehouseID, "Van", time.Now())
	require.NoError(t, err)
	inside := newDelivery(t, warehouseID)
	require.NoError(t, inside.Assign(actor.ID()))
	require.NoError(t, services.NewGroupLoader().Load(g, inside))

	uow := newMockUoW()
	uow.expectCommit()
	uow.Groups.On("Get", ctx, g.ID()).Return(g, nil).Once()
	uow.Groups.On("Update", ctx, g).Return(nil).Once()

	cmd, _ := commands.NewGroupCommand(actor, g.ID())
	require.NoError(t, commands.NewCompleteDeliveryGroupCommandHandler(deliveryFactory{uow}).Handle(ctx, cmd))

	assert.Equal(t, deliverygroup.Completed, g.Status())
	assert.Equal(t, delivery.InProgress, inside.Status(), "completing a group leaves its deliveries alone")
	uow.Deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertAll(t)
}
