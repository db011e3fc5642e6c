package commands

import (
	"context"
	"time"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/services"
)

// TakeDeliveryCommandHandler lets a storekeeper claim a pending delivery of
// their warehouse.
type TakeDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewTakeDeliveryCommandHandler(uowFactory DeliveryUoWFactory) TakeDeliveryCommandHandler {
	return TakeDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h TakeDeliveryCommandHandler) Handle(ctx context.Context, cmd DeliveryCommand) error {
	return changeDelivery(ctx, h.uowFactory, cmd, func(d *delivery.Delivery) error {
		return d.Assign(cmd.Actor().ID())
	})
}

// CompleteDeliveryCommandHandler records the hand-over. Only the assigned
// storekeeper or an admin may do it.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeliveryCommand) error {
	return changeDelivery(ctx, h.uowFactory, cmd, func(d *delivery.Delivery) error {
		if !cmd.Actor().IsAdmin() && !d.IsAssignedTo(cmd.Actor().ID()) {
			return services.ErrForeignDelivery
		}
		return d.Complete(time.Now())
	})
}

type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd DeliveryCommand) error {
	return changeDelivery(ctx, h.uowFactory, cmd, func(d *delivery.Delivery) error {
		return d.Cancel()
	})
}

func changeDelivery(
	ctx context.Context,
	uowFactory DeliveryUoWFactory,
	cmd DeliveryCommand,
	change func(d *delivery.Delivery) error,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if err = cmd.Actor().checkAccess(d.WarehouseID()); err != nil {
		return err
	}

	if err = change(d); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
