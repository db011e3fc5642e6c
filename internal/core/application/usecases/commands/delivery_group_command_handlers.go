package commands

import (
	"context"
	"errors"
	"time"

	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/services"
)

// ErrForeignGroup is returned when a storekeeper works with a group opened
// by somebody else.
var ErrForeignGroup = errors.New("delivery group belongs to another storekeeper")

type CreateDeliveryGroupCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateDeliveryGroupCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryGroupCommandHandler {
	return CreateDeliveryGroupCommandHandler{uowFactory: uowFactory}
}

func (h CreateDeliveryGroupCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	g, err := deliverygroup.NewGroup(cmd.GroupID(), actor.ID(), actor.WarehouseID(), cmd.VehicleInfo(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryGroupRepository().Add(ctx, g); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AddDeliveryToGroupCommandHandler loads one of the storekeeper's deliveries
// into their group and starts its dispatch.
type AddDeliveryToGroupCommandHandler struct {
	uowFactory DeliveryUoWFactory
	loader     services.GroupLoader
}

func NewAddDeliveryToGroupCommandHandler(uowFactory DeliveryUoWFactory) AddDeliveryToGroupCommandHandler {
	return AddDeliveryToGroupCommandHandler{uowFactory: uowFactory, loader: services.NewGroupLoader()}
}

func (h AddDeliveryToGroupCommandHandler) Handle(ctx context.Context, cmd GroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.DeliveryID().Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupRepo := uow.DeliveryGroupRepository()
	deliveryRepo := uow.DeliveryRepository()

	g, err := groupRepo.Get(ctx, cmd.GroupID())
	if err != nil {
		return err
	}
	if err = checkGroupOwner(cmd.Actor(), g); err != nil {
		return err
	}

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.loader.Load(g, d); err != nil {
		return err
	}

	if err = groupRepo.Update(ctx, g); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// CompleteDeliveryGroupCommandHandler closes a group. Deliveries inside keep
// their status and are completed one by one.
type CompleteDeliveryGroupCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCompleteDeliveryGroupCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryGroupCommandHandler {
	return CompleteDeliveryGroupCommandHandler{uowFactory: uowFactory}
}

func (h CompleteDeliveryGroupCommandHandler) Handle(ctx context.Context, cmd GroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryGroupRepository()
	g, err := repo.Get(ctx, cmd.GroupID())
	if err != nil {
		return err
	}
	if err = checkGroupOwner(cmd.Actor(), g); err != nil {
		return err
	}

	if err = g.Complete(time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, g); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func checkGroupOwner(actor Actor, g *deliverygroup.Group) error {
	if actor.IsAdmin() {
		return nil
	}
	if !g.Storekeeper().IsEqual(actor.ID()) {
		return ErrForeignGroup
	}
	return nil
}
