package commands

import (
	"context"

	"retail/internal/core/domain/model/warehouse"
	"retail/internal/pkg/errs"
)

var ErrWarehouseHasEmployees = errs.NewOperationNotAllowedError("warehouse has registered employees")

type CreateWarehouseCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewCreateWarehouseCommandHandler(uowFactory StaffUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{uowFactory: uowFactory}
}

func (h CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd SaveWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	w, err := warehouse.NewWarehouse(cmd.ID(), cmd.Name(), cmd.Address())
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

	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateWarehouseCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewUpdateWarehouseCommandHandler(uowFactory StaffUoWFactory) UpdateWarehouseCommandHandler {
	return UpdateWarehouseCommandHandler{uowFactory: uowFactory}
}

func (h UpdateWarehouseCommandHandler) Handle(ctx context.Context, cmd SaveWarehouseCommand) error {
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

	repo := uow.WarehouseRepository()
	w, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = w.Rename(cmd.Name(), cmd.Address()); err != nil {
		return err
	}

	if err = repo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteWarehouseCommandHandler removes a warehouse nobody works in any more.
// Its stock counters go with it.
type DeleteWarehouseCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewDeleteWarehouseCommandHandler(uowFactory StaffUoWFactory) DeleteWarehouseCommandHandler {
	return DeleteWarehouseCommandHandler{uowFactory: uowFactory}
}

func (h DeleteWarehouseCommandHandler) Handle(ctx context.Context, cmd DeleteWarehouseCommand) error {
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

	repo := uow.WarehouseRepository()
	if _, err := repo.Get(ctx, cmd.ID()); err != nil {
		return err
	}

	staff, err := uow.EmployeeRepository().CountInWarehouse(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if staff > 0 {
		return ErrWarehouseHasEmployees
	}

	if err = repo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
