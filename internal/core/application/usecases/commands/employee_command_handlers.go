package commands

import (
	"context"
	"errors"

	"retail/internal/core/domain/model/employee"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"
)

var (
	ErrRootAdminIsProtected = errs.NewOperationNotAllowedError("the root administrator cannot be changed")
	ErrCannotDeleteYourself = errs.NewOperationNotAllowedError("employees cannot delete their own account")
	ErrEmployeeHasSales     = errs.NewOperationNotAllowedError("employee has registered sales")
)

type RegisterEmployeeCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewRegisterEmployeeCommandHandler(uowFactory StaffUoWFactory) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle creates the account after checking that the warehouse exists and
// the login is free.
func (h RegisterEmployeeCommandHandler) Handle(ctx context.Context, cmd SaveEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Profile()
	e, err := employee.NewEmployee(cmd.ID(), p.Login, p.Password, p.FullName, p.Role, p.WarehouseID, p.Phone, p.Email)
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

	if _, err = uow.WarehouseRepository().Get(ctx, e.WarehouseID()); err != nil {
		return err
	}

	repo := uow.EmployeeRepository()
	if err = ensureLoginIsFree(ctx, repo, e); err != nil {
		return err
	}

	if err = repo.Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateEmployeeCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewUpdateEmployeeCommandHandler(uowFactory StaffUoWFactory) UpdateEmployeeCommandHandler {
	return UpdateEmployeeCommandHandler{uowFactory: uowFactory}
}

func (h UpdateEmployeeCommandHandler) Handle(ctx context.Context, cmd SaveEmployeeCommand) error {
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

	repo := uow.EmployeeRepository()
	e, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if e.IsRootAdmin() {
		return ErrRootAdminIsProtected
	}

	p := cmd.Profile()
	if err = e.Update(p.Login, p.FullName, p.Role, p.WarehouseID, p.Phone, p.Email); err != nil {
		return err
	}
	if p.Password != "" {
		if err = e.ChangePassword(p.Password); err != nil {
			return err
		}
	}

	if _, err = uow.WarehouseRepository().Get(ctx, e.WarehouseID()); err != nil {
		return err
	}
	if err = ensureLoginIsFree(ctx, repo, e); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteEmployeeCommandHandler removes an account. The root administrator,
// the caller's own account and cashiers with receipts are kept.
type DeleteEmployeeCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewDeleteEmployeeCommandHandler(uowFactory StaffUoWFactory) DeleteEmployeeCommandHandler {
	return DeleteEmployeeCommandHandler{uowFactory: uowFactory}
}

func (h DeleteEmployeeCommandHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.Actor().ID().IsEqual(cmd.ID()) {
		return ErrCannotDeleteYourself
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()
	e, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if e.IsRootAdmin() {
		return ErrRootAdminIsProtected
	}

	hasSales, err := uow.SaleRepository().ExistsForCashier(ctx, e.ID())
	if err != nil {
		return err
	}
	if hasSales {
		return ErrEmployeeHasSales
	}

	if err = repo.Delete(ctx, e.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureLoginIsFree(ctx context.Context, repo ports.EmployeeRepository, e *employee.Employee) error {
	holder, err := repo.GetByLogin(ctx, e.Login())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !holder.ID().IsEqual(e.ID()) {
		return errs.NewObjectAlreadyExistsError("login", e.Login())
	}
	return nil
}
