package commands

import (
	"context"
)

type ChangePasswordCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewChangePasswordCommandHandler(uowFactory EmployeeUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{uowFactory: uowFactory}
}

func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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
	e, err := repo.GetByLogin(ctx, cmd.Login())
	if err != nil {
		return err
	}

	if err = e.ChangePassword(cmd.Password()); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
