package commands

import (
	"context"
	"errors"
	"time"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"
)

var ErrCustomerHasDeliveries = errs.NewOperationNotAllowedError("customer has deliveries")

type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd SaveCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c := cmd.Contacts()
	aggregate, err := customer.NewCustomer(cmd.ID(), c.FullName, c.Phone, c.Email, c.Address, time.Now())
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

	repo := uow.CustomerRepository()
	if err = ensurePhoneIsFree(ctx, repo, aggregate); err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd SaveCustomerCommand) error {
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

	repo := uow.CustomerRepository()
	aggregate, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	c := cmd.Contacts()
	if err = aggregate.Update(c.FullName, c.Phone, c.Email, c.Address); err != nil {
		return err
	}
	if err = ensurePhoneIsFree(ctx, repo, aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	repo := uow.CustomerRepository()
	if _, err := repo.Get(ctx, cmd.ID()); err != nil {
		return err
	}

	referenced, err := uow.DeliveryRepository().ExistsForCustomer(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if referenced {
		return ErrCustomerHasDeliveries
	}

	if err = repo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensurePhoneIsFree(ctx context.Context, repo ports.CustomerRepository, c *customer.Customer) error {
	holder, err := repo.GetByPhone(ctx, c.Phone())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !holder.ID().IsEqual(c.ID()) {
		return errs.NewObjectAlreadyExistsError("phone", c.Phone())
	}
	return nil
}
