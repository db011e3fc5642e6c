package commands

import (
	"context"

	"retail/internal/core/domain/model/product"
	"retail/internal/pkg/errs"
)

var ErrProductHasSales = errs.NewOperationNotAllowedError("product is listed in sales")

type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Details()
	p, err := product.NewProduct(cmd.ID(), d.Name, d.Category, d.Brand, d.Price, d.MinQuantity)
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

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) error {
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

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	d := cmd.Details()
	if err = p.Update(d.Name, d.Category, d.Brand, d.Price, d.MinQuantity); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteProductCommandHandler removes a product that was never sold together
// with its counters in every warehouse.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	repo := uow.ProductRepository()
	if _, err := repo.Get(ctx, cmd.ID()); err != nil {
		return err
	}

	sold, err := uow.SaleRepository().ExistsForProduct(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if sold {
		return ErrProductHasSales
	}

	if err = uow.StockRepository().DeleteByProduct(ctx, cmd.ID()); err != nil {
		return err
	}

	if err = repo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
