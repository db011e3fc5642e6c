package commands

import (
	"context"
	"errors"

	"retail/internal/core/domain/model/inventory"
	"retail/internal/pkg/errs"
)

type SetStockCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSetStockCommandHandler(uowFactory CatalogUoWFactory) SetStockCommandHandler {
	return SetStockCommandHandler{uowFactory: uowFactory}
}

// Handle creates the counter on first use. Non-admins may only count their
// own warehouse.
func (h SetStockCommandHandler) Handle(ctx context.Context, cmd SetStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().checkAccess(cmd.WarehouseID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}
	if _, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	repo := uow.StockRepository()
	stock, err := repo.Get(ctx, cmd.ProductID(), cmd.WarehouseID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		stock, err = inventory.EmptyStock(cmd.ProductID(), cmd.WarehouseID())
	}
	if err != nil {
		return err
	}

	if err = stock.Set(cmd.Quantity()); err != nil {
		return err
	}

	if err = repo.Save(ctx, stock); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
