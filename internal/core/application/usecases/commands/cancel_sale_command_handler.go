package commands

import (
	"context"
	"errors"

	"retail/internal/core/domain/model/inventory"
	"retail/internal/pkg/errs"
)

// CancelSaleCommandHandler voids a receipt: every line goes back to the
// warehouse it was sold from and deliveries that have not finished are
// cancelled.
type CancelSaleCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelSaleCommandHandler(uowFactory UoWFactory) CancelSaleCommandHandler {
	return CancelSaleCommandHandler{uowFactory: uowFactory}
}

func (h CancelSaleCommandHandler) Handle(ctx context.Context, cmd CancelSaleCommand) error {
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

	saleRepo := uow.SaleRepository()
	stockRepo := uow.StockRepository()
	deliveryRepo := uow.DeliveryRepository()

	s, err := saleRepo.Get(ctx, cmd.SaleID())
	if err != nil {
		return err
	}
	if err = cmd.Actor().checkAccess(s.WarehouseID()); err != nil {
		return err
	}

	if err = s.Cancel(); err != nil {
		return errs.NewOperationNotAllowedErrorWithCause("sale cannot be cancelled", err)
	}

	for _, l := range s.Lines() {
		stock, err := stockRepo.Get(ctx, l.ProductID(), s.WarehouseID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			stock, err = inventory.EmptyStock(l.ProductID(), s.WarehouseID())
		}
		if err != nil {
			return err
		}
		if err = stock.Restock(l.Quantity()); err != nil {
			return err
		}
		if err = stockRepo.Save(ctx, stock); err != nil {
			return err
		}
	}

	deliveries, err := deliveryRepo.GetBySale(ctx, s.ID())
	if err != nil {
		return err
	}
	for _, d := range deliveries {
		if d.Status().IsFinal() {
			continue
		}
		if err = d.Cancel(); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = saleRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
