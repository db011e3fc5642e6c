package commands

import (
	"context"
	"errors"
	"time"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"
)

type CheckoutResult struct {
	SaleID     kernel.UUID
	Total      kernel.Money
	CustomerID *kernel.UUID
	DeliveryID *kernel.UUID
}

// CheckoutCommandHandler sells a cart and, when asked, opens a delivery.
// Sale, stock withdrawals, a walk-in customer and the delivery are stored in
// one transaction.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	checkout   services.Checkout
}

func NewCheckoutCommandHandler(uowFactory UoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory, checkout: services.NewCheckout()}
}

func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseID := cmd.Actor().WarehouseID()
	ids := make([]kernel.UUID, 0, len(cmd.Cart()))
	for _, l := range cmd.Cart() {
		ids = append(ids, l.ProductID)
	}

	products, err := uow.ProductRepository().GetMany(ctx, ids)
	if err != nil {
		return CheckoutResult{}, err
	}
	stocks, err := uow.StockRepository().GetInWarehouse(ctx, warehouseID, ids)
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now()
	s, touched, err := h.checkout.Sell(
		cmd.SaleID(), cmd.Actor().ID(), warehouseID, cmd.Cart(), indexProducts(products), indexStocks(stocks), now,
	)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.SaleRepository().Add(ctx, s); err != nil {
		return CheckoutResult{}, err
	}
	for _, st := range touched {
		if err = uow.StockRepository().Save(ctx, st); err != nil {
			return CheckoutResult{}, err
		}
	}

	result := CheckoutResult{SaleID: s.ID(), Total: s.Total()}

	if req := cmd.Delivery(); req != nil {
		c, err := h.findOrRegisterCustomer(ctx, uow, *req, now)
		if err != nil {
			return CheckoutResult{}, err
		}

		d, err := delivery.NewDelivery(req.DeliveryID, s.ID(), c.ID(), warehouseID, req.Address, req.Notes, now)
		if err != nil {
			return CheckoutResult{}, err
		}
		if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
			return CheckoutResult{}, err
		}

		customerID, deliveryID := c.ID(), d.ID()
		result.CustomerID = &customerID
		result.DeliveryID = &deliveryID
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return result, nil
}

func (h CheckoutCommandHandler) findOrRegisterCustomer(
	ctx context.Context,
	uow UoW,
	req DeliveryRequest,
	now time.Time,
) (*customer.Customer, error) {
	repo := uow.CustomerRepository()

	c, err := repo.GetByPhone(ctx, req.Phone)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	c, err = customer.NewWalkInCustomer(kernel.NewUUID(), req.Phone, req.Address, now)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func indexProducts(products []*product.Product) map[kernel.UUID]*product.Product {
	m := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		m[p.ID()] = p
	}
	return m
}

func indexStocks(stocks []*inventory.Stock) map[kernel.UUID]*inventory.Stock {
	m := make(map[kernel.UUID]*inventory.Stock, len(stocks))
	for _, s := range stocks {
		m[s.ProductID()] = s
	}
	return m
}
