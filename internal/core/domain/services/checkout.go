package services

import (
	"errors"
	"fmt"
	"time"

	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/model/sale"
	"retail/internal/pkg/errs"
)

// ErrEmptyCart is returned when a checkout has nothing to sell.
var ErrEmptyCart = errors.New("cart is empty")

// CartLine is what the cashier scans: a product and how many of it.
type CartLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// Checkout is a domain service that rings up a cart in one warehouse.
//
// Business rules:
//   - every product in the cart must exist in the catalogue
//   - the warehouse must hold enough of every product; a missing stock
//     counter means zero
//   - the cart is sold completely or not at all
//   - unit prices are taken from the catalogue at the moment of sale
//
// Example usage:
//
//	s, touched, err := services.NewCheckout().Sell(saleID, cashierID, warehouseID, cart, products, stocks, time.Now())
//	if errors.Is(err, inventory.ErrInsufficientStock) {
//	    // tell the cashier which product is short
//	}
type Checkout struct{}

func NewCheckout() Checkout {
	return Checkout{}
}

// Sell validates the cart against products and stocks, withdraws the goods
// and builds a completed sale.
//
// Parameters:
//   - products: catalogue entries keyed by product id
//   - stocks: the warehouse counters keyed by product id, may be incomplete
//
// Returns:
//   - *sale.Sale: the completed sale
//   - []*inventory.Stock: the counters that were withdrawn from, one per sold product
//   - error: ErrEmptyCart, ErrInsufficientStock, ObjectNotFoundError or a validation error
//
// On error no stock is modified.
func (Checkout) Sell(
	saleID, cashierID, warehouseID kernel.UUID,
	cart []CartLine,
	products map[kernel.UUID]*product.Product,
	stocks map[kernel.UUID]*inventory.Stock,
	soldAt time.Time,
) (*sale.Sale, []*inventory.Stock, error) {
	if len(cart) == 0 {
		return nil, nil, ErrEmptyCart
	}

	lines := make([]sale.Line, 0, len(cart))
	for _, item := range cart {
		p, ok := products[item.ProductID]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("product", item.ProductID)
		}
		if err := p.Validate(); err != nil {
			return nil, nil, err
		}

		l, err := sale.NewLine(p.ID(), item.Quantity, p.Price())
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, l)
	}

	s, err := sale.NewSale(saleID, cashierID, warehouseID, lines, soldAt)
	if err != nil {
		return nil, nil, err
	}

	// Sale lines are merged per product, so checking them covers repeated
	// cart entries as one withdrawal.
	touched := make([]*inventory.Stock, 0, len(s.Lines()))
	for _, l := range s.Lines() {
		st, err := stockFor(stocks, l.ProductID(), warehouseID)
		if err != nil {
			return nil, nil, err
		}
		if st.Quantity() < l.Quantity() {
			return nil, nil, fmt.Errorf("%w: %s has %d, requested %d",
				inventory.ErrInsufficientStock, products[l.ProductID()].Name(), st.Quantity(), l.Quantity())
		}
		touched = append(touched, st)
	}

	for i, l := range s.Lines() {
		if err = touched[i].Withdraw(l.Quantity()); err != nil {
			return nil, nil, err
		}
	}

	return s, touched, nil
}

func stockFor(stocks map[kernel.UUID]*inventory.Stock, productID, warehouseID kernel.UUID) (*inventory.Stock, error) {
	st, ok := stocks[productID]
	if !ok {
		return inventory.EmptyStock(productID, warehouseID)
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	if !st.WarehouseID().IsEqual(warehouseID) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("counter of %s belongs to warehouse %s, not %s", productID, st.WarehouseID(), warehouseID),
		)
	}
	return st, nil
}
