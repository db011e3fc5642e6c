// Package inventory keeps per-warehouse product counters.
package inventory

import (
	"errors"
	"fmt"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var (
	ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")
	ErrInsufficientStock     = errors.New("insufficient stock")
)

// Stock is the quantity of one product in one warehouse. A warehouse without
// a row for a product holds zero of it, see EmptyStock.
type Stock struct {
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

func NewStock(productID, warehouseID kernel.UUID, quantity int) (*Stock, error) {
	s := &Stock{guard: guard.NewConstructorGuard()}

	if err := errors.Join(productID.Validate(), warehouseID.Validate(), validateQuantity(quantity)); err != nil {
		return nil, err
	}

	s.productID = productID
	s.warehouseID = warehouseID
	s.quantity = quantity
	return s, nil
}

// EmptyStock is the counter of a product the warehouse has never held.
func EmptyStock(productID, warehouseID kernel.UUID) (*Stock, error) {
	return NewStock(productID, warehouseID, 0)
}

func (s *Stock) Validate() error {
	if s == nil {
		return ErrStockIsNotConstructed
	}
	return s.guard.Validate(ErrStockIsNotConstructed)
}

func (s *Stock) ProductID() kernel.UUID {
	return s.productID
}

func (s *Stock) WarehouseID() kernel.UUID {
	return s.warehouseID
}

func (s *Stock) Quantity() int {
	return s.quantity
}

// Withdraw takes q units out of the warehouse.
func (s *Stock) Withdraw(q int) error {
	if err := validatePositive(q); err != nil {
		return err
	}
	if q > s.quantity {
		return fmt.Errorf("%w: product %s has %d, requested %d", ErrInsufficientStock, s.productID, s.quantity, q)
	}
	s.quantity -= q
	return nil
}

// Restock puts q units back, e.g. when a sale is cancelled.
func (s *Stock) Restock(q int) error {
	if err := validatePositive(q); err != nil {
		return err
	}
	s.quantity += q
	return nil
}

// Set overwrites the counter after a stocktake.
func (s *Stock) Set(q int) error {
	if err := validateQuantity(q); err != nil {
		return err
	}
	s.quantity = q
	return nil
}

func (s *Stock) IsLow(minQuantity int) bool {
	return s.quantity < minQuantity
}

func validateQuantity(q int) error {
	if q < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", q, 0, "unbounded")
	}
	return nil
}

func validatePositive(q int) error {
	if q <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", q, 1, "unbounded")
	}
	return nil
}
