package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetLowStockQueryIsNotConstructed = errors.New(
	"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
)

// GetLowStockQuery finds the products that have fallen below their reorder
// threshold in a warehouse. Without a warehouse every warehouse is checked.
type GetLowStockQuery struct {
	warehouseID *kernel.UUID
	guard       guard.ConstructorGuard
}

func NewGetLowStockQuery(warehouseID *kernel.UUID) (GetLowStockQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetLowStockQuery{}, err
		}
	}
	return GetLowStockQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}

func (q GetLowStockQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

type LowStockView struct {
	ProductID     kernel.UUID
	ProductName   string
	Category      string
	WarehouseID   kernel.UUID
	WarehouseName string
	Quantity      int
	MinQuantity   int
}

// Shortage is how many units are needed to reach the threshold.
func (v LowStockView) Shortage() int {
	return v.MinQuantity - v.Quantity
}
