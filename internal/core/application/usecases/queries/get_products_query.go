package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery lists the catalogue with stock quantities. With a
// warehouse the quantity is that warehouse's counter, otherwise the sum over
// every warehouse.
type GetProductsQuery struct {
	warehouseID *kernel.UUID
	guard       guard.ConstructorGuard
}

func NewGetProductsQuery(warehouseID *kernel.UUID) (GetProductsQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}
	return GetProductsQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

type ProductView struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Brand       string
	Price       kernel.Money
	MinQuantity int
	Quantity    int
}

// IsLow reports whether the shown quantity is below the reorder threshold.
func (v ProductView) IsLow() bool {
	return v.Quantity < v.MinQuantity
}
