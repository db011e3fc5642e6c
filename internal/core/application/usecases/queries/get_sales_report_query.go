package queries

import (
	"errors"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

type GetSalesReportQuery struct {
	warehouseID *kernel.UUID
	guard       guard.ConstructorGuard
}

func NewGetSalesReportQuery(warehouseID *kernel.UUID) (GetSalesReportQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetSalesReportQuery{}, err
		}
	}
	return GetSalesReportQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

func (q GetSalesReportQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

type SaleView struct {
	ID            kernel.UUID
	SoldAt        time.Time
	CashierID     kernel.UUID
	CashierName   string
	WarehouseID   kernel.UUID
	WarehouseName string
	Items         string
	Total         kernel.Money
	Status        string
}
