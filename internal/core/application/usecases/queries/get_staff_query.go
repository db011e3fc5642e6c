package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var (
	ErrGetEmployeesQueryIsNotConstructed = errors.New(
		"GetEmployeesQuery must be created via NewGetEmployeesQuery constructor",
	)
	ErrGetWarehousesQueryIsNotConstructed = errors.New(
		"GetWarehousesQuery must be created via NewGetWarehousesQuery constructor",
	)
)

type GetEmployeesQuery struct {
	warehouseID *kernel.UUID
	guard       guard.ConstructorGuard
}

func NewGetEmployeesQuery(warehouseID *kernel.UUID) (GetEmployeesQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetEmployeesQuery{}, err
		}
	}
	return GetEmployeesQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeesQueryIsNotConstructed)
}

func (q GetEmployeesQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// EmployeeView never carries the password hash.
type EmployeeView struct {
	ID            kernel.UUID
	Login         string
	FullName      string
	Role          string
	WarehouseID   kernel.UUID
	WarehouseName string
	Phone         string
	Email         string
}

type GetWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWarehousesQuery() GetWarehousesQuery {
	return GetWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehousesQueryIsNotConstructed)
}

type WarehouseView struct {
	ID            kernel.UUID
	Name          string
	Address       string
	EmployeeCount int
	StockUnits    int
}
