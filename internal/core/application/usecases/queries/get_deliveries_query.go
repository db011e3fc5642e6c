package queries

import (
	"errors"
	"time"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// DeliveryFilter narrows the delivery list. Nil fields match everything.
type DeliveryFilter struct {
	WarehouseID   *kernel.UUID
	StorekeeperID *kernel.UUID
	Status        *delivery.Status
}

type GetDeliveriesQuery struct {
	filter DeliveryFilter
	guard  guard.ConstructorGuard
}

func NewGetDeliveriesQuery(f DeliveryFilter) (GetDeliveriesQuery, error) {
	var err error
	if f.WarehouseID != nil {
		err = errors.Join(err, f.WarehouseID.Validate())
	}
	if f.StorekeeperID != nil {
		err = errors.Join(err, f.StorekeeperID.Validate())
	}
	if f.Status != nil {
		err = errors.Join(err, f.Status.Validate())
	}
	if err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{filter: f, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

func (q GetDeliveriesQuery) Filter() DeliveryFilter {
	return q.filter
}

type DeliveryView struct {
	ID              kernel.UUID
	SaleID          kernel.UUID
	SaleTotal       kernel.Money
	Items           string
	CashierName     string
	CustomerID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	Address         string
	Notes           string
	Status          string
	WarehouseID     kernel.UUID
	WarehouseName   string
	StorekeeperID   *kernel.UUID
	StorekeeperName string
	GroupID         *kernel.UUID
	VehicleInfo     string
	Position        int
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}
