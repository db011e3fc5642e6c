package queries

import (
	"errors"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetDeliveryGroupsQueryIsNotConstructed = errors.New(
	"GetDeliveryGroupsQuery must be created via NewGetDeliveryGroupsQuery constructor",
)

type GetDeliveryGroupsQuery struct {
	storekeeperID *kernel.UUID
	warehouseID   *kernel.UUID
	guard         guard.ConstructorGuard
}

func NewGetDeliveryGroupsQuery(storekeeperID, warehouseID *kernel.UUID) (GetDeliveryGroupsQuery, error) {
	var err error
	if storekeeperID != nil {
		err = errors.Join(err, storekeeperID.Validate())
	}
	if warehouseID != nil {
		err = errors.Join(err, warehouseID.Validate())
	}
	if err != nil {
		return GetDeliveryGroupsQuery{}, err
	}
	return GetDeliveryGroupsQuery{
		storekeeperID: storekeeperID,
		warehouseID:   warehouseID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryGroupsQueryIsNotConstructed)
}

func (q GetDeliveryGroupsQuery) StorekeeperID() *kernel.UUID {
	return q.storekeeperID
}

func (q GetDeliveryGroupsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

type DeliveryGroupView struct {
	ID              kernel.UUID
	StorekeeperID   kernel.UUID
	StorekeeperName string
	WarehouseID     kernel.UUID
	VehicleInfo     string
	Status          string
	DeliveryCount   int
	CreatedAt       time.Time
	CompletedAt     *time.Time
}
