// Package warehouserepo persists warehouse aggregates with GORM.
package warehouserepo

import (
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

type WarehouseDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:varchar(512);not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:      w.ID().Bytes(),
		Name:    w.Name(),
		Address: w.Address(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return warehouse.RestoreWarehouse(id, dto.Name, dto.Address)
}
