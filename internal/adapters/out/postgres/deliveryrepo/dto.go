// Package deliveryrepo persists deliveries and van groups with GORM.
package deliveryrepo

import (
	"time"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SaleID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	WarehouseID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Address       string     `gorm:"type:varchar(512);not null"`
	Notes         string     `gorm:"type:text"`
	Status        int        `gorm:"type:smallint;not null;index"`
	StorekeeperID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"not null"`
	DeliveredAt   *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type DeliveryGroupDTO struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	StorekeeperID uuid.UUID              `gorm:"type:uuid;not null;index"`
	WarehouseID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	VehicleInfo   string                 `gorm:"type:varchar(255);not null"`
	Status        int                    `gorm:"type:smallint;not null"`
	CreatedAt     time.Time              `gorm:"not null"`
	CompletedAt   *time.Time
	Items         []DeliveryGroupItemDTO `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (DeliveryGroupDTO) TableName() string {
	return "delivery_groups"
}

// DeliveryGroupItemDTO places a delivery into a group. The unique index on
// DeliveryID keeps a delivery in one group at most.
type DeliveryGroupItemDTO struct {
	GroupID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Position   int       `gorm:"type:int;not null"`
}

func (DeliveryGroupItemDTO) TableName() string {
	return "delivery_group_items"
}

func deliveryFromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:            d.ID().Bytes(),
		SaleID:        d.SaleID().Bytes(),
		CustomerID:    d.CustomerID().Bytes(),
		WarehouseID:   d.WarehouseID().Bytes(),
		Address:       d.Address(),
		Notes:         d.Notes(),
		Status:        int(d.Status()),
		StorekeeperID: kernel.OptionalBytes(d.Storekeeper()),
		CreatedAt:     d.CreatedAt(),
		DeliveredAt:   d.DeliveredAt(),
	}
}

func deliveryToDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	saleID, err := kernel.UUIDFromBytes(dto.SaleID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	storekeeperID, err := kernel.OptionalUUIDFromBytes(dto.StorekeeperID)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, saleID, customerID, warehouseID,
		dto.Address, dto.Notes,
		delivery.Status(dto.Status),
		storekeeperID,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}

func groupFromDomain(g *deliverygroup.Group) DeliveryGroupDTO {
	groupID := g.ID().Bytes()
	items := make([]DeliveryGroupItemDTO, 0, len(g.Deliveries()))
	for i, deliveryID := range g.Deliveries() {
		items = append(items, DeliveryGroupItemDTO{
			GroupID:    groupID,
			DeliveryID: deliveryID.Bytes(),
			Position:   i,
		})
	}

	return DeliveryGroupDTO{
		ID:            groupID,
		StorekeeperID: g.Storekeeper().Bytes(),
		WarehouseID:   g.WarehouseID().Bytes(),
		VehicleInfo:   g.VehicleInfo(),
		Status:        int(g.Status()),
		CreatedAt:     g.CreatedAt(),
		CompletedAt:   g.CompletedAt(),
		Items:         items,
	}
}

func groupToDomain(dto DeliveryGroupDTO) (*deliverygroup.Group, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storekeeperID, err := kernel.UUIDFromBytes(dto.StorekeeperID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	deliveryIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		deliveryID, idErr := kernel.UUIDFromBytes(item.DeliveryID[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryIDs = append(deliveryIDs, deliveryID)
	}

	return deliverygroup.RestoreGroup(
		id, storekeeperID, warehouseID,
		dto.VehicleInfo,
		deliverygroup.Status(dto.Status),
		deliveryIDs,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}
