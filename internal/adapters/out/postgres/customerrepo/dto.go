// Package customerrepo persists buyers with GORM.
package customerrepo

import (
	"time"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Email     string    `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		FullName:  c.FullName(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.FullName, dto.Phone, dto.Email, dto.Address, dto.CreatedAt)
}
