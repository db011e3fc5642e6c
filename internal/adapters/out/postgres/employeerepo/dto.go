// Package employeerepo persists staff accounts with GORM.
package employeerepo

import (
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type EmployeeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"type:smallint;not null"`
	WarehouseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone        string    `gorm:"type:varchar(32)"`
	Email        string    `gorm:"type:varchar(255)"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:           e.ID().Bytes(),
		Login:        e.Login(),
		PasswordHash: e.PasswordHash(),
		FullName:     e.FullName(),
		Role:         int(e.Role()),
		WarehouseID:  e.WarehouseID().Bytes(),
		Phone:        e.Phone(),
		Email:        e.Email(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(
		id,
		dto.Login,
		dto.PasswordHash,
		dto.FullName,
		employee.Role(dto.Role),
		warehouseID,
		dto.Phone,
		dto.Email,
	)
}
