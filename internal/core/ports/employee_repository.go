package ports

import (
	"context"

	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for staff accounts.
// Logins are unique: Add and Update return ObjectAlreadyExistsError when a
// login is taken.
type EmployeeRepository interface {
	Add(ctx context.Context, aggregate *employee.Employee) error
	Update(ctx context.Context, aggregate *employee.Employee) error
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// GetByLogin looks an account up for sign-in. The login is matched exactly.
	GetByLogin(ctx context.Context, login string) (*employee.Employee, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// CountInWarehouse returns how many employees are registered in a warehouse.
	CountInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int64, error)
}
