package ports

import (
	"context"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get returns ObjectNotFoundError for unknown identifiers.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
