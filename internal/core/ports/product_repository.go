package ports

import (
	"context"

	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalogue entries.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetMany returns the known products among ids. Unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	Delete(ctx context.Context, id kernel.UUID) error
}

// StockRepository defines the persistence contract for per-warehouse
// quantity counters.
type StockRepository interface {
	// Get returns ObjectNotFoundError when the warehouse has no counter for
	// the product.
	Get(ctx context.Context, productID, warehouseID kernel.UUID) (*inventory.Stock, error)

	// GetInWarehouse returns the existing counters of the given products in
	// one warehouse.
	GetInWarehouse(ctx context.Context, warehouseID kernel.UUID, productIDs []kernel.UUID) ([]*inventory.Stock, error)

	// Save inserts or overwrites a counter.
	Save(ctx context.Context, stock *inventory.Stock) error

	// DeleteByProduct removes the counters of a product in every warehouse.
	DeleteByProduct(ctx context.Context, productID kernel.UUID) error
}
