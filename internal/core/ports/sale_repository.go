package ports

import (
	"context"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/sale"
)

// SaleRepository defines the persistence contract for receipts and their
// lines.
type SaleRepository interface {
	Add(ctx context.Context, aggregate *sale.Sale) error

	// Update persists the status. Lines are immutable once sold.
	Update(ctx context.Context, aggregate *sale.Sale) error

	Get(ctx context.Context, id kernel.UUID) (*sale.Sale, error)

	// ExistsForProduct reports whether any receipt lists the product.
	ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error)

	// ExistsForCashier reports whether the employee rang up any receipt.
	ExistsForCashier(ctx context.Context, employeeID kernel.UUID) (bool, error)
}
