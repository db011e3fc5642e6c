package ports

import (
	"context"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for buyers. Phones are
// unique.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
