package ports

import (
	"context"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetBySale returns every delivery requested for a sale.
	GetBySale(ctx context.Context, saleID kernel.UUID) ([]*delivery.Delivery, error)

	// ExistsForCustomer reports whether any delivery is addressed to the customer.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}

// DeliveryGroupRepository defines the persistence contract for van groups
// and their membership. A delivery belongs to at most one group; Update
// returns ObjectAlreadyExistsError when a loaded delivery sits in another
// group.
type DeliveryGroupRepository interface {
	Add(ctx context.Context, aggregate *deliverygroup.Group) error
	Update(ctx context.Context, aggregate *deliverygroup.Group) error
	Get(ctx context.Context, id kernel.UUID) (*deliverygroup.Group, error)
}
