package ports

import (
	"context"

	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
)

// DeliveryBoard receives delivery and group changes once they are committed,
// so that the storekeepers watching a warehouse see them live.
// Implementations must not block the caller for long.
type DeliveryBoard interface {
	DeliveryChanged(ctx context.Context, d *delivery.Delivery)
	GroupChanged(ctx context.Context, g *deliverygroup.Group)
}
