package queries

import (
	"context"

	"retail/internal/pkg/errs"

	"github.com/jmoiron/sqlx"
)

type GetGroupDeliveriesQueryHandler struct {
	deliveries GetDeliveriesQueryHandler
}

func NewGetGroupDeliveriesQueryHandler(db *sqlx.DB) GetGroupDeliveriesQueryHandler {
	return GetGroupDeliveriesQueryHandler{deliveries: NewGetDeliveriesQueryHandler(db)}
}

// Handle returns the group's deliveries in loading order.
func (h GetGroupDeliveriesQueryHandler) Handle(ctx context.Context, query GetGroupDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.deliveries.db
	var exists bool
	if err := db.GetContext(ctx, &exists,
		db.Rebind(`SELECT EXISTS (SELECT 1 FROM delivery_groups WHERE id = ?)`),
		query.GroupID().Bytes(),
	); err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("delivery group", query.GroupID())
	}

	stmt := db.Rebind(deliverySelect + `
		WHERE gi.group_id = ?
		ORDER BY gi.position`)
	return h.deliveries.selectDeliveries(ctx, stmt, query.GroupID().Bytes())
}
