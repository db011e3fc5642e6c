package queries

import (
	"context"
	"database/sql"
	"time"

	"retail/internal/core/domain/model/deliverygroup"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GetDeliveryGroupsQueryHandler struct {
	db *sqlx.DB
}

func NewGetDeliveryGroupsQueryHandler(db *sqlx.DB) GetDeliveryGroupsQueryHandler {
	return GetDeliveryGroupsQueryHandler{db: db}
}

type deliveryGroupRow struct {
	ID              uuid.UUID    `db:"id"`
	StorekeeperID   uuid.UUID    `db:"storekeeper_id"`
	StorekeeperName string       `db:"storekeeper_name"`
	WarehouseID     uuid.UUID    `db:"warehouse_id"`
	VehicleInfo     string       `db:"vehicle_info"`
	Status          int          `db:"status"`
	DeliveryCount   int          `db:"delivery_count"`
	CreatedAt       time.Time    `db:"created_at"`
	CompletedAt     sql.NullTime `db:"completed_at"`
}

// Handle lists groups with open ones first, newest first within each.
func (h GetDeliveryGroupsQueryHandler) Handle(ctx context.Context, query GetDeliveryGroupsQuery) ([]DeliveryGroupView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	if id := query.StorekeeperID(); id != nil {
		f.add("g.storekeeper_id = ?", id.Bytes())
	}
	if id := query.WarehouseID(); id != nil {
		f.add("g.warehouse_id = ?", id.Bytes())
	}

	stmt := h.db.Rebind(`
		SELECT g.id, g.storekeeper_id,
		       COALESCE(e.full_name, '') AS storekeeper_name,
		       g.warehouse_id, g.vehicle_info, g.status,
		       COUNT(gi.delivery_id) AS delivery_count,
		       g.created_at, g.completed_at
		FROM delivery_groups g
		LEFT JOIN employees e ON e.id = g.storekeeper_id
		LEFT JOIN delivery_group_items gi ON gi.group_id = g.id
		` + f.where() + `
		GROUP BY g.id, g.storekeeper_id, e.full_name, g.warehouse_id, g.vehicle_info,
		         g.status, g.created_at, g.completed_at
		ORDER BY CASE WHEN g.status = ? THEN 0 ELSE 1 END, g.created_at DESC, g.id`)
	args := append(f.args, int(deliverygroup.Preparing))

	var rows []deliveryGroupRow
	if err := h.db.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, err
	}

	groups := make([]DeliveryGroupView, 0, len(rows))
	for _, row := range rows {
		id, err := restoreID(row.ID)
		if err != nil {
			return nil, err
		}
		storekeeperID, err := restoreID(row.StorekeeperID)
		if err != nil {
			return nil, err
		}
		warehouseID, err := restoreID(row.WarehouseID)
		if err != nil {
			return nil, err
		}
		groups = append(groups, DeliveryGroupView{
			ID:              id,
			StorekeeperID:   storekeeperID,
			StorekeeperName: row.StorekeeperName,
			WarehouseID:     warehouseID,
			VehicleInfo:     row.VehicleInfo,
			Status:          deliverygroup.Status(row.Status).String(),
			DeliveryCount:   row.DeliveryCount,
			CreatedAt:       row.CreatedAt,
			CompletedAt:     optionalTime(row.CompletedAt),
		})
	}

	return groups, nil
}
