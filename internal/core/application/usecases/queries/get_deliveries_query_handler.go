package queries

import (
	"context"
	"database/sql"
	"time"

	"retail/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type GetDeliveriesQueryHandler struct {
	db *sqlx.DB
}

func NewGetDeliveriesQueryHandler(db *sqlx.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

type deliveryRow struct {
	ID              uuid.UUID       `db:"id"`
	SaleID          uuid.UUID       `db:"sale_id"`
	SaleTotal       decimal.Decimal `db:"sale_total"`
	Items           string          `db:"items"`
	CashierName     string          `db:"cashier_name"`
	CustomerID      uuid.UUID       `db:"customer_id"`
	CustomerName    string          `db:"customer_name"`
	CustomerPhone   string          `db:"customer_phone"`
	Address         string          `db:"address"`
	Notes           string          `db:"notes"`
	Status          int             `db:"status"`
	WarehouseID     uuid.UUID       `db:"warehouse_id"`
	WarehouseName   string          `db:"warehouse_name"`
	StorekeeperID   uuid.NullUUID   `db:"storekeeper_id"`
	StorekeeperName string          `db:"storekeeper_name"`
	GroupID         uuid.NullUUID   `db:"group_id"`
	VehicleInfo     string          `db:"vehicle_info"`
	Position        int             `db:"position"`
	CreatedAt       time.Time       `db:"created_at"`
	DeliveredAt     sql.NullTime    `db:"delivered_at"`
}

const deliverySelect = `
	SELECT d.id, d.sale_id,
	       COALESCE(totals.total, 0) AS sale_total,
	       COALESCE(totals.items, '') AS items,
	       COALESCE(cashier.full_name, '') AS cashier_name,
	       d.customer_id,
	       COALESCE(c.full_name, '') AS customer_name,
	       COALESCE(c.phone, '') AS customer_phone,
	       d.address, COALESCE(d.notes, '') AS notes, d.status,
	       d.warehouse_id,
	       COALESCE(w.name, '') AS warehouse_name,
	       d.storekeeper_id,
	       COALESCE(sk.full_name, '') AS storekeeper_name,
	       gi.group_id,
	       COALESCE(g.vehicle_info, '') AS vehicle_info,
	       COALESCE(gi.position, 0) AS position,
	       d.created_at, d.delivered_at
	FROM deliveries d
	JOIN sales s ON s.id = d.sale_id
	LEFT JOIN LATERAL (
		SELECT SUM(l.quantity * l.unit_price) AS total,
		       string_agg(p.name || ' x' || l.quantity, ', ' ORDER BY p.name) AS items
		FROM sale_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.sale_id = s.id
	) totals ON TRUE
	LEFT JOIN employees cashier ON cashier.id = s.cashier_id
	LEFT JOIN customers c ON c.id = d.customer_id
	LEFT JOIN warehouses w ON w.id = d.warehouse_id
	LEFT JOIN employees sk ON sk.id = d.storekeeper_id
	LEFT JOIN delivery_group_items gi ON gi.delivery_id = d.id
	LEFT JOIN delivery_groups g ON g.id = gi.group_id
`

// Handle lists the work queue: pending deliveries come first, oldest first,
// then everything else newest first.
func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fl := query.Filter()
	var f filter
	if fl.WarehouseID != nil {
		f.add("d.warehouse_id = ?", fl.WarehouseID.Bytes())
	}
	if fl.StorekeeperID != nil {
		f.add("d.storekeeper_id = ?", fl.StorekeeperID.Bytes())
	}
	if fl.Status != nil {
		f.add("d.status = ?", int(*fl.Status))
	}

	stmt := h.db.Rebind(deliverySelect + f.where() + `
		ORDER BY CASE WHEN d.status = ? THEN 0 ELSE 1 END,
		         CASE WHEN d.status = ? THEN d.created_at END ASC,
		         d.created_at DESC, d.id`)
	args := append(f.args, int(delivery.Pending), int(delivery.Pending))

	return h.selectDeliveries(ctx, stmt, args...)
}

func (h GetDeliveriesQueryHandler) selectDeliveries(ctx context.Context, stmt string, args ...any) ([]DeliveryView, error) {
	var rows []deliveryRow
	if err := h.db.SelectContext(ctx, &rows, stmt, args...); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, view)
	}
	return deliveries, nil
}

func (row deliveryRow) toView() (DeliveryView, error) {
	id, err := restoreID(row.ID)
	if err != nil {
		return DeliveryView{}, err
	}
	saleID, err := restoreID(row.SaleID)
	if err != nil {
		return DeliveryView{}, err
	}
	customerID, err := restoreID(row.CustomerID)
	if err != nil {
		return DeliveryView{}, err
	}
	warehouseID, err := restoreID(row.WarehouseID)
	if err != nil {
		return DeliveryView{}, err
	}
	storekeeperID, err := restoreOptionalID(row.StorekeeperID)
	if err != nil {
		return DeliveryView{}, err
	}
	groupID, err := restoreOptionalID(row.GroupID)
	if err != nil {
		return DeliveryView{}, err
	}
	total, err := restoreMoney(row.SaleTotal)
	if err != nil {
		return DeliveryView{}, err
	}

	return DeliveryView{
		ID:              id,
		SaleID:          saleID,
		SaleTotal:       total,
		Items:           row.Items,
		CashierName:     row.CashierName,
		CustomerID:      customerID,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		Address:         row.Address,
		Notes:           row.Notes,
		Status:          delivery.Status(row.Status).String(),
		WarehouseID:     warehouseID,
		WarehouseName:   row.WarehouseName,
		StorekeeperID:   storekeeperID,
		StorekeeperName: row.StorekeeperName,
		GroupID:         groupID,
		VehicleInfo:     row.VehicleInfo,
		Position:        row.Position,
		CreatedAt:       row.CreatedAt,
		DeliveredAt:     optionalTime(row.DeliveredAt),
	}, nil
}
