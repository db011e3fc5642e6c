package queries

import (
	"context"
	"time"

	"retail/internal/core/domain/model/sale"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type GetSalesReportQueryHandler struct {
	db *sqlx.DB
}

func NewGetSalesReportQueryHandler(db *sqlx.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

type saleRow struct {
	ID            uuid.UUID       `db:"id"`
	SoldAt        time.Time       `db:"sold_at"`
	CashierID     uuid.UUID       `db:"cashier_id"`
	CashierName   string          `db:"cashier_name"`
	WarehouseID   uuid.UUID       `db:"warehouse_id"`
	WarehouseName string          `db:"warehouse_name"`
	Items         string          `db:"items"`
	Total         decimal.Decimal `db:"total"`
	Status        int             `db:"status"`
}

// Handle returns the receipts newest first. Items reads like
// "Fridge x1, Kettle x2".
func (h GetSalesReportQueryHandler) Handle(ctx context.Context, query GetSalesReportQuery) ([]SaleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	if wh := query.WarehouseID(); wh != nil {
		f.add("s.warehouse_id = ?", wh.Bytes())
	}

	stmt := h.db.Rebind(`
		SELECT s.id, s.sold_at, s.cashier_id,
		       COALESCE(e.full_name, '') AS cashier_name,
		       s.warehouse_id,
		       COALESCE(w.name, '') AS warehouse_name,
		       COALESCE(string_agg(p.name || ' x' || l.quantity, ', ' ORDER BY p.name), '') AS items,
		       COALESCE(SUM(l.quantity * l.unit_price), 0) AS total,
		       s.status
		FROM sales s
		LEFT JOIN employees e ON e.id = s.cashier_id
		LEFT JOIN warehouses w ON w.id = s.warehouse_id
		LEFT JOIN sale_lines l ON l.sale_id = s.id
		LEFT JOIN products p ON p.id = l.product_id
		` + f.where() + `
		GROUP BY s.id, s.sold_at, s.cashier_id, e.full_name, s.warehouse_id, w.name, s.status
		ORDER BY s.sold_at DESC, s.id`)

	var rows []saleRow
	if err := h.db.SelectContext(ctx, &rows, stmt, f.args...); err != nil {
		return nil, err
	}

	sales := make([]SaleView, 0, len(rows))
	for _, row := range rows {
		id, err := restoreID(row.ID)
		if err != nil {
			return nil, err
		}
		cashierID, err := restoreID(row.CashierID)
		if err != nil {
			return nil, err
		}
		warehouseID, err := restoreID(row.WarehouseID)
		if err != nil {
			return nil, err
		}
		total, err := restoreMoney(row.Total)
		if err != nil {
			return nil, err
		}
		sales = append(sales, SaleView{
			ID:            id,
			SoldAt:        row.SoldAt,
			CashierID:     cashierID,
			CashierName:   row.CashierName,
			WarehouseID:   warehouseID,
			WarehouseName: row.WarehouseName,
			Items:         row.Items,
			Total:         total,
			Status:        sale.Status(row.Status).String(),
		})
	}

	return sales, nil
}
