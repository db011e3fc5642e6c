package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GetLowStockQueryHandler struct {
	db *sqlx.DB
}

func NewGetLowStockQueryHandler(db *sqlx.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

type lowStockRow struct {
	ProductID     uuid.UUID `db:"product_id"`
	ProductName   string    `db:"product_name"`
	Category      string    `db:"category"`
	WarehouseID   uuid.UUID `db:"warehouse_id"`
	WarehouseName string    `db:"warehouse_name"`
	Quantity      int       `db:"quantity"`
	MinQuantity   int       `db:"min_quantity"`
}

// Handle pairs every product with every warehouse, so a product a warehouse
// was never stocked with counts as zero there.
func (h GetLowStockQueryHandler) Handle(ctx context.Context, query GetLowStockQuery) ([]LowStockView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	f.add("COALESCE(s.quantity, 0) < p.min_quantity")
	if wh := query.WarehouseID(); wh != nil {
		f.add("w.id = ?", wh.Bytes())
	}

	stmt := h.db.Rebind(`
		SELECT p.id AS product_id, p.name AS product_name, p.category,
		       w.id AS warehouse_id, w.name AS warehouse_name,
		       COALESCE(s.quantity, 0) AS quantity, p.min_quantity
		FROM products p
		CROSS JOIN warehouses w
		LEFT JOIN stocks s ON s.product_id = p.id AND s.warehouse_id = w.id
		` + f.where() + `
		ORDER BY w.name, p.name`)

	var rows []lowStockRow
	if err := h.db.SelectContext(ctx, &rows, stmt, f.args...); err != nil {
		return nil, err
	}

	items := make([]LowStockView, 0, len(rows))
	for _, row := range rows {
		productID, err := restoreID(row.ProductID)
		if err != nil {
			return nil, err
		}
		warehouseID, err := restoreID(row.WarehouseID)
		if err != nil {
			return nil, err
		}
		items = append(items, LowStockView{
			ProductID:     productID,
			ProductName:   row.ProductName,
			Category:      row.Category,
			WarehouseID:   warehouseID,
			WarehouseName: row.WarehouseName,
			Quantity:      row.Quantity,
			MinQuantity:   row.MinQuantity,
		})
	}

	return items, nil
}
