package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type GetProductsQueryHandler struct {
	db *sqlx.DB
}

func NewGetProductsQueryHandler(db *sqlx.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

type productRow struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Brand       string          `db:"brand"`
	Price       decimal.Decimal `db:"price"`
	MinQuantity int             `db:"min_quantity"`
	Quantity    int             `db:"quantity"`
}

// Handle returns the products ordered by name.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows []productRow
		err  error
	)
	if wh := query.WarehouseID(); wh != nil {
		err = h.db.SelectContext(ctx, &rows, `
			SELECT p.id, p.name, p.category, p.brand, p.price, p.min_quantity,
			       COALESCE(s.quantity, 0) AS quantity
			FROM products p
			LEFT JOIN stocks s ON s.product_id = p.id AND s.warehouse_id = $1
			ORDER BY p.name, p.id
		`, wh.Bytes())
	} else {
		err = h.db.SelectContext(ctx, &rows, `
			SELECT p.id, p.name, p.category, p.brand, p.price, p.min_quantity,
			       COALESCE(SUM(s.quantity), 0) AS quantity
			FROM products p
			LEFT JOIN stocks s ON s.product_id = p.id
			GROUP BY p.id, p.name, p.category, p.brand, p.price, p.min_quantity
			ORDER BY p.name, p.id
		`)
	}
	if err != nil {
		return nil, err
	}

	products := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		id, idErr := restoreID(row.ID)
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := restoreMoney(row.Price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		products = append(products, ProductView{
			ID:          id,
			Name:        row.Name,
			Category:    row.Category,
			Brand:       row.Brand,
			Price:       price,
			MinQuantity: row.MinQuantity,
			Quantity:    row.Quantity,
		})
	}

	return products, nil
}
