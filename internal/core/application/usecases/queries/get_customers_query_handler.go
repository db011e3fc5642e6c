package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"retail/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const customerSelect = `
	SELECT id, full_name, phone, COALESCE(email, '') AS email, address, created_at
	FROM customers
`

type customerRow struct {
	ID        uuid.UUID `db:"id"`
	FullName  string    `db:"full_name"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

func (row customerRow) toView() (CustomerView, error) {
	id, err := restoreID(row.ID)
	if err != nil {
		return CustomerView{}, err
	}
	return CustomerView{
		ID:        id,
		FullName:  row.FullName,
		Phone:     row.Phone,
		Email:     row.Email,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
	}, nil
}

type GetCustomersQueryHandler struct {
	db *sqlx.DB
}

func NewGetCustomersQueryHandler(db *sqlx.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []customerRow
	if err := h.db.SelectContext(ctx, &rows, customerSelect+` ORDER BY full_name, id`); err != nil {
		return nil, err
	}

	customers := make([]CustomerView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		customers = append(customers, view)
	}
	return customers, nil
}

type FindCustomerByPhoneQueryHandler struct {
	db *sqlx.DB
}

func NewFindCustomerByPhoneQueryHandler(db *sqlx.DB) FindCustomerByPhoneQueryHandler {
	return FindCustomerByPhoneQueryHandler{db: db}
}

func (h FindCustomerByPhoneQueryHandler) Handle(ctx context.Context, query FindCustomerByPhoneQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	var row customerRow
	err := h.db.GetContext(ctx, &row, h.db.Rebind(customerSelect+` WHERE phone = ?`), query.Phone())
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerView{}, errs.NewObjectNotFoundError("phone", query.Phone())
	}
	if err != nil {
		return CustomerView{}, err
	}
	return row.toView()
}
