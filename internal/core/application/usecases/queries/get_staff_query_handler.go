package queries

import (
	"context"

	"retail/internal/core/domain/model/employee"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GetEmployeesQueryHandler struct {
	db *sqlx.DB
}

func NewGetEmployeesQueryHandler(db *sqlx.DB) GetEmployeesQueryHandler {
	return GetEmployeesQueryHandler{db: db}
}

type employeeRow struct {
	ID            uuid.UUID `db:"id"`
	Login         string    `db:"login"`
	FullName      string    `db:"full_name"`
	Role          int       `db:"role"`
	WarehouseID   uuid.UUID `db:"warehouse_id"`
	WarehouseName string    `db:"warehouse_name"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
}

func (h GetEmployeesQueryHandler) Handle(ctx context.Context, query GetEmployeesQuery) ([]EmployeeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var f filter
	if wh := query.WarehouseID(); wh != nil {
		f.add("e.warehouse_id = ?", wh.Bytes())
	}

	stmt := h.db.Rebind(`
		SELECT e.id, e.login, e.full_name, e.role, e.warehouse_id,
		       COALESCE(w.name, '') AS warehouse_name,
		       COALESCE(e.phone, '') AS phone,
		       COALESCE(e.email, '') AS email
		FROM employees e
		LEFT JOIN warehouses w ON w.id = e.warehouse_id
		` + f.where() + `
		ORDER BY e.full_name, e.login`)

	var rows []employeeRow
	if err := h.db.SelectContext(ctx, &rows, stmt, f.args...); err != nil {
		return nil, err
	}

	employees := make([]EmployeeView, 0, len(rows))
	for _, row := range rows {
		id, err := restoreID(row.ID)
		if err != nil {
			return nil, err
		}
		warehouseID, err := restoreID(row.WarehouseID)
		if err != nil {
			return nil, err
		}
		employees = append(employees, EmployeeView{
			ID:            id,
			Login:         row.Login,
			FullName:      row.FullName,
			Role:          employee.Role(row.Role).String(),
			WarehouseID:   warehouseID,
			WarehouseName: row.WarehouseName,
			Phone:         row.Phone,
			Email:         row.Email,
		})
	}
	return employees, nil
}

type GetWarehousesQueryHandler struct {
	db *sqlx.DB
}

func NewGetWarehousesQueryHandler(db *sqlx.DB) GetWarehousesQueryHandler {
	return GetWarehousesQueryHandler{db: db}
}

type warehouseRow struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Address       string    `db:"address"`
	EmployeeCount int       `db:"employee_count"`
	StockUnits    int       `db:"stock_units"`
}

func (h GetWarehousesQueryHandler) Handle(ctx context.Context, query GetWarehousesQuery) ([]WarehouseView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []warehouseRow
	if err := h.db.SelectContext(ctx, &rows, `
		SELECT w.id, w.name, w.address,
		       (SELECT COUNT(*) FROM employees e WHERE e.warehouse_id = w.id) AS employee_count,
		       (SELECT COALESCE(SUM(s.quantity), 0) FROM stocks s WHERE s.warehouse_id = w.id) AS stock_units
		FROM warehouses w
		ORDER BY w.name, w.id
	`); err != nil {
		return nil, err
	}

	warehouses := make([]WarehouseView, 0, len(rows))
	for _, row := range rows {
		id, err := restoreID(row.ID)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, WarehouseView{
			ID:            id,
			Name:          row.Name,
			Address:       row.Address,
			EmployeeCount: row.EmployeeCount,
			StockUnits:    row.StockUnits,
		})
	}
	return warehouses, nil
}
