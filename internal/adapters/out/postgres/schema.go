package postgres

import (
	"fmt"

	"retail/internal/adapters/out/postgres/customerrepo"
	"retail/internal/adapters/out/postgres/deliveryrepo"
	"retail/internal/adapters/out/postgres/employeerepo"
	"retail/internal/adapters/out/postgres/productrepo"
	"retail/internal/adapters/out/postgres/salerepo"
	"retail/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	name      string
	table     string
	column    string
	reference string
}

// foreignKeys keep references between aggregates valid. Child tables of an
// aggregate get theirs from the GORM associations.
var foreignKeys = []foreignKey{
	{"fk_employees_warehouse", "employees", "warehouse_id", "warehouses"},
	{"fk_stocks_product", "stocks", "product_id", "products"},
	{"fk_stocks_warehouse", "stocks", "warehouse_id", "warehouses"},
	{"fk_sales_cashier", "sales", "cashier_id", "employees"},
	{"fk_sales_warehouse", "sales", "warehouse_id", "warehouses"},
	{"fk_sale_lines_product", "sale_lines", "product_id", "products"},
	{"fk_deliveries_sale", "deliveries", "sale_id", "sales"},
	{"fk_deliveries_customer", "deliveries", "customer_id", "customers"},
	{"fk_deliveries_warehouse", "deliveries", "warehouse_id", "warehouses"},
	{"fk_deliveries_storekeeper", "deliveries", "storekeeper_id", "employees"},
	{"fk_delivery_groups_storekeeper", "delivery_groups", "storekeeper_id", "employees"},
	{"fk_delivery_groups_warehouse", "delivery_groups", "warehouse_id", "warehouses"},
	{"fk_delivery_group_items_delivery", "delivery_group_items", "delivery_id", "deliveries"},
}

// Models lists every persisted DTO in creation order.
func Models() []any {
	return []any{
		&warehouserepo.WarehouseDTO{},
		&employeerepo.EmployeeDTO{},
		&productrepo.ProductDTO{},
		&productrepo.StockDTO{},
		&customerrepo.CustomerDTO{},
		&salerepo.SaleDTO{},
		&salerepo.SaleLineDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryGroupDTO{},
		&deliveryrepo.DeliveryGroupItemDTO{},
	}
}

// Migrate creates or updates the schema. It is safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		var exists bool
		if err := db.Raw(
			"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", fk.name,
		).Scan(&exists).Error; err != nil {
			return err
		}
		if exists {
			continue
		}

		stmt := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id)",
			fk.table, fk.name, fk.column, fk.reference,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add %s: %w", fk.name, err)
		}
	}

	return nil
}
