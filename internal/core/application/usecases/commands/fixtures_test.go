package commands_test

import (
	"testing"
	"time"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/model/sale"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role employee.Role, warehouseID kernel.UUID) commands.Actor {
	t.Helper()
	a, err := commands.NewActor(kernel.NewUUID(), role, warehouseID)
	require.NoError(t, err)
	return a
}

func newEmployee(t *testing.T, login, password string, role employee.Role) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(kernel.NewUUID(), login, password, "Test "+login, role, kernel.NewUUID(), "", "")
	require.NoError(t, err)
	return e
}

func newProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), name, "Appliances", "", m, 2)
	require.NoError(t, err)
	return p
}

func newStock(t *testing.T, productID, warehouseID kernel.UUID, qty int) *inventory.Stock {
	t.Helper()
	s, err := inventory.NewStock(productID, warehouseID, qty)
	require.NoError(t, err)
	return s
}

func newSale(t *testing.T, warehouseID kernel.UUID, lines ...sale.Line) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale(kernel.NewUUID(), kernel.NewUUID(), warehouseID, lines, time.Now())
	require.NoError(t, err)
	return s
}

func newLine(t *testing.T, productID kernel.UUID, qty int) sale.Line {
	t.Helper()
	l, err := sale.NewLine(productID, qty, kernel.ZeroMoney())
	require.NoError(t, err)
	return l
}

func newDelivery(t *testing.T, warehouseID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), warehouseID, "Mira 5", "", time.Now(),
	)
	require.NoError(t, err)
	return d
}
