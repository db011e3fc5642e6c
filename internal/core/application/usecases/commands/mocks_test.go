package commands_test

import (
	"context"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/model/sale"
	"retail/internal/core/domain/model/warehouse"
	"retail/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// getOrNil returns the first mocked value as T, tolerating a nil return.
func getOrNil[T any](args mock.Arguments) T {
	var zero T
	if v, ok := args.Get(0).(T); ok {
		return v
	}
	return zero
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}
func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}
func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	return getOrNil[*warehouse.Warehouse](args), args.Error(1)
}
func (m *MockWarehouseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	return getOrNil[*employee.Employee](args), args.Error(1)
}
func (m *MockEmployeeRepository) GetByLogin(ctx context.Context, login string) (*employee.Employee, error) {
	args := m.Called(ctx, login)
	return getOrNil[*employee.Employee](args), args.Error(1)
}
func (m *MockEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockEmployeeRepository) CountInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int64, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	return getOrNil[*product.Product](args), args.Error(1)
}
func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	return getOrNil[[]*product.Product](args), args.Error(1)
}
func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Get(ctx context.Context, productID, warehouseID kernel.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, productID, warehouseID)
	return getOrNil[*inventory.Stock](args), args.Error(1)
}
func (m *MockStockRepository) GetInWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
	productIDs []kernel.UUID,
) ([]*inventory.Stock, error) {
	args := m.Called(ctx, warehouseID, productIDs)
	return getOrNil[[]*inventory.Stock](args), args.Error(1)
}
func (m *MockStockRepository) Save(ctx context.Context, s *inventory.Stock) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStockRepository) DeleteByProduct(ctx context.Context, productID kernel.UUID) error {
	return m.Called(ctx, productID).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	return getOrNil[*customer.Customer](args), args.Error(1)
}
func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	return getOrNil[*customer.Customer](args), args.Error(1)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSaleRepository struct{ mock.Mock }

func (m *MockSaleRepository) Add(ctx context.Context, s *sale.Sale) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSaleRepository) Get(ctx context.Context, id kernel.UUID) (*sale.Sale, error) {
	args := m.Called(ctx, id)
	return getOrNil[*sale.Sale](args), args.Error(1)
}
func (m *MockSaleRepository) ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}
func (m *MockSaleRepository) ExistsForCashier(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	return getOrNil[*delivery.Delivery](args), args.Error(1)
}
func (m *MockDeliveryRepository) GetBySale(ctx context.Context, saleID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, saleID)
	return getOrNil[[]*delivery.Delivery](args), args.Error(1)
}
func (m *MockDeliveryRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryGroupRepository struct{ mock.Mock }

func (m *MockDeliveryGroupRepository) Add(ctx context.Context, g *deliverygroup.Group) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockDeliveryGroupRepository) Update(ctx context.Context, g *deliverygroup.Group) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockDeliveryGroupRepository) Get(ctx context.Context, id kernel.UUID) (*deliverygroup.Group, error) {
	args := m.Called(ctx, id)
	return getOrNil[*deliverygroup.Group](args), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package. Repository
// accessors return the repositories set on the struct.
type MockUoW struct {
	mock.Mock

	Warehouses *MockWarehouseRepository
	Employees  *MockEmployeeRepository
	Products   *MockProductRepository
	Stocks     *MockStockRepository
	Customers  *MockCustomerRepository
	Sales      *MockSaleRepository
	Deliveries *MockDeliveryRepository
	Groups     *MockDeliveryGroupRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Warehouses: new(MockWarehouseRepository),
		Employees:  new(MockEmployeeRepository),
		Products:   new(MockProductRepository),
		Stocks:     new(MockStockRepository),
		Customers:  new(MockCustomerRepository),
		Sales:      new(MockSaleRepository),
		Deliveries: new(MockDeliveryRepository),
		Groups:     new(MockDeliveryGroupRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository { return m.Warehouses }
func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository { return m.Employees }
func (m *MockUoW) ProductRepository() ports.ProductRepository { return m.Products }
func (m *MockUoW) StockRepository() ports.StockRepository { return m.Stocks }
func (m *MockUoW) CustomerRepository() ports.CustomerRepository { return m.Customers }
func (m *MockUoW) SaleRepository() ports.SaleRepository { return m.Sales }
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository { return m.Deliveries }
func (m *MockUoW) DeliveryGroupRepository() ports.DeliveryGroupRepository { return m.Groups }

// AssertAll checks the expectations of the unit of work and every repository.
func (m *MockUoW) AssertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.Warehouses.AssertExpectations(t)
	m.Employees.AssertExpectations(t)
	m.Products.AssertExpectations(t)
	m.Stocks.AssertExpectations(t)
	m.Customers.AssertExpectations(t)
	m.Sales.AssertExpectations(t)
	m.Deliveries.AssertExpectations(t)
	m.Groups.AssertExpectations(t)
}

// expectCommit registers a successful transaction: Begin, Commit, then the
// deferred Rollback.
func (m *MockUoW) expectCommit() {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Commit", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Once()
}

// expectRollback registers a transaction that ends without commit.
func (m *MockUoW) expectRollback() {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Once()
}

type employeeFactory struct{ uow *MockUoW }

func (f employeeFactory) Create() commands.EmployeeUoW { return f.uow }

type staffFactory struct{ uow *MockUoW }

func (f staffFactory) Create() commands.StaffUoW { return f.uow }

type catalogFactory struct{ uow *MockUoW }

func (f catalogFactory) Create() commands.CatalogUoW { return f.uow }

type customerFactory struct{ uow *MockUoW }

func (f customerFactory) Create() commands.CustomerUoW { return f.uow }

type deliveryFactory struct{ uow *MockUoW }

func (f deliveryFactory) Create() commands.DeliveryUoW { return f.uow }

type fullFactory struct{ uow *MockUoW }

func (f fullFactory) Create() commands.UoW { return f.uow }
