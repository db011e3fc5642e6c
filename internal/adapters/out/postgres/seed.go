package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"retail/internal/adapters/out/postgres/employeerepo"
	"retail/internal/adapters/out/postgres/productrepo"
	"retail/internal/adapters/out/postgres/warehouserepo"
	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/model/warehouse"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

const MainWarehouseName = "Main warehouse"

// DefaultPasswords are the initial passwords of the built-in accounts.
type DefaultPasswords struct {
	Admin       string
	Cashier     string
	Storekeeper string
}

// Seeder fills an empty database with the records every installation needs
// and, on request, with demo data.
type Seeder struct {
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
	log     *slog.Logger
}

func NewSeeder(db *gorm.DB, log *slog.Logger) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewGormUnitOfWorkFactory(db, nil),
		log:     log.With(slog.String("component", "seeder")),
	}
}

// SeedDefaults creates the main warehouse when there is no warehouse at all
// and one account for each role that has none yet.
func (s *Seeder) SeedDefaults(ctx context.Context, passwords DefaultPasswords) error {
	return s.inTransaction(ctx, func(uow ports.UnitOfWork) error {
		mainID, err := s.mainWarehouse(ctx, uow)
		if err != nil {
			return err
		}

		accounts := []struct {
			login    string
			password string
			fullName string
			role     employee.Role
		}{
			{employee.RootAdminLogin, passwords.Admin, "Administrator", employee.Admin},
			{"cashier", passwords.Cashier, "Cashier", employee.Cashier},
			{"storekeeper", passwords.Storekeeper, "Storekeeper", employee.Storekeeper},
		}

		for _, a := range accounts {
			var count int64
			if err = s.conn(uow).WithContext(ctx).Model(&employeerepo.EmployeeDTO{}).Where("role = ?", int(a.role)).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			e, newErr := employee.NewEmployee(kernel.NewUUID(), a.login, a.password, a.fullName, a.role, mainID, "", "")
			if newErr != nil {
				return fmt.Errorf("default %s: %w", a.role, newErr)
			}
			if err = uow.EmployeeRepository().Add(ctx, e); err != nil {
				return err
			}
			s.log.Info("default account created", slog.String("login", a.login), slog.String("role", a.role.String()))
		}
		return nil
	})
}

type demoProduct struct {
	name     string
	category string
	brand    string
	price    string
	min      int
}

var demoWarehouses = [][2]string{
	{"Lenin street warehouse", "25 Lenin st, Moscow"},
	{"Pushkin street warehouse", "10 Pushkin st, Saint Petersburg"},
	{"South warehouse", "5 Yuzhnaya st, Rostov-on-Don"},
}

var demoProducts = []demoProduct{
	{"Refrigerator Samsung RB37", "Refrigerators", "Samsung", "45999.00", 2},
	{"Refrigerator LG GA-B459", "Refrigerators", "LG", "38999.00", 2},
	{"Refrigerator Bosch KGN36", "Refrigerators", "Bosch", "52999.00", 1},
	{"Washing machine Indesit IWSC 5105", "Washing machines", "Indesit", "21999.00", 3},
	{"Washing machine Samsung WW65", "Washing machines", "Samsung", "32999.00", 2},
	{"Washing machine LG F2J3", "Washing machines", "LG", "41999.00", 2},
	{"TV LG 55NANO766", "TVs", "LG", "54999.00", 2},
	{"TV Samsung QE55Q60", "TVs", "Samsung", "68999.00", 1},
	{"TV Sony KD-55X80", "TVs", "Sony", "72999.00", 1},
	{"Microwave Samsung MG23", "Microwaves", "Samsung", "8999.00", 5},
	{"Microwave LG MS23", "Microwaves", "LG", "10999.00", 4},
	{"Vacuum cleaner Thomas TWIN X10", "Vacuum cleaners", "Thomas", "15999.00", 3},
	{"Vacuum cleaner Samsung VS15", "Vacuum cleaners", "Samsung", "12999.00", 4},
	{"Coffee machine DeLonghi ECAM350", "Coffee machines", "DeLonghi", "34999.00", 2},
	{"Coffee machine Philips EP2220", "Coffee machines", "Philips", "28999.00", 2},
}

// demoStock holds quantities per product: main warehouse first, then the
// demo warehouses in order. Zero means no counter.
var demoStock = [][4]int{
	{5, 3, 0, 0}, {3, 4, 0, 0}, {2, 0, 0, 1},
	{8, 6, 0, 0}, {4, 3, 0, 0}, {3, 0, 0, 2},
	{6, 4, 0, 0}, {2, 0, 0, 1}, {1, 0, 0, 1},
	{10, 8, 0, 0}, {7, 0, 0, 5},
	{5, 4, 0, 0}, {4, 0, 0, 3},
	{3, 2, 0, 0}, {4, 0, 0, 2},
}

var demoCustomers = [][4]string{
	{"Andrey Semenov", "79167778899", "semenov@mail.ru", "15 Mira st, apt 34, Moscow"},
	{"Maria Kovaleva", "79168889900", "kovaleva@yandex.ru", "45 Leningradsky ave, apt 12, Moscow"},
	{"Denis Nikolaev", "79169990011", "nikolaev@gmail.com", "23 Sadovaya st, apt 67, Saint Petersburg"},
	{"Ekaterina Orlova", "79161112233", "orlova@mail.ru", "8 Tsentralnaya st, apt 89, Rostov-on-Don"},
	{"Sergey Fedorov", "79162223344", "fedorov@yandex.ru", "33 Pobedy ave, apt 45, Moscow"},
	{"Anna Grigorieva", "79163334455", "grigorieva@gmail.com", "12 Zelenaya st, apt 23, Saint Petersburg"},
}

// SeedDemo adds demo warehouses, appliances, stock and customers. Records
// that already exist by name or phone are left alone.
func (s *Seeder) SeedDemo(ctx context.Context) error {
	return s.inTransaction(ctx, func(uow ports.UnitOfWork) error {
		mainID, err := s.mainWarehouse(ctx, uow)
		if err != nil {
			return err
		}

		warehouseIDs := []kernel.UUID{mainID}
		for _, w := range demoWarehouses {
			id, whErr := s.warehouseByName(ctx, uow, w[0], w[1])
			if whErr != nil {
				return whErr
			}
			warehouseIDs = append(warehouseIDs, id)
		}

		for i, p := range demoProducts {
			productID, prErr := s.productByName(ctx, uow, p)
			if prErr != nil {
				return prErr
			}
			for j, qty := range demoStock[i] {
				if qty == 0 {
					continue
				}
				stock, stErr := inventory.NewStock(productID, warehouseIDs[j], qty)
				if stErr != nil {
					return stErr
				}
				if err = uow.StockRepository().Save(ctx, stock); err != nil {
					return err
				}
			}
		}

		for _, c := range demoCustomers {
			_, getErr := uow.CustomerRepository().GetByPhone(ctx, c[1])
			if getErr == nil {
				continue
			}
			if !isNotFound(getErr) {
				return getErr
			}
			cust, newErr := customer.NewCustomer(kernel.NewUUID(), c[0], c[1], c[2], c[3], time.Now())
			if newErr != nil {
				return newErr
			}
			if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
				return err
			}
		}

		s.log.Info("demo data loaded",
			slog.Int("warehouses", len(warehouseIDs)),
			slog.Int("products", len(demoProducts)),
			slog.Int("customers", len(demoCustomers)),
		)
		return nil
	})
}

func (s *Seeder) inTransaction(ctx context.Context, fn func(uow ports.UnitOfWork) error) error {
	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// conn reaches the transaction of uow for lookups no repository offers.
func (s *Seeder) conn(uow ports.UnitOfWork) *gorm.DB {
	if g, ok := uow.(*GormUnitOfWork); ok {
		return g.conn()
	}
	return s.db
}

// mainWarehouse returns the warehouse named MainWarehouseName, or any
// warehouse when it was renamed. An empty table gets a new main warehouse.
func (s *Seeder) mainWarehouse(ctx context.Context, uow ports.UnitOfWork) (kernel.UUID, error) {
	db := s.conn(uow).WithContext(ctx)

	var dto warehouserepo.WarehouseDTO
	err := db.Where("name = ?", MainWarehouseName).First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Order("name").First(&dto).Error
	}
	if err == nil {
		return kernel.UUIDFromBytes(dto.ID[:])
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.UUID{}, err
	}

	w, err := warehouse.NewWarehouse(kernel.NewUUID(), MainWarehouseName, "Main warehouse address")
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return kernel.UUID{}, err
	}
	s.log.Info("main warehouse created", slog.String("id", w.ID().String()))
	return w.ID(), nil
}

func (s *Seeder) warehouseByName(ctx context.Context, uow ports.UnitOfWork, name, address string) (kernel.UUID, error) {
	var dto warehouserepo.WarehouseDTO
	err := s.conn(uow).WithContext(ctx).Where("name = ?", name).First(&dto).Error
	if err == nil {
		return kernel.UUIDFromBytes(dto.ID[:])
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.UUID{}, err
	}

	w, err := warehouse.NewWarehouse(kernel.NewUUID(), name, address)
	if err != nil {
		return kernel.UUID{}, err
	}
	return w.ID(), uow.WarehouseRepository().Add(ctx, w)
}

func (s *Seeder) productByName(ctx context.Context, uow ports.UnitOfWork, p demoProduct) (kernel.UUID, error) {
	var dto productrepo.ProductDTO
	err := s.conn(uow).WithContext(ctx).Where("name = ?", p.name).First(&dto).Error
	if err == nil {
		return kernel.UUIDFromBytes(dto.ID[:])
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.UUID{}, err
	}

	price, err := kernel.MoneyFromString(p.price)
	if err != nil {
		return kernel.UUID{}, err
	}
	pr, err := product.NewProduct(kernel.NewUUID(), p.name, p.category, p.brand, price, p.min)
	if err != nil {
		return kernel.UUID{}, err
	}
	return pr.ID(), uow.ProductRepository().Add(ctx, pr)
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}
