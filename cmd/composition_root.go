package cmd

import (
	"log/slog"

	httpin "retail/internal/adapters/in/http"
	"retail/internal/adapters/in/ws"
	"retail/internal/adapters/out/postgres"
	"retail/internal/adapters/out/token"
	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/jobs"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	readDB     *sqlx.DB
	board      *ws.Hub
	issuer     *token.Issuer
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, readDB *sqlx.DB, logger *slog.Logger) (*CompositionRoot, error) {
	issuer, err := token.NewIssuer(configs.JWTSecret, configs.TokenTTL)
	if err != nil {
		return nil, err
	}

	board := ws.NewHub(logger)
	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		readDB:     readDB,
		board:      board,
		issuer:     issuer,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, board),
	}, nil
}

func (c *CompositionRoot) Board() *ws.Hub {
	return c.board
}

func (c *CompositionRoot) employeeUoWFactory() commands.EmployeeUoWFactory {
	return FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tillUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCommands() httpin.Commands {
	staff := c.staffUoWFactory()
	catalog := c.catalogUoWFactory()
	customers := c.customerUoWFactory()
	deliveries := c.deliveryUoWFactory()
	till := c.tillUoWFactory()

	return httpin.Commands{
		Login: commands.NewLoginCommandHandler(c.employeeUoWFactory(), c.issuer),

		CreateWarehouse: commands.NewCreateWarehouseCommandHandler(staff),
		UpdateWarehouse: commands.NewUpdateWarehouseCommandHandler(staff),
		DeleteWarehouse: commands.NewDeleteWarehouseCommandHandler(staff),

		RegisterEmployee: commands.NewRegisterEmployeeCommandHandler(staff),
		UpdateEmployee:   commands.NewUpdateEmployeeCommandHandler(staff),
		DeleteEmployee:   commands.NewDeleteEmployeeCommandHandler(staff),

		CreateProduct: commands.NewCreateProductCommandHandler(catalog),
		UpdateProduct: commands.NewUpdateProductCommandHandler(catalog),
		DeleteProduct: commands.NewDeleteProductCommandHandler(catalog),
		SetStock:      commands.NewSetStockCommandHandler(catalog),

		CreateCustomer: commands.NewCreateCustomerCommandHandler(customers),
		UpdateCustomer: commands.NewUpdateCustomerCommandHandler(customers),
		DeleteCustomer: commands.NewDeleteCustomerCommandHandler(customers),

		Checkout:   commands.NewCheckoutCommandHandler(till),
		CancelSale: commands.NewCancelSaleCommandHandler(till),

		TakeDelivery:     commands.NewTakeDeliveryCommandHandler(deliveries),
		CompleteDelivery: commands.NewCompleteDeliveryCommandHandler(deliveries),
		CancelDelivery:   commands.NewCancelDeliveryCommandHandler(deliveries),

		CreateDeliveryGroup:   commands.NewCreateDeliveryGroupCommandHandler(deliveries),
		AddDeliveryToGroup:    commands.NewAddDeliveryToGroupCommandHandler(deliveries),
		CompleteDeliveryGroup: commands.NewCompleteDeliveryGroupCommandHandler(deliveries),
	}
}

func (c *CompositionRoot) CreateQueries() httpin.Queries {
	return httpin.Queries{
		GetWarehouses:       queries.NewGetWarehousesQueryHandler(c.readDB),
		GetEmployees:        queries.NewGetEmployeesQueryHandler(c.readDB),
		GetProducts:         queries.NewGetProductsQueryHandler(c.readDB),
		GetLowStock:         queries.NewGetLowStockQueryHandler(c.readDB),
		GetCustomers:        queries.NewGetCustomersQueryHandler(c.readDB),
		FindCustomerByPhone: queries.NewFindCustomerByPhoneQueryHandler(c.readDB),
		GetSalesReport:      queries.NewGetSalesReportQueryHandler(c.readDB),
		GetDeliveries:       queries.NewGetDeliveriesQueryHandler(c.readDB),
		GetDeliveryGroups:   queries.NewGetDeliveryGroupsQueryHandler(c.readDB),
		GetGroupDeliveries:  queries.NewGetGroupDeliveriesQueryHandler(c.readDB),
	}
}

// ResolveActor turns a bearer token into the employee acting on the API.
func (c *CompositionRoot) ResolveActor(raw string) (commands.Actor, error) {
	claims, err := c.issuer.Parse(raw)
	if err != nil {
		return commands.Actor{}, err
	}
	id, role, warehouseID, err := claims.Identity()
	if err != nil {
		return commands.Actor{}, err
	}
	return commands.NewActor(id, role, warehouseID)
}

func (c *CompositionRoot) CreateRouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		Server:       httpin.NewServer(c.CreateCommands(), c.CreateQueries()),
		Resolve:      c.ResolveActor,
		Board:        c.board,
		Logger:       c.logger.With("component", "http"),
		AllowOrigins: c.configs.CORSOrigins,
		Debug:        c.configs.Debug,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetLowStockQueryHandler(c.readDB),
		queries.NewGetDeliveriesQueryHandler(c.readDB),
		c.configs.Jobs,
		c.logger,
	)
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
