package http

import (
	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/generated/servers"
)

// Commands groups the write side handlers the API drives.
type Commands struct {
	Login commands.LoginCommandHandler

	CreateWarehouse commands.CreateWarehouseCommandHandler
	UpdateWarehouse commands.UpdateWarehouseCommandHandler
	DeleteWarehouse commands.DeleteWarehouseCommandHandler

	RegisterEmployee commands.RegisterEmployeeCommandHandler
	UpdateEmployee   commands.UpdateEmployeeCommandHandler
	DeleteEmployee   commands.DeleteEmployeeCommandHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler
	SetStock      commands.SetStockCommandHandler

	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	Checkout   commands.CheckoutCommandHandler
	CancelSale commands.CancelSaleCommandHandler

	TakeDelivery     commands.TakeDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	CancelDelivery   commands.CancelDeliveryCommandHandler

	CreateDeliveryGroup   commands.CreateDeliveryGroupCommandHandler
	AddDeliveryToGroup    commands.AddDeliveryToGroupCommandHandler
	CompleteDeliveryGroup commands.CompleteDeliveryGroupCommandHandler
}

// Queries groups the read side handlers.
type Queries struct {
	GetWarehouses       queries.GetWarehousesQueryHandler
	GetEmployees        queries.GetEmployeesQueryHandler
	GetProducts         queries.GetProductsQueryHandler
	GetLowStock         queries.GetLowStockQueryHandler
	GetCustomers        queries.GetCustomersQueryHandler
	FindCustomerByPhone queries.FindCustomerByPhoneQueryHandler
	GetSalesReport      queries.GetSalesReportQueryHandler
	GetDeliveries       queries.GetDeliveriesQueryHandler
	GetDeliveryGroups   queries.GetDeliveryGroupsQueryHandler
	GetGroupDeliveries  queries.GetGroupDeliveriesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(cmds Commands, qs Queries) *Server {
	return &Server{commands: cmds, queries: qs}
}
