// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"retail/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	SaleRepoFactory interface {
		SaleRepository() ports.SaleRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	DeliveryGroupRepoFactory interface {
		DeliveryGroupRepository() ports.DeliveryGroupRepository
	}

	// EmployeeUoW serves sign-in and password changes.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// StaffUoW manages warehouses and the people working in them. Sales are
	// consulted before an employee is removed.
	StaffUoW interface {
		TxManager
		WarehouseRepoFactory
		EmployeeRepoFactory
		SaleRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// CatalogUoW manages products and their warehouse counters.
	CatalogUoW interface {
		TxManager
		WarehouseRepoFactory
		ProductRepoFactory
		StockRepoFactory
		SaleRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CustomerUoW manages buyer records.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
		DeliveryRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// DeliveryUoW drives the delivery and van group workflow.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		DeliveryGroupRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW spans every aggregate. Used by the till, where one receipt touches
	// stock, customers and deliveries at once.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   saleRepo := uow.SaleRepository()
	//   stockRepo := uow.StockRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ProductRepoFactory
		StockRepoFactory
		CustomerRepoFactory
		SaleRepoFactory
		DeliveryRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
