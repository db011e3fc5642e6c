// Package postgres provides the GORM implementation of the Unit of Work
// pattern together with schema migration, database bootstrap and seeding.
//
// A unit of work owns one transaction. Every repository it hands out shares
// that transaction, so a command that writes a sale, its stock counters, a
// customer and a delivery either commits all of them or none:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.SaleRepository().Add(ctx, s); err != nil {
//	    return err
//	}
//	if err := uow.StockRepository().Save(ctx, stock); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories report every aggregate they write back to the unit of work.
// After a successful commit the deliveries and delivery groups among them are
// published to the configured ports.DeliveryBoard.
package postgres

import (
	"context"

	"retail/internal/adapters/out/postgres/customerrepo"
	"retail/internal/adapters/out/postgres/deliveryrepo"
	"retail/internal/adapters/out/postgres/employeerepo"
	"retail/internal/adapters/out/postgres/productrepo"
	"retail/internal/adapters/out/postgres/salerepo"
	"retail/internal/adapters/out/postgres/warehouserepo"
	"retail/internal/core/domain/model/delivery"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool. Each call to Create returns an independent transaction scope.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	board ports.DeliveryBoard
}

// NewGormUnitOfWorkFactory creates the factory. board may be nil when
// nobody watches deliveries, as in the CLI.
func NewGormUnitOfWorkFactory(db *gorm.DB, board ports.DeliveryBoard) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, board: board}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		board:             f.board,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for a single business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	board             ports.DeliveryBoard
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the tracked
// deliveries and groups. Returns gorm.ErrInvalidTransaction without an
// active transaction.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publish(ctx)
	return nil
}

// Rollback discards the transaction and the tracked aggregates. After a
// commit it returns gorm.ErrInvalidTransaction, which the deferred calls in
// command handlers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return productrepo.NewGormStockRepository(uow.conn())
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SaleRepository() ports.SaleRepository {
	return salerepo.NewGormSaleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryGroupRepository() ports.DeliveryGroupRepository {
	return deliveryrepo.NewGormDeliveryGroupRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the transaction when one is active, the pool otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publish(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.board == nil {
		return
	}

	for _, t := range tracked {
		switch a := t.Aggregate.(type) {
		case *delivery.Delivery:
			uow.board.DeliveryChanged(ctx, a)
		case *deliverygroup.Group:
			uow.board.GroupChanged(ctx, a)
		}
	}
}
