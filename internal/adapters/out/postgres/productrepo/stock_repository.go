package productrepo

import (
	"context"
	"errors"
	"fmt"

	"retail/internal/adapters/out/postgres/pgerr"
	"retail/internal/core/domain/model/inventory"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements ports.StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) Get(ctx context.Context, productID, warehouseID kernel.UUID) (*inventory.Stock, error) {
	if err := errors.Join(productID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}

	var dto StockDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_id = ? AND warehouse_id = ?", productID.Bytes(), warehouseID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", fmt.Sprintf("%s@%s", productID, warehouseID))
		}
		return nil, err
	}

	return stockToDomain(dto)
}

func (r *GormStockRepository) GetInWarehouse(
	ctx context.Context,
	warehouseID kernel.UUID,
	productIDs []kernel.UUID,
) ([]*inventory.Stock, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return []*inventory.Stock{}, nil
	}

	var dtos []StockDTO
	err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND product_id IN ?", warehouseID.Bytes(), rawIDs(productIDs)).
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	stocks := make([]*inventory.Stock, 0, len(dtos))
	for _, dto := range dtos {
		s, err := stockToDomain(dto)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, nil
}

func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	if err := stock.Validate(); err != nil {
		return err
	}

	dto := stockFromDomain(stock)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "warehouse_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&dto).Error
	if err != nil {
		return pgerr.Translate(err, "stock", stock.ProductID().String())
	}
	return nil
}

func (r *GormStockRepository) DeleteByProduct(ctx context.Context, productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&StockDTO{}, "product_id = ?", productID.Bytes()).Error
}
