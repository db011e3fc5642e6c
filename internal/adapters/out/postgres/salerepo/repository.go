package salerepo

import (
	"context"
	"errors"

	"retail/internal/adapters/out/postgres/pgerr"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/sale"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSaleRepository implements ports.SaleRepository using GORM.
type GormSaleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSaleRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleRepository {
	return &GormSaleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the receipt together with its lines.
func (r *GormSaleRepository) Add(ctx context.Context, aggregate *sale.Sale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "sale", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status only. Lines never change after checkout.
func (r *GormSaleRepository) Update(ctx context.Context, aggregate *sale.Sale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SaleDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("sale", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSaleRepository) Get(ctx context.Context, id kernel.UUID) (*sale.Sale, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SaleDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormSaleRepository) ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error) {
	if err := productID.Validate(); err != nil {
		return false, err
	}
	return r.exists(ctx, &SaleLineDTO{}, "product_id = ?", productID.Bytes())
}

func (r *GormSaleRepository) ExistsForCashier(ctx context.Context, employeeID kernel.UUID) (bool, error) {
	if err := employeeID.Validate(); err != nil {
		return false, err
	}
	return r.exists(ctx, &SaleDTO{}, "cashier_id = ?", employeeID.Bytes())
}

func (r *GormSaleRepository) exists(ctx context.Context, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where(query, args...).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
