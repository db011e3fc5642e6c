package employeerepo

import (
	"context"
	"errors"

	"retail/internal/adapters/out/postgres/pgerr"
	"retail/internal/core/domain/model/employee"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "login", aggregate.Login())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *employee.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "login", aggregate.Login())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "employee", id.String(), "id = ?", id.Bytes())
}

func (r *GormEmployeeRepository) GetByLogin(ctx context.Context, login string) (*employee.Employee, error) {
	return r.first(ctx, "login", login, "login = ?", login)
}

func (r *GormEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EmployeeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "employee", id.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", id.String())
	}
	return nil
}

func (r *GormEmployeeRepository) CountInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int64, error) {
	if err := warehouseID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("warehouse_id = ?", warehouseID.Bytes()).Count(&count).Error
	return count, err
}

func (r *GormEmployeeRepository) first(ctx context.Context, param, value string, query string, args ...any) (*employee.Employee, error) {
	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(dto)
}
