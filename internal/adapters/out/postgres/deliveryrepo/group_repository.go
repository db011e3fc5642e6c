package deliveryrepo

import (
	"context"
	"errors"

	"retail/internal/adapters/out/postgres/pgerr"
	"retail/internal/core/domain/model/deliverygroup"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryGroupRepository implements ports.DeliveryGroupRepository using
// GORM. Group membership lives in delivery_group_items.
type GormDeliveryGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDeliveryGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryGroupRepository {
	return &GormDeliveryGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryGroupRepository) Add(ctx context.Context, aggregate *deliverygroup.Group) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "delivery group", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the group row and inserts the deliveries loaded since it was
// read. A delivery that already sits in another group fails with
// ObjectAlreadyExistsError.
func (r *GormDeliveryGroupRepository) Update(ctx context.Context, aggregate *deliverygroup.Group) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DeliveryGroupDTO{}).Where("id = ?", dto.ID).Select("*").Omit("Items").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery group", aggregate.ID().String())
	}

	var stored []uuid.UUID
	if err := db.Model(&DeliveryGroupItemDTO{}).Where("group_id = ?", dto.ID).Pluck("delivery_id", &stored).Error; err != nil {
		return err
	}
	known := make(map[uuid.UUID]struct{}, len(stored))
	for _, id := range stored {
		known[id] = struct{}{}
	}

	for _, item := range dto.Items {
		if _, ok := known[item.DeliveryID]; ok {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			return pgerr.Translate(err, "delivery", item.DeliveryID.String())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryGroupRepository) Get(ctx context.Context, id kernel.UUID) (*deliverygroup.Group, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryGroupDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery group", id.String())
		}
		return nil, err
	}

	return groupToDomain(dto)
}
