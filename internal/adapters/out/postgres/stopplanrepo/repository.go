package stopplanrepo

import (
	"context"

	"gorm.io/gorm"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/schedule"
	"tourdispatch/internal/core/domain/model/tour"
)

// GormStopPlanRepository implements ports.StopPlanRepository using GORM.
type GormStopPlanRepository struct {
	db *gorm.DB
}

func NewGormStopPlanRepository(db *gorm.DB) *GormStopPlanRepository {
	return &GormStopPlanRepository{db: db}
}

// ReplaceForTour deletes the tour's previous plans and inserts plans.
func (r *GormStopPlanRepository) ReplaceForTour(ctx context.Context, key tour.Key, plans []schedule.StopPlan) error {
	dtos := make([]StopPlanDTO, 0, len(plans))
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(p))
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("date = ? AND city = ?", key.Date.Time(), key.City).Delete(&StopPlanDTO{}).Error; err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	return db.Create(&dtos).Error
}

func (r *GormStopPlanRepository) ListForTour(ctx context.Context, key tour.Key) ([]schedule.StopPlan, error) {
	var dtos []StopPlanDTO
	if err := r.db.WithContext(ctx).
		Where("date = ? AND city = ?", key.Date.Time(), key.City).
		Order("sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	plans := make([]schedule.StopPlan, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// DeleteBefore removes every plan dated strictly before date.
func (r *GormStopPlanRepository) DeleteBefore(ctx context.Context, date kernel.Date) (int64, error) {
	result := r.db.WithContext(ctx).Where("date < ?", date.Time()).Delete(&StopPlanDTO{})
	return result.RowsAffected, result.Error
}
