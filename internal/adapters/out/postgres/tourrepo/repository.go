package tourrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/pkg/errs"
)

// GormTourRepository implements ports.TourRepository using GORM.
type GormTourRepository struct {
	db      *gorm.DB
	locking bool
}

// NewGormTourRepository creates a repository over db. With locking set, Get
// takes a row lock that is held until the surrounding transaction ends.
func NewGormTourRepository(db *gorm.DB, locking bool) *GormTourRepository {
	return &GormTourRepository{db: db, locking: locking}
}

func (r *GormTourRepository) Get(ctx context.Context, key tour.Key) (*tour.Tour, error) {
	db := r.db.WithContext(ctx)
	if r.locking {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto TourDTO
	if err := db.First(&dto, "date = ? AND city = ?", key.Date.Time(), key.City).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tour", key.String())
		}
		return nil, err
	}

	var stops []StopDTO
	if err := r.db.WithContext(ctx).
		Where("tour_date = ? AND tour_city = ?", key.Date.Time(), key.City).
		Find(&stops).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, stops)
}

// Save upserts the tour row and replaces its stop rows.
func (r *GormTourRepository) Save(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, stops := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "city"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	if err = db.Where("tour_date = ? AND tour_city = ?", dto.Date, dto.City).Delete(&StopDTO{}).Error; err != nil {
		return err
	}
	if len(stops) == 0 {
		return nil
	}
	return db.Create(&stops).Error
}

func (r *GormTourRepository) ListByDate(ctx context.Context, date kernel.Date) ([]*tour.Tour, error) {
	var dtos []TourDTO
	if err := r.db.WithContext(ctx).Where("date = ?", date.Time()).Order("city").Find(&dtos).Error; err != nil {
		return nil, err
	}

	var stopDTOs []StopDTO
	if err := r.db.WithContext(ctx).Where("tour_date = ?", date.Time()).Find(&stopDTOs).Error; err != nil {
		return nil, err
	}
	byCity := make(map[string][]StopDTO, len(dtos))
	for _, s := range stopDTOs {
		byCity[s.TourCity] = append(byCity[s.TourCity], s)
	}

	tours := make([]*tour.Tour, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto, byCity[dto.City])
		if err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, nil
}
