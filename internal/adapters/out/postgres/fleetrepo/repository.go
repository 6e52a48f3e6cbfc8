package fleetrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tourdispatch/internal/core/domain/model/fleet"
	"tourdispatch/internal/pkg/errs"
)

// GormDirectory implements ports.DriverDirectory and ports.VehicleDirectory.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (r *GormDirectory) ListDrivers(ctx context.Context) ([]*fleet.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, driverToDomain)
}

func (r *GormDirectory) GetDriver(ctx context.Context, id string) (*fleet.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}
	return driverToDomain(dto)
}

func (r *GormDirectory) ListVehicles(ctx context.Context) ([]*fleet.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, vehicleToDomain)
}

func (r *GormDirectory) GetVehicle(ctx context.Context, id string) (*fleet.Vehicle, error) {
	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id)
		}
		return nil, err
	}
	return vehicleToDomain(dto)
}

func mapAll[D any, M any](dtos []D, convert func(D) (M, error)) ([]M, error) {
	out := make([]M, 0, len(dtos))
	for _, dto := range dtos {
		m, err := convert(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
