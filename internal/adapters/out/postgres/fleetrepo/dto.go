// Package fleetrepo reads drivers and vehicles from the ERP-synchronised
// directory tables.
package fleetrepo

import "tourdispatch/internal/core/domain/model/fleet"

type DriverDTO struct {
	ID   string `gorm:"type:varchar(64);primaryKey"`
	Name string `gorm:"type:varchar(255);not null;default:''"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type VehicleDTO struct {
	ID               string `gorm:"type:varchar(64);primaryKey"`
	Description      string `gorm:"type:varchar(255);not null;default:''"`
	Plate            string `gorm:"type:varchar(32);not null;default:''"`
	UnderMaintenance bool   `gorm:"not null;default:false"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func driverToDomain(dto DriverDTO) (*fleet.Driver, error) {
	return fleet.NewDriver(dto.ID, dto.Name)
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	return fleet.NewVehicle(dto.ID, dto.Description, dto.Plate, dto.UnderMaintenance)
}
