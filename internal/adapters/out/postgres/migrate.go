package postgres

import (
	"gorm.io/gorm"

	"tourdispatch/internal/adapters/out/postgres/fleetrepo"
	"tourdispatch/internal/adapters/out/postgres/orderrepo"
	"tourdispatch/internal/adapters/out/postgres/proofrepo"
	"tourdispatch/internal/adapters/out/postgres/stopplanrepo"
	"tourdispatch/internal/adapters/out/postgres/tourrepo"
)

// Models lists every table the dispatcher reads or writes.
func Models() []any {
	return []any{
		&tourrepo.TourDTO{},
		&tourrepo.StopDTO{},
		&stopplanrepo.StopPlanDTO{},
		&orderrepo.OrderDTO{},
		&fleetrepo.DriverDTO{},
		&fleetrepo.VehicleDTO{},
		&proofrepo.ProofDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
