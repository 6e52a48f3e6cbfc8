// Package postgres provides the GORM-based Unit of Work over the tour store.
//
// One UnitOfWork wraps one database transaction. Repositories handed out
// while the transaction is open run inside it; tours read through them are
// locked with SELECT ... FOR UPDATE until Commit or Rollback, so a second
// dispatcher instance editing the same tour waits instead of overwriting.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	t, err := uow.TourRepository().Get(ctx, key)
//	// ... change t
//	if err := uow.TourRepository().Save(ctx, t); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"tourdispatch/internal/adapters/out/postgres/stopplanrepo"
	"tourdispatch/internal/adapters/out/postgres/tourrepo"
	"tourdispatch/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work. Instances are not safe for concurrent
// use; each command takes its own.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling it again while one is open is a no-op.
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

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TourRepository runs inside the open transaction and locks the rows it
// reads. Without a transaction it reads the pool directly, unlocked.
func (uow *GormUnitOfWork) TourRepository() ports.TourRepository {
	if uow.tx != nil {
		return tourrepo.NewGormTourRepository(uow.tx, true)
	}
	return tourrepo.NewGormTourRepository(uow.db, false)
}

func (uow *GormUnitOfWork) StopPlanRepository() ports.StopPlanRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return stopplanrepo.NewGormStopPlanRepository(db)
}
