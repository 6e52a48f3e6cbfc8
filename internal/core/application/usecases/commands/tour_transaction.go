package commands

import (
	"context"
	"errors"
	"fmt"

	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/errs"
)

var ErrLockerIsRequired = errors.New("tour locker is required")

// tourWork applies one change to a loaded tour. Returning an error discards
// the change.
type tourWork func(ctx context.Context, uow UoW, t *tour.Tour) error

// tourTransaction runs tourWork under the tour lock inside one unit of work.
type tourTransaction struct {
	uowFactory UoWFactory
	locker     ports.TourLocker
}

func newTourTransaction(uowFactory UoWFactory, locker ports.TourLocker) tourTransaction {
	return tourTransaction{uowFactory: uowFactory, locker: locker}
}

// run locks the tour key and extraLocks, loads the tour, applies work, saves
// and commits. A missing tour is created when createMissing is set and
// rejected with UnknownTour otherwise. The saved tour is returned.
func (x tourTransaction) run(
	ctx context.Context,
	key tour.Key,
	createMissing bool,
	extraLocks []string,
	work tourWork,
) (*tour.Tour, error) {
	if x.locker == nil {
		return nil, ErrLockerIsRequired
	}

	unlock, err := x.locker.Lock(ctx, append([]string{ports.TourLockKey(key)}, extraLocks...)...)
	if err != nil {
		return nil, fmt.Errorf("lock tour %s: %w", key, err)
	}
	defer unlock()

	uow := x.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := loadTour(ctx, uow, key, createMissing)
	if err != nil {
		return nil, err
	}

	if err = work(ctx, uow, t); err != nil {
		return nil, err
	}

	if err = uow.TourRepository().Save(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

// peek reads the tour without locking it.
func (x tourTransaction) peek(ctx context.Context, key tour.Key) (*tour.Tour, error) {
	uow := x.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return loadTour(ctx, uow, key, false)
}

func loadTour(ctx context.Context, uow UoW, key tour.Key, createMissing bool) (*tour.Tour, error) {
	t, err := uow.TourRepository().Get(ctx, key)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) && createMissing:
		return tour.NewTour(key)
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil, tour.Reject(tour.ReasonUnknownTour, "no tour for "+key.String())
	case err != nil:
		return nil, err
	}
	return t, nil
}
