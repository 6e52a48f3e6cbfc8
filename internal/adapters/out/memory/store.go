// Package memory keeps tours and stop plans in process memory. Writes made
// through a unit of work are staged and applied atomically on Commit, which
// gives handlers the same apply-or-nothing behaviour as the PostgreSQL
// adapter.
package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/schedule"
	"tourdispatch/internal/core/domain/model/tour"
	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/errs"
)

var ErrNoTransaction = errors.New("no active transaction")

// tourRecord is the stored form of a tour. Aggregates are rebuilt on every
// read so that callers never share state with the store.
type tourRecord struct {
	key            tour.Key
	stops          []tour.Stop
	driverID       string
	vehicleID      string
	validated      bool
	includeReturns bool
	closed         bool
}

func recordOf(t *tour.Tour) tourRecord {
	return tourRecord{
		key:            t.Key(),
		stops:          t.Stops(),
		driverID:       t.DriverID(),
		vehicleID:      t.VehicleID(),
		validated:      t.IsValidated(),
		includeReturns: t.IncludeReturns(),
		closed:         t.IsClosed(),
	}
}

func (r tourRecord) restore() (*tour.Tour, error) {
	return tour.RestoreTour(r.key, r.stops, r.driverID, r.vehicleID, r.validated, r.includeReturns, r.closed)
}

func storageKey(key tour.Key) string {
	return key.Date.String() + "|" + key.City
}

// Store is the shared state. It implements ports.UnitOfWorkFactory.
type Store struct {
	mu    sync.RWMutex
	tours map[string]tourRecord
	plans map[string][]schedule.StopPlan
}

func NewStore() *Store {
	return &Store{
		tours: make(map[string]tourRecord),
		plans: make(map[string][]schedule.StopPlan),
	}
}

func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// UnitOfWork stages writes until Commit.
type UnitOfWork struct {
	store        *Store
	active       bool
	tours        map[string]tourRecord
	plans        map[string][]schedule.StopPlan
	purgeBefore  kernel.Date
	purgePending bool
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.active = true
	u.tours = make(map[string]tourRecord)
	u.plans = make(map[string][]schedule.StopPlan)
	u.purgePending = false
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, r := range u.tours {
		s.tours[k] = r
	}
	for k, p := range u.plans {
		if len(p) == 0 {
			delete(s.plans, k)
			continue
		}
		s.plans[k] = p
	}
	if u.purgePending {
		for k, plans := range s.plans {
			s.plans[k] = slices.DeleteFunc(plans, func(p schedule.StopPlan) bool {
				return p.Date.Before(u.purgeBefore)
			})
			if len(s.plans[k]) == 0 {
				delete(s.plans, k)
			}
		}
	}

	u.active = false
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.active = false
	u.tours, u.plans = nil, nil
	u.purgePending = false
	return nil
}

func (u *UnitOfWork) TourRepository() ports.TourRepository {
	return tourRepository{uow: u}
}

func (u *UnitOfWork) StopPlanRepository() ports.StopPlanRepository {
	return stopPlanRepository{uow: u}
}

type tourRepository struct {
	uow *UnitOfWork
}

func (r tourRepository) Get(_ context.Context, key tour.Key) (*tour.Tour, error) {
	k := storageKey(key)
	if r.uow.active {
		if rec, ok := r.uow.tours[k]; ok {
			return rec.restore()
		}
	}

	r.uow.store.mu.RLock()
	rec, ok := r.uow.store.tours[k]
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("tour", key.String())
	}
	return rec.restore()
}

func (r tourRepository) Save(_ context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoTransaction
	}
	r.uow.tours[storageKey(aggregate.Key())] = recordOf(aggregate)
	return nil
}

func (r tourRepository) ListByDate(_ context.Context, date kernel.Date) ([]*tour.Tour, error) {
	records := make(map[string]tourRecord)

	r.uow.store.mu.RLock()
	for k, rec := range r.uow.store.tours {
		if rec.key.Date.Equal(date) {
			records[k] = rec
		}
	}
	r.uow.store.mu.RUnlock()

	if r.uow.active {
		for k, rec := range r.uow.tours {
			if rec.key.Date.Equal(date) {
				records[k] = rec
			}
		}
	}

	tours := make([]*tour.Tour, 0, len(records))
	for _, rec := range records {
		t, err := rec.restore()
		if err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	slices.SortFunc(tours, func(a, b *tour.Tour) int {
		return strings.Compare(a.Key().City, b.Key().City)
	})
	return tours, nil
}

type stopPlanRepository struct {
	uow *UnitOfWork
}

func (r stopPlanRepository) ReplaceForTour(_ context.Context, key tour.Key, plans []schedule.StopPlan) error {
	if !r.uow.active {
		return ErrNoTransaction
	}
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	r.uow.plans[storageKey(key)] = slices.Clone(plans)
	return nil
}

func (r stopPlanRepository) ListForTour(_ context.Context, key tour.Key) ([]schedule.StopPlan, error) {
	k := storageKey(key)
	if r.uow.active {
		if plans, ok := r.uow.plans[k]; ok {
			return slices.Clone(plans), nil
		}
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	return slices.Clone(r.uow.store.plans[k]), nil
}

// DeleteBefore counts the committed plans it will remove on Commit.
func (r stopPlanRepository) DeleteBefore(_ context.Context, date kernel.Date) (int64, error) {
	if !r.uow.active {
		return 0, ErrNoTransaction
	}

	r.uow.store.mu.RLock()
	var n int64
	for _, plans := range r.uow.store.plans {
		for _, p := range plans {
			if p.Date.Before(date) {
				n++
			}
		}
	}
	r.uow.store.mu.RUnlock()

	r.uow.purgeBefore = date
	r.uow.purgePending = true
	return n, nil
}
