// Package tourrepo persists tour aggregates. A tour is one row in "tours"
// holding its resources, flags and stop order, plus one "tour_stops" row per
// stop.
package tourrepo

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
)

// ErrStopRowIsMissing reports a tour whose stop order names an order with no
// tour_stops row.
var ErrStopRowIsMissing = errors.New("stop row is missing")

// TourDTO represents the database structure of a tour. The stop sequence is
// kept as a text[] so that reordering is one column update.
type TourDTO struct {
	Date           time.Time      `gorm:"type:date;primaryKey"`
	City           string         `gorm:"type:varchar(255);primaryKey"`
	DriverID       string         `gorm:"type:varchar(64);not null;default:'';index"`
	VehicleID      string         `gorm:"type:varchar(64);not null;default:'';index"`
	Validated      bool           `gorm:"not null;default:false"`
	IncludeReturns bool           `gorm:"not null;default:false"`
	Closed         bool           `gorm:"not null;default:false"`
	StopOrder      pq.StringArray `gorm:"type:text[];not null"`
	UpdatedAt      time.Time
}

func (TourDTO) TableName() string {
	return "tours"
}

// StopDTO is one stop of a tour with the order snapshot taken when it was
// added.
type StopDTO struct {
	TourDate   time.Time `gorm:"type:date;primaryKey"`
	TourCity   string    `gorm:"type:varchar(255);primaryKey"`
	OrderID    string    `gorm:"type:varchar(64);primaryKey"`
	Customer   string    `gorm:"type:varchar(255);not null;default:''"`
	Address    string    `gorm:"type:text;not null;default:''"`
	PostalCode string    `gorm:"type:varchar(32);not null;default:''"`
	Status     string    `gorm:"type:varchar(16);not null"`
}

func (StopDTO) TableName() string {
	return "tour_stops"
}

func fromDomain(t *tour.Tour) (TourDTO, []StopDTO) {
	key := t.Key()
	date := key.Date.Time()

	stops := make([]StopDTO, 0, len(t.Stops()))
	for _, s := range t.Stops() {
		stops = append(stops, StopDTO{
			TourDate:   date,
			TourCity:   key.City,
			OrderID:    s.OrderID(),
			Customer:   s.Customer(),
			Address:    s.Address(),
			PostalCode: s.PostalCode(),
			Status:     s.Status().String(),
		})
	}

	return TourDTO{
		Date:           date,
		City:           key.City,
		DriverID:       t.DriverID(),
		VehicleID:      t.VehicleID(),
		Validated:      t.IsValidated(),
		IncludeReturns: t.IncludeReturns(),
		Closed:         t.IsClosed(),
		StopOrder:      pq.StringArray(t.OrderIDs()),
	}, stops
}

// toDomain rebuilds the aggregate, ordering stops by the stored sequence.
func toDomain(dto TourDTO, stopDTOs []StopDTO) (*tour.Tour, error) {
	key, err := tour.NewKey(dto.City, kernel.DateOf(dto.Date))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]StopDTO, len(stopDTOs))
	for _, s := range stopDTOs {
		byID[s.OrderID] = s
	}

	stops := make([]tour.Stop, 0, len(dto.StopOrder))
	for _, id := range dto.StopOrder {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("tour %s, order %s: %w", key, id, ErrStopRowIsMissing)
		}
		status, err := tour.ParseDeliveryStatus(s.Status)
		if err != nil {
			return nil, err
		}
		stop, err := tour.RestoreStop(s.OrderID, s.Customer, s.Address, s.PostalCode, status)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return tour.RestoreTour(key, stops, dto.DriverID, dto.VehicleID, dto.Validated, dto.IncludeReturns, dto.Closed)
}
