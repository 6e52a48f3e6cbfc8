// Package stopplanrepo persists the stop schedules written on validation.
package stopplanrepo

import (
	"time"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/schedule"
)

// StopPlanDTO stores clocks as minutes since midnight; ETAs may run past 24:00.
type StopPlanDTO struct {
	Date        time.Time `gorm:"type:date;primaryKey"`
	City        string    `gorm:"type:varchar(255);primaryKey"`
	OrderID     string    `gorm:"type:varchar(64);primaryKey"`
	Sequence    int       `gorm:"type:int;not null"`
	WindowStart int       `gorm:"type:int;not null"`
	WindowEnd   int       `gorm:"type:int;not null"`
	ETA         int       `gorm:"column:eta;type:int;not null"`
	DriverID    string    `gorm:"type:varchar(64);not null"`
	VehicleID   string    `gorm:"type:varchar(64);not null"`
	CreatedAt   time.Time
}

func (StopPlanDTO) TableName() string {
	return "stop_plans"
}

func fromDomain(p schedule.StopPlan) StopPlanDTO {
	return StopPlanDTO{
		Date:        p.Date.Time(),
		City:        p.City,
		OrderID:     p.OrderID,
		Sequence:    p.Sequence,
		WindowStart: p.Window.Start.Minutes(),
		WindowEnd:   p.Window.End.Minutes(),
		ETA:         p.ETA.Minutes(),
		DriverID:    p.DriverID,
		VehicleID:   p.VehicleID,
	}
}

func toDomain(dto StopPlanDTO) (schedule.StopPlan, error) {
	start, err := kernel.ClockOfMinutes(dto.WindowStart)
	if err != nil {
		return schedule.StopPlan{}, err
	}
	end, err := kernel.ClockOfMinutes(dto.WindowEnd)
	if err != nil {
		return schedule.StopPlan{}, err
	}
	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return schedule.StopPlan{}, err
	}
	eta, err := kernel.ClockOfMinutes(dto.ETA)
	if err != nil {
		return schedule.StopPlan{}, err
	}

	return schedule.NewStopPlan(kernel.DateOf(dto.Date), dto.City, dto.OrderID, dto.Sequence, window, eta,
		dto.DriverID, dto.VehicleID)
}
