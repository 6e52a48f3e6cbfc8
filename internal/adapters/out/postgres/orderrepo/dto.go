// Package orderrepo reads the orders the ERP synchronises into the "orders"
// table and normalises them into domain orders.
package orderrepo

import (
	"github.com/lib/pq"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
)

// OrderDTO mirrors the ERP export. DeliveryDate is kept as exported text since
// the ERP mixes ISO and day-first formats.
type OrderDTO struct {
	ID           string         `gorm:"type:varchar(64);primaryKey"`
	City         string         `gorm:"type:varchar(255);not null;default:'';index"`
	AddressLines pq.StringArray `gorm:"type:text[]"`
	PostalCode   string         `gorm:"type:varchar(32);not null;default:''"`
	Customer     string         `gorm:"type:varchar(255);not null;default:''"`
	DeliveryDate string         `gorm:"type:varchar(32);not null;default:''"`
	Volume       float64        `gorm:"type:numeric(10,3);not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// toDomain maps an ERP row. An unreadable delivery date leaves the order
// undated, which keeps it out of every planning filter.
func toDomain(dto OrderDTO) (*order.Order, error) {
	date, err := kernel.ParseDate(dto.DeliveryDate)
	if err != nil {
		date = kernel.Date{}
	}

	return order.NewOrder(dto.ID, order.Destination{
		City:         dto.City,
		AddressLines: dto.AddressLines,
		PostalCode:   dto.PostalCode,
	}, dto.Customer, date, dto.Volume)
}

// FromDomain is used by fixtures that seed the ERP table.
func FromDomain(o *order.Order) OrderDTO {
	date := ""
	if !o.DeliveryDate().IsZero() {
		date = o.DeliveryDate().String()
	}
	return OrderDTO{
		ID:           o.ID(),
		City:         o.City(),
		AddressLines: pq.StringArray(o.AddressLines()),
		PostalCode:   o.PostalCode(),
		Customer:     o.Customer(),
		DeliveryDate: date,
		Volume:       o.Volume(),
	}
}
