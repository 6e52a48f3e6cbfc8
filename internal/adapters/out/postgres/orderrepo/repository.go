package orderrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/order"
	"tourdispatch/internal/pkg/errs"
)

// GormOrderSource implements ports.OrderSource over the ERP orders table.
type GormOrderSource struct {
	db *gorm.DB
}

func NewGormOrderSource(db *gorm.DB) *GormOrderSource {
	return &GormOrderSource{db: db}
}

// ListOrders returns orders due between from and to inclusive, sorted by id.
// City matching is case-insensitive; an empty city matches every order.
func (r *GormOrderSource) ListOrders(
	ctx context.Context,
	from, to kernel.Date,
	city string,
) ([]*order.Order, error) {
	db := r.db.WithContext(ctx).Order("id")
	if city = strings.TrimSpace(city); city != "" {
		db = db.Where("LOWER(TRIM(city)) = LOWER(?)", city)
	}

	var dtos []OrderDTO
	if err := db.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		if !o.DeliveryDate().IsZero() && o.DeliveryDate().Between(from, to) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *GormOrderSource) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}
	return toDomain(dto)
}
