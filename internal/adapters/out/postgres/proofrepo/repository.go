// Package proofrepo answers proof-of-delivery and returns lookups from the
// "delivery_proofs" table filled by the driver app.
package proofrepo

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Kind string

const (
	KindProofOfDelivery Kind = "pod"
	KindReturnsRecord   Kind = "returns"
)

type ProofDTO struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    string    `gorm:"type:varchar(64);not null;index:idx_proof_order_kind"`
	Kind       Kind      `gorm:"type:varchar(16);not null;index:idx_proof_order_kind"`
	RecordedAt time.Time `gorm:"not null"`
}

func (ProofDTO) TableName() string {
	return "delivery_proofs"
}

// GormProofRegistry implements ports.ProofRegistry.
type GormProofRegistry struct {
	db *gorm.DB
}

func NewGormProofRegistry(db *gorm.DB) *GormProofRegistry {
	return &GormProofRegistry{db: db}
}

func (r *GormProofRegistry) WithProofOfDelivery(ctx context.Context, orderIDs []string) ([]string, error) {
	return r.withKind(ctx, KindProofOfDelivery, orderIDs)
}

func (r *GormProofRegistry) WithReturnsRecord(ctx context.Context, orderIDs []string) ([]string, error) {
	return r.withKind(ctx, KindReturnsRecord, orderIDs)
}

func (r *GormProofRegistry) withKind(ctx context.Context, kind Kind, orderIDs []string) ([]string, error) {
	found := make([]string, 0, len(orderIDs))
	if len(orderIDs) == 0 {
		return found, nil
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT order_id
		FROM delivery_proofs
		WHERE kind = ? AND order_id = ANY(?)
		ORDER BY order_id
	`, kind, pq.Array(orderIDs)).Scan(&found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}
