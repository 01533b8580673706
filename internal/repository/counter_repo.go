package repository

import (
	"context"

	"gorm.io/gorm"
)

// CounterRepository allocates invoice sequence numbers. One counter per year;
// allocation is atomic so FAC-{year}-{seq} never collides across sessions.
type CounterRepository interface {
	NextInvoiceSeq(ctx context.Context, tx *gorm.DB, year int) (int, error)
}

type counterRepo struct{ db *gorm.DB }

func NewCounterRepository(db *gorm.DB) CounterRepository { return &counterRepo{db: db} }

func (r *counterRepo) NextInvoiceSeq(ctx context.Context, tx *gorm.DB, year int) (int, error) {
	if tx == nil {
		tx = r.db
	}
	// Upsert-and-increment in a single statement keeps the bump atomic.
	var seq int
	err := tx.WithContext(ctx).Raw(`
		INSERT INTO invoice_counters (year, last_seq, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (year)
		DO UPDATE SET last_seq = invoice_counters.last_seq + 1, updated_at = now()
		RETURNING last_seq`, year).Scan(&seq).Error
	return seq, err
}
