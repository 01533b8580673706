package repository

import (
	"context"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	Update(ctx context.Context, p *model.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	// FindByNaturalKey resolves the single payment for (child, year, month).
	// Returns gorm.ErrRecordNotFound when the row was never generated.
	FindByNaturalKey(ctx context.Context, childID uuid.UUID, year, month int) (*model.Payment, error)
	ListByYearMonth(ctx context.Context, year, month int) ([]model.Payment, error)
	// ListForInvoicing fetches all payments for a (year, months, children)
	// selection in one query.
	ListForInvoicing(ctx context.Context, year int, months []int, childIDs []uuid.UUID) ([]model.Payment, error)
	// ValidatedChildIDs returns the ids of children holding a validated payment
	// for (year, month) — the exclusion set of the late-payment report.
	ValidatedChildIDs(ctx context.Context, year, month int) (map[uuid.UUID]bool, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &paymentRepo{db: db} }

func (r *paymentRepo) DB() *gorm.DB { return r.db }

func (r *paymentRepo) Create(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) Update(ctx context.Context, p *model.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *paymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *paymentRepo) FindByNaturalKey(ctx context.Context, childID uuid.UUID, year, month int) (*model.Payment, error) {
	var rows []model.Payment
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND year = ? AND month = ?", childID, year, month).
		Order("updated_at desc").
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &rows[0], nil
	default:
		// The unique index should make this impossible; a legacy import may
		// still have left duplicates. Keep the most recently updated row and
		// flag the state for operator attention.
		log.Warn().
			Str("child_id", childID.String()).
			Int("year", year).
			Int("month", month).
			Msg("duplicate payment rows for natural key — using most recent")
		return &rows[0], nil
	}
}

func (r *paymentRepo) ListByYearMonth(ctx context.Context, year, month int) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) ListForInvoicing(ctx context.Context, year int, months []int, childIDs []uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("year = ? AND month IN ? AND child_id IN ?", year, months, childIDs).
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) ValidatedChildIDs(ctx context.Context, year, month int) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("year = ? AND month = ? AND validated = true", year, month).
		Pluck("child_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
