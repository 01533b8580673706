package repository

import (
	"context"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildRepository interface {
	Create(ctx context.Context, c *model.Child) error
	CreateBatch(ctx context.Context, children []model.Child) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Child, error)
	// ListActive returns all Actif children ordered by nom ascending —
	// the order used by the ledger and every printed list.
	ListActive(ctx context.Context) ([]model.Child, error)
	List(ctx context.Context, filter dto.ChildFilter) ([]model.Child, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Child, error)
	Update(ctx context.Context, c *model.Child) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveBySection(ctx context.Context) (map[string]int, error)
}

type childRepo struct{ db *gorm.DB }

func NewChildRepository(db *gorm.DB) ChildRepository { return &childRepo{db: db} }

func (r *childRepo) Create(ctx context.Context, c *model.Child) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *childRepo) CreateBatch(ctx context.Context, children []model.Child) error {
	if len(children) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&children).Error
}

func (r *childRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Child, error) {
	var c model.Child
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *childRepo) ListActive(ctx context.Context) ([]model.Child, error) {
	var children []model.Child
	err := r.db.WithContext(ctx).
		Where("statut = ?", model.StatutActif).
		Order("nom asc, prenom asc").
		Find(&children).Error
	return children, err
}

func (r *childRepo) List(ctx context.Context, filter dto.ChildFilter) ([]model.Child, error) {
	q := r.db.WithContext(ctx).Model(&model.Child{})

	if filter.Statut != "" {
		q = q.Where("statut = ?", filter.Statut)
	}
	if filter.Section != "" {
		q = q.Where("section = ?", filter.Section)
	}
	if filter.Search != "" {
		like := filter.Search + "%"
		q = q.Where("nom ILIKE ? OR prenom ILIKE ?", like, like)
	}

	var children []model.Child
	err := q.Order("nom asc, prenom asc").Find(&children).Error
	return children, err
}

func (r *childRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Child, error) {
	var children []model.Child
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&children).Error
	return children, err
}

func (r *childRepo) Update(ctx context.Context, c *model.Child) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *childRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Child{}, id).Error
}

func (r *childRepo) CountActiveBySection(ctx context.Context) (map[string]int, error) {
	type row struct {
		Section string
		N       int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Child{}).
		Select("section, count(*) as n").
		Where("statut = ?", model.StatutActif).
		Group("section").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, rw := range rows {
		counts[rw.Section] = rw.N
	}
	return counts, nil
}
