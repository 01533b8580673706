package repository

import (
	"context"
	"errors"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	// Get returns the organization profile, falling back to the shipped
	// defaults when no row was saved yet.
	Get(ctx context.Context) (*model.Setting, error)
	Save(ctx context.Context, s *model.Setting) error
}

type settingRepo struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) SettingRepository { return &settingRepo{db: db} }

func (r *settingRepo) Get(ctx context.Context) (*model.Setting, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).First(&s, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := model.DefaultSetting()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingRepo) Save(ctx context.Context, s *model.Setting) error {
	s.ID = 1
	return r.db.WithContext(ctx).Save(s).Error
}
