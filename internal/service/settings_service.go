package service

import (
	"context"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"
)

// SettingsService manages the single organization profile printed on documents.
type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingResponse, error)
	Update(ctx context.Context, req dto.SettingRequest) (*dto.SettingResponse, error)
}

type settingsService struct {
	repo repository.SettingRepository
}

func NewSettingsService(repo repository.SettingRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingResponse, error) {
	setting, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return settingToResponse(setting), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingRequest) (*dto.SettingResponse, error) {
	setting := &model.Setting{
		Nom:       req.Nom,
		SousTitre: req.SousTitre,
		Adresse:   req.Adresse,
		Telephone: req.Telephone,
		Email:     req.Email,
		NIF:       req.NIF,
		RC:        req.RC,
		Article:   req.Article,
		NIS:       req.NIS,
	}
	if err := s.repo.Save(ctx, setting); err != nil {
		return nil, err
	}
	return settingToResponse(setting), nil
}

func settingToResponse(s *model.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Nom:       s.Nom,
		SousTitre: s.SousTitre,
		Adresse:   s.Adresse,
		Telephone: s.Telephone,
		Email:     s.Email,
		NIF:       s.NIF,
		RC:        s.RC,
		Article:   s.Article,
		NIS:       s.NIS,
	}
}
