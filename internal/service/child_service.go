package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var phoneRe = regexp.MustCompile(`^[0-9+\-\s()]+$`)

type ChildService interface {
	Create(ctx context.Context, req dto.ChildRequest) (*dto.ChildResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ChildRequest) (*dto.ChildResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ChildResponse, error)
	List(ctx context.Context, filter dto.ChildFilter) ([]dto.ChildResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ImportCSV ingests the legacy spreadsheet format (Nom, Prénom, Sexe,
	// Date naissance, Section). Invalid rows are skipped, not fatal.
	ImportCSV(ctx context.Context, r io.Reader) (*dto.CsvImportResponse, error)
}

type childService struct {
	repo repository.ChildRepository
}

func NewChildService(repo repository.ChildRepository) ChildService {
	return &childService{repo: repo}
}

func (s *childService) Create(ctx context.Context, req dto.ChildRequest) (*dto.ChildResponse, error) {
	child, err := childFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, child); err != nil {
		return nil, err
	}
	return childToResponse(child), nil
}

func (s *childService) Update(ctx context.Context, id uuid.UUID, req dto.ChildRequest) (*dto.ChildResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}

	updated, err := childFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return childToResponse(updated), nil
}

func (s *childService) Get(ctx context.Context, id uuid.UUID) (*dto.ChildResponse, error) {
	child, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}
	return childToResponse(child), nil
}

func (s *childService) List(ctx context.Context, filter dto.ChildFilter) ([]dto.ChildResponse, error) {
	children, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChildResponse, 0, len(children))
	for i := range children {
		out = append(out, *childToResponse(&children[i]))
	}
	return out, nil
}

func (s *childService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChildNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *childService) ImportCSV(ctx context.Context, r io.Reader) (*dto.CsvImportResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, they are skipped below

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("fichier CSV vide ou illisible")
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	resp := &dto.CsvImportResponse{}
	var toInsert []model.Child
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("ligne %d: %v", line, err))
			continue
		}

		req := dto.ChildRequest{
			Nom:           field(row, "Nom"),
			Prenom:        field(row, "Prénom"),
			Sexe:          normalizeSexe(field(row, "Sexe")),
			DateNaissance: field(row, "Date naissance"),
			Section:       field(row, "Section"),
			Statut:        model.StatutActif,
		}
		if req.Nom == "" || req.Prenom == "" || req.DateNaissance == "" || req.Section == "" {
			resp.Skipped++
			continue
		}
		child, err := childFromRequest(req)
		if err != nil {
			resp.Skipped++
			resp.Errors = append(resp.Errors, fmt.Sprintf("ligne %d: %v", line, err))
			continue
		}
		toInsert = append(toInsert, *child)
	}

	if err := s.repo.CreateBatch(ctx, toInsert); err != nil {
		return nil, err
	}
	resp.Imported = len(toInsert)
	return resp, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func childFromRequest(req dto.ChildRequest) (*model.Child, error) {
	birth, err := parseDate(req.DateNaissance)
	if err != nil {
		return nil, errors.New("date de naissance invalide")
	}
	now := time.Now()
	if birth.After(now) {
		return nil, errors.New("la date de naissance ne peut pas être dans le futur")
	}
	if birth.Before(now.AddDate(-18, 0, 0)) {
		return nil, errors.New("l'enfant ne peut pas avoir plus de 18 ans")
	}

	var inscription *time.Time
	if req.DateInscription != nil && *req.DateInscription != "" {
		d, err := parseDate(*req.DateInscription)
		if err != nil {
			return nil, errors.New("date d'inscription invalide")
		}
		inscription = &d
	}

	if req.TelPere != nil && *req.TelPere != "" && !phoneRe.MatchString(*req.TelPere) {
		return nil, errors.New("numéro de téléphone du père invalide")
	}
	if req.TelMere != nil && *req.TelMere != "" && !phoneRe.MatchString(*req.TelMere) {
		return nil, errors.New("numéro de téléphone de la mère invalide")
	}

	statut := req.Statut
	if statut == "" {
		statut = model.StatutActif
	}

	return &model.Child{
		Nom:             strings.TrimSpace(req.Nom),
		Prenom:          strings.TrimSpace(req.Prenom),
		DateNaissance:   birth,
		Section:         req.Section,
		DateInscription: inscription,
		Statut:          statut,
		Sexe:            req.Sexe,
		Pere:            req.Pere,
		TelPere:         req.TelPere,
		Mere:            req.Mere,
		TelMere:         req.TelMere,
		Allergies:       req.Allergies,
	}, nil
}

// parseDate accepts ISO dates and the DD/MM/YYYY form found in legacy exports.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", s)
}

func normalizeSexe(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "G", "GARÇON", "GARCON":
		return "M"
	case "F", "FILLE":
		return "F"
	}
	return ""
}

func childToResponse(c *model.Child) *dto.ChildResponse {
	resp := &dto.ChildResponse{
		ID:            c.ID.String(),
		Nom:           c.Nom,
		Prenom:        c.Prenom,
		DateNaissance: c.DateNaissance.Format("2006-01-02"),
		Section:       c.Section,
		Statut:        c.Statut,
		Sexe:          c.Sexe,
		Pere:          c.Pere,
		TelPere:       c.TelPere,
		Mere:          c.Mere,
		TelMere:       c.TelMere,
		Allergies:     c.Allergies,
	}
	if c.DateInscription != nil {
		d := c.DateInscription.Format("2006-01-02")
		resp.DateInscription = &d
	}
	return resp
}
