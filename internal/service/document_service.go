package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/infra"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentService renders the administrative documents handed to parents:
// certificat de scolarité and attestation d'inscription. Rendering is
// synchronous, the documents are one page and requested interactively.
type DocumentService interface {
	Build(ctx context.Context, req dto.BuildDocumentRequest) (*dto.DocumentResponse, error)
}

type documentService struct {
	childRepo   repository.ChildRepository
	settingRepo repository.SettingRepository
	storagePath string
	now         func() time.Time
}

func NewDocumentService(childRepo repository.ChildRepository, settingRepo repository.SettingRepository, storagePath string) DocumentService {
	return &documentService{
		childRepo:   childRepo,
		settingRepo: settingRepo,
		storagePath: storagePath,
		now:         time.Now,
	}
}

func (s *documentService) Build(ctx context.Context, req dto.BuildDocumentRequest) (*dto.DocumentResponse, error) {
	id, err := uuid.Parse(req.ChildID)
	if err != nil {
		return nil, ErrChildNotFound
	}
	child, err := s.childRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}

	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	annee := req.AnneeScolaire
	if annee == "" {
		annee = SchoolYearLabel(s.now())
	}

	var title, body string
	switch req.Type {
	case dto.DocumentCertificat:
		title = "Certificat de scolarité"
		body = fmt.Sprintf(
			"Je soussigné, Monsieur le Directeur de la crèche %s, atteste que l'élève %s %s est %s au sein de notre établissement en %s pour l'année scolaire %s.",
			setting.Nom, child.Nom, child.Prenom, agree(child.Sexe, "inscrit", "inscrite"), child.Section, annee,
		)
	case dto.DocumentAttestation:
		title = "Attestation d'inscription"
		body = fmt.Sprintf(
			"Je soussigné, Monsieur le Directeur de la crèche %s, atteste que l'enfant %s %s, %s le %s, est %s au sein de l'établissement pour l'année scolaire %s, en %s.",
			setting.Nom, child.Nom, child.Prenom, agree(child.Sexe, "né", "née"),
			frenchLongDate(child.DateNaissance), agree(child.Sexe, "inscrit", "inscrite"), annee, child.Section,
		)
	default:
		return nil, fmt.Errorf("type de document inconnu: %s", req.Type)
	}

	fileName := fmt.Sprintf("%s-%s-%s.pdf", req.Type, slug(child.Nom), slug(child.Prenom))
	if _, err := infra.GenerateDocumentPDF(title, body, setting, fileName, s.storagePath); err != nil {
		return nil, err
	}

	return &dto.DocumentResponse{
		Type:     req.Type,
		FileName: fileName,
		PDFUrl:   "/v1/documents/pdf/" + fileName,
	}, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// agree picks the gendered participle; unknown sex falls back to the
// parenthesised convention used on the paper forms.
func agree(sexe, masculine, feminine string) string {
	switch sexe {
	case "M":
		return masculine
	case "F":
		return feminine
	}
	return masculine + "(e)"
}

// frenchLongDate renders "12 mars 2020".
func frenchLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), strings.ToLower(Months[int(t.Month())]), t.Year())
}

var slugAccents = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

func slug(s string) string {
	s = slugAccents.Replace(strings.ToLower(strings.TrimSpace(s)))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '\'', r == '-':
			return '-'
		}
		return -1
	}, s)
}
