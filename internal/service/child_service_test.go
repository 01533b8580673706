package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChildRequest() dto.ChildRequest {
	return dto.ChildRequest{
		Nom:           "Benali",
		Prenom:        "Lina",
		DateNaissance: "2021-03-12",
		Section:       model.SectionPetite,
		Sexe:          "F",
	}
}

func TestChildCreate_Defaults(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo)

	resp, err := svc.Create(context.Background(), validChildRequest())
	require.NoError(t, err)

	assert.Equal(t, model.StatutActif, resp.Statut)
	assert.Equal(t, "2021-03-12", resp.DateNaissance)
	assert.Nil(t, resp.DateInscription)
	assert.NotEmpty(t, resp.ID)
}

func TestChildCreate_Rejections(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo)
	ctx := context.Background()

	futureBirth := validChildRequest()
	futureBirth.DateNaissance = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	tooOld := validChildRequest()
	tooOld.DateNaissance = "1990-01-01"

	badDate := validChildRequest()
	badDate.DateNaissance = "pas-une-date"

	badPhone := validChildRequest()
	tel := "abc!"
	badPhone.TelPere = &tel

	for name, req := range map[string]dto.ChildRequest{
		"birth date in the future": futureBirth,
		"older than 18":            tooOld,
		"unparseable birth date":   badDate,
		"invalid phone number":     badPhone,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, req)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, repo.children)
}

func TestChildCreate_AcceptsLegacyDateFormat(t *testing.T) {
	svc := NewChildService(newStubChildRepo())

	req := validChildRequest()
	req.DateNaissance = "12/03/2021"
	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2021-03-12", resp.DateNaissance)
}

func TestChildUpdate_PreservesIdentity(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validChildRequest())
	require.NoError(t, err)

	req := validChildRequest()
	req.Section = model.SectionMoyenne
	updated, err := svc.Update(ctx, uuid.MustParse(created.ID), req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, model.SectionMoyenne, updated.Section)
}

func TestChildUpdate_UnknownChild(t *testing.T) {
	svc := NewChildService(newStubChildRepo())
	_, err := svc.Update(context.Background(), uuid.New(), validChildRequest())
	assert.ErrorIs(t, err, ErrChildNotFound)
}

// ── CSV import ───────────────────────────────────────────────────────────────

func TestImportCSV_SkipsInvalidRows(t *testing.T) {
	repo := newStubChildRepo()
	svc := NewChildService(repo)

	csv := strings.Join([]string{
		"Nom,Prénom,Sexe,Date naissance,Section",
		"Benali,Lina,F,2021-03-12,Petite",
		"Amrane,Yanis,Garçon,12/05/2020,Moyenne", // legacy sexe label + date format
		",Sara,F,2021-01-01,Petite",              // missing nom
		"Cherif,Sara,F,pas-une-date,Petite",      // bad date
	}, "\n")

	resp, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 2, resp.Skipped)
	assert.Len(t, repo.children, 2)

	// Imported children are active and carry the normalized sexe.
	for _, c := range repo.children {
		assert.Equal(t, model.StatutActif, c.Statut)
		if c.Nom == "Amrane" {
			assert.Equal(t, "M", c.Sexe)
		}
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	svc := NewChildService(newStubChildRepo())
	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}
