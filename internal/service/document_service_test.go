package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentBuild_Certificat(t *testing.T) {
	childRepo := newStubChildRepo()
	ctx := context.Background()

	child := activeChild("Benali", "Lina", datePtr(2024, 9, 5))
	child.Sexe = "F"
	require.NoError(t, childRepo.Create(ctx, child))

	dir := t.TempDir()
	svc := NewDocumentService(childRepo, &stubSettingRepo{}, dir).(*documentService)
	svc.now = fixedNow(2024, 10, 15)

	resp, err := svc.Build(ctx, dto.BuildDocumentRequest{
		ChildID: child.ID.String(),
		Type:    dto.DocumentCertificat,
	})
	require.NoError(t, err)

	assert.Equal(t, dto.DocumentCertificat, resp.Type)
	assert.Equal(t, "certificat-benali-lina.pdf", resp.FileName)
	assert.Equal(t, "/v1/documents/pdf/certificat-benali-lina.pdf", resp.PDFUrl)

	info, err := os.Stat(filepath.Join(dir, resp.FileName))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDocumentBuild_AttestationWithExplicitYear(t *testing.T) {
	childRepo := newStubChildRepo()
	ctx := context.Background()

	child := activeChild("Amrane", "Yanis", nil)
	child.Sexe = "M"
	require.NoError(t, childRepo.Create(ctx, child))

	svc := NewDocumentService(childRepo, &stubSettingRepo{}, t.TempDir())
	resp, err := svc.Build(ctx, dto.BuildDocumentRequest{
		ChildID:       child.ID.String(),
		Type:          dto.DocumentAttestation,
		AnneeScolaire: "2023-2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "attestation-amrane-yanis.pdf", resp.FileName)
}

func TestDocumentBuild_UnknownChild(t *testing.T) {
	svc := NewDocumentService(newStubChildRepo(), &stubSettingRepo{}, t.TempDir())
	_, err := svc.Build(context.Background(), dto.BuildDocumentRequest{
		ChildID: uuid.NewString(),
		Type:    dto.DocumentCertificat,
	})
	assert.ErrorIs(t, err, ErrChildNotFound)
}

// ── grammatical agreement and formatting helpers ─────────────────────────────

func TestAgree(t *testing.T) {
	assert.Equal(t, "inscrit", agree("M", "inscrit", "inscrite"))
	assert.Equal(t, "inscrite", agree("F", "inscrit", "inscrite"))
	assert.Equal(t, "inscrit(e)", agree("", "inscrit", "inscrite"))
	assert.Equal(t, "née", agree("F", "né", "née"))
}

func TestFrenchLongDate(t *testing.T) {
	d := time.Date(2021, time.March, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 mars 2021", frenchLongDate(d))
	first := time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 août 2020", frenchLongDate(first))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "benali", slug("Benali"))
	assert.Equal(t, "ait-ahmed", slug("Aït Ahmed"))
	assert.Equal(t, "d-arcy", slug("D'Arcy"))
}
