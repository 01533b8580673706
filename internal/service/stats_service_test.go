package service

import (
	"context"
	"testing"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_Aggregates(t *testing.T) {
	childRepo := newStubChildRepo()
	paymentRepo := newStubPaymentRepo()
	ctx := context.Background()

	// Two in Petite (one enrolled in October), one in Moyenne, one inactive.
	amrane := activeChild("Amrane", "Yanis", datePtr(2024, 10, 1))
	benali := activeChild("Benali", "Lina", datePtr(2024, 9, 5))
	cherif := activeChild("Cherif", "Sara", nil)
	cherif.Section = model.SectionMoyenne
	inactive := activeChild("Ziani", "Mehdi", nil)
	inactive.Statut = model.StatutInactif
	for _, c := range []*model.Child{amrane, benali, cherif, inactive} {
		require.NoError(t, childRepo.Create(ctx, c))
	}

	// October payments: Amrane's enrollment month carries the registration fee.
	require.NoError(t, paymentRepo.Create(ctx, &model.Payment{
		ChildID: amrane.ID, Year: 2024, Month: 10,
		AmountDue: 10000, RegistrationFee: 5000, AmountPaid: 15000, Validated: true,
	}))
	require.NoError(t, paymentRepo.Create(ctx, &model.Payment{
		ChildID: benali.ID, Year: 2024, Month: 10,
		AmountDue: 10000, AmountPaid: 4000,
	}))

	svc := NewStatsService(childRepo, paymentRepo).(*statsService)
	svc.now = fixedNow(2024, 10, 20)

	resp, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.ActiveChildren)
	assert.Equal(t, []dto.SectionCount{
		{Section: model.SectionMoyenne, Count: 1},
		{Section: model.SectionPetite, Count: 2},
	}, resp.Sections)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 10, resp.Month)
	assert.Equal(t, int64(25000), resp.TotalDue)
	assert.Equal(t, int64(19000), resp.TotalPaid)
	assert.Equal(t, 1, resp.ValidatedPayments)
	assert.Equal(t, 1, resp.PendingPayments)
}

func TestSettings_RoundTrip(t *testing.T) {
	repo := &stubSettingRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	// Before any save, the shipped defaults are returned.
	def, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSetting().Nom, def.Nom)

	updated, err := svc.Update(ctx, dto.SettingRequest{
		Nom:       "Les Petits Génies",
		Adresse:   "Rue des Oliviers, Béjaïa",
		Telephone: "034 00 00 00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Les Petits Génies", updated.Nom)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Les Petits Génies", got.Nom)
	assert.Equal(t, "Rue des Oliviers, Béjaïa", got.Adresse)
}
