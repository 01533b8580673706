package service

import (
	"context"
	"testing"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefaultFee = 10000

func setupInvoiceService(t *testing.T) (InvoiceService, *stubChildRepo, *stubPaymentRepo) {
	t.Helper()
	childRepo := newStubChildRepo()
	paymentRepo := newStubPaymentRepo()
	counterRepo := newStubCounterRepo()
	// nil dispatcher: invoice data is returned without enqueueing a PDF job
	return NewInvoiceService(childRepo, paymentRepo, counterRepo, nil, testDefaultFee), childRepo, paymentRepo
}

func TestBuildInvoices_SingleMode(t *testing.T) {
	svc, childRepo, paymentRepo := setupInvoiceService(t)
	ctx := context.Background()

	child := activeChild("Benali", "Lina", datePtr(2024, 9, 5))
	require.NoError(t, childRepo.Create(ctx, child))
	require.NoError(t, paymentRepo.Create(ctx, &model.Payment{
		ChildID: child.ID, Year: 2024, Month: 9, AmountDue: 10000, RegistrationFee: 5000,
	}))

	resp, err := svc.BuildInvoices(ctx, dto.BuildInvoicesRequest{
		Year:     2024,
		ChildIDs: []string{child.ID.String()},
		Months:   []int{9, 10},
		Mode:     dto.InvoiceModeSingle,
	})
	require.NoError(t, err)

	// One invoice per (child, month), numbered sequentially within the year.
	require.Len(t, resp.Invoices, 2)
	assert.Equal(t, "FAC-2024-001", resp.Invoices[0].InvoiceNumber)
	assert.Equal(t, "FAC-2024-002", resp.Invoices[1].InvoiceNumber)

	// September: generated row incl. registration fee. October: fallback fee.
	assert.Equal(t, int64(15000), resp.Invoices[0].Total)
	assert.Equal(t, "Septembre 2024", resp.Invoices[0].Lines[0].MonthLabel)
	assert.Equal(t, int64(testDefaultFee), resp.Invoices[1].Total)
}

func TestBuildInvoices_GroupedMode(t *testing.T) {
	svc, childRepo, paymentRepo := setupInvoiceService(t)
	ctx := context.Background()

	child := activeChild("Benali", "Lina", datePtr(2024, 9, 5))
	require.NoError(t, childRepo.Create(ctx, child))
	for month, due := range map[int]int64{9: 10000, 10: 12000, 11: 9000} {
		require.NoError(t, paymentRepo.Create(ctx, &model.Payment{
			ChildID: child.ID, Year: 2024, Month: month, AmountDue: due,
		}))
	}

	resp, err := svc.BuildInvoices(ctx, dto.BuildInvoicesRequest{
		Year:     2024,
		ChildIDs: []string{child.ID.String()},
		Months:   []int{9, 10, 11},
		Mode:     dto.InvoiceModeGrouped,
	})
	require.NoError(t, err)

	// One invoice covering all months, total = exact sum of its lines.
	require.Len(t, resp.Invoices, 1)
	inv := resp.Invoices[0]
	require.Len(t, inv.Lines, 3)
	var sum int64
	for _, line := range inv.Lines {
		sum += line.Amount
	}
	assert.Equal(t, sum, inv.Total)
	assert.Equal(t, int64(31000), inv.Total)
	assert.Equal(t, "Benali Lina", inv.ChildName)
	assert.Contains(t, inv.TotalInWords, "DINARS ET ZÉRO CENTIME")
}

func TestBuildInvoices_SkipsInactiveChildren(t *testing.T) {
	svc, childRepo, _ := setupInvoiceService(t)
	ctx := context.Background()

	inactive := activeChild("Ziani", "Mehdi", nil)
	inactive.Statut = model.StatutInactif
	require.NoError(t, childRepo.Create(ctx, inactive))

	resp, err := svc.BuildInvoices(ctx, dto.BuildInvoicesRequest{
		Year:     2024,
		ChildIDs: []string{inactive.ID.String()},
		Months:   []int{9},
		Mode:     dto.InvoiceModeSingle,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Invoices)
}

func TestBuildInvoices_CounterSurvivesAcrossCalls(t *testing.T) {
	svc, childRepo, _ := setupInvoiceService(t)
	ctx := context.Background()

	child := activeChild("Benali", "Lina", nil)
	require.NoError(t, childRepo.Create(ctx, child))

	req := dto.BuildInvoicesRequest{
		Year:     2025,
		ChildIDs: []string{child.ID.String()},
		Months:   []int{1},
		Mode:     dto.InvoiceModeSingle,
	}
	first, err := svc.BuildInvoices(ctx, req)
	require.NoError(t, err)
	second, err := svc.BuildInvoices(ctx, req)
	require.NoError(t, err)

	// Numbering continues where the previous batch stopped; re-running the
	// same selection never reuses a number.
	assert.Equal(t, "FAC-2025-001", first.Invoices[0].InvoiceNumber)
	assert.Equal(t, "FAC-2025-002", second.Invoices[0].InvoiceNumber)
}

func TestBuildInvoices_EnqueueFailureStillReturnsInvoice(t *testing.T) {
	childRepo := newStubChildRepo()
	counterRepo := newStubCounterRepo()
	// Dispatcher backed by an unreachable Redis: every LPush fails.
	dispatcher := worker.NewDispatcher(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	svc := NewInvoiceService(childRepo, newStubPaymentRepo(), counterRepo, dispatcher, testDefaultFee)
	ctx := context.Background()

	child := activeChild("Benali", "Lina", nil)
	require.NoError(t, childRepo.Create(ctx, child))

	resp, err := svc.BuildInvoices(ctx, dto.BuildInvoicesRequest{
		Year:     2025,
		ChildIDs: []string{child.ID.String()},
		Months:   []int{3},
		Mode:     dto.InvoiceModeSingle,
	})
	require.NoError(t, err)
	require.Len(t, resp.Invoices, 1)

	// The invoice data survives the failed enqueue; only the PDF link is
	// missing, since no worker job was queued.
	assert.Equal(t, "FAC-2025-001", resp.Invoices[0].InvoiceNumber)
	assert.Empty(t, resp.Invoices[0].PDFUrl)
}
