package worker

import (
	"context"
	"encoding/json"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/infra"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/rs/zerolog/log"
)

// InvoicePDFWorker renders queued invoices to PDF files. The organization
// header is loaded from the settings store at render time so a profile change
// applies to every document generated afterwards.
type InvoicePDFWorker struct {
	settingRepo repository.SettingRepository
	storagePath string
}

func NewInvoicePDFWorker(settingRepo repository.SettingRepository, storagePath string) *InvoicePDFWorker {
	return &InvoicePDFWorker{settingRepo: settingRepo, storagePath: storagePath}
}

// Process renders one invoice. A returned error sends the job to the DLQ.
func (w *InvoicePDFWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var inv dto.InvoiceResponse
	if err := json.Unmarshal(raw, &inv); err != nil {
		log.Error().Err(err).Msg("invoice_pdf_worker: invalid payload")
		return err
	}

	setting, err := w.settingRepo.Get(ctx)
	if err != nil {
		return err
	}

	path, err := infra.GenerateInvoicePDF(&inv, setting, w.storagePath)
	if err != nil {
		log.Error().
			Str("invoice", inv.InvoiceNumber).
			Err(err).
			Msg("invoice_pdf_worker: render failed")
		return err
	}

	log.Info().
		Str("invoice", inv.InvoiceNumber).
		Str("path", path).
		Msg("invoice PDF generated")
	return nil
}
