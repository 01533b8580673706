package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/frwords"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type InvoiceService interface {
	// BuildInvoices aggregates the selection into invoices: one per
	// (child, month) in single mode, one per child in grouped mode. Months
	// without a payment row are billed at the configured default fee.
	BuildInvoices(ctx context.Context, req dto.BuildInvoicesRequest) (*dto.BuildInvoicesResponse, error)
}

type invoiceService struct {
	childRepo   repository.ChildRepository
	paymentRepo repository.PaymentRepository
	counterRepo repository.CounterRepository
	dispatcher  *worker.Dispatcher
	defaultFee  int64
	now         func() time.Time
}

func NewInvoiceService(
	childRepo repository.ChildRepository,
	paymentRepo repository.PaymentRepository,
	counterRepo repository.CounterRepository,
	dispatcher *worker.Dispatcher,
	defaultFee int64,
) InvoiceService {
	return &invoiceService{
		childRepo:   childRepo,
		paymentRepo: paymentRepo,
		counterRepo: counterRepo,
		dispatcher:  dispatcher,
		defaultFee:  defaultFee,
		now:         time.Now,
	}
}

func (s *invoiceService) BuildInvoices(ctx context.Context, req dto.BuildInvoicesRequest) (*dto.BuildInvoicesResponse, error) {
	childIDs := make([]uuid.UUID, 0, len(req.ChildIDs))
	for _, raw := range req.ChildIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("child_id invalide: %w", err)
		}
		childIDs = append(childIDs, id)
	}

	children, err := s.childRepo.ListByIDs(ctx, childIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.Child, len(children))
	for i := range children {
		byID[children[i].ID] = &children[i]
	}

	payments, err := s.paymentRepo.ListForInvoicing(ctx, req.Year, req.Months, childIDs)
	if err != nil {
		return nil, err
	}
	type key struct {
		child uuid.UUID
		month int
	}
	byKey := make(map[key]*model.Payment, len(payments))
	for i := range payments {
		p := &payments[i]
		k := key{p.ChildID, p.Month}
		if prev, ok := byKey[k]; ok && prev.UpdatedAt.After(p.UpdatedAt) {
			continue
		}
		byKey[k] = p
	}

	amountFor := func(childID uuid.UUID, month int) int64 {
		if p, ok := byKey[key{childID, month}]; ok {
			// The row's registration fee is already month-scoped by the
			// ledger rules: only the enrollment month carries one.
			return p.AmountDue + p.RegistrationFee
		}
		return s.defaultFee
	}

	resp := &dto.BuildInvoicesResponse{}
	// Selection processed in request order so the same selection always
	// produces the same invoices; numbering comes from the persisted
	// per-year counter.
	for _, childID := range childIDs {
		child, ok := byID[childID]
		if !ok {
			return nil, ErrChildNotFound
		}
		if !child.Actif() {
			continue
		}

		switch req.Mode {
		case dto.InvoiceModeGrouped:
			lines := make([]dto.InvoiceLine, 0, len(req.Months))
			var total int64
			for _, m := range req.Months {
				amount := amountFor(childID, m)
				lines = append(lines, dto.InvoiceLine{MonthLabel: MonthLabel(req.Year, m), Amount: amount})
				total += amount
			}
			inv, err := s.finalize(ctx, child, req.Year, lines, total)
			if err != nil {
				return nil, err
			}
			resp.Invoices = append(resp.Invoices, *inv)

		default: // single: one invoice per month
			for _, m := range req.Months {
				amount := amountFor(childID, m)
				lines := []dto.InvoiceLine{{MonthLabel: MonthLabel(req.Year, m), Amount: amount}}
				inv, err := s.finalize(ctx, child, req.Year, lines, amount)
				if err != nil {
					return nil, err
				}
				resp.Invoices = append(resp.Invoices, *inv)
			}
		}
	}

	return resp, nil
}

// finalize allocates the invoice number, spells out the total and hands the
// invoice to the async PDF renderer.
func (s *invoiceService) finalize(ctx context.Context, child *model.Child, year int, lines []dto.InvoiceLine, total int64) (*dto.InvoiceResponse, error) {
	seq, err := s.counterRepo.NextInvoiceSeq(ctx, nil, year)
	if err != nil {
		return nil, err
	}

	inv := &dto.InvoiceResponse{
		InvoiceNumber: fmt.Sprintf("FAC-%d-%03d", year, seq),
		ChildID:       child.ID.String(),
		ChildName:     child.FullName(),
		IssueDate:     s.now().Format("2006-01-02"),
		Lines:         lines,
		Total:         total,
		TotalInWords:  frwords.Format(total),
	}

	// Best-effort: the invoice data is returned either way, the PDF shows up
	// once the worker has processed the job.
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueInvoicePDF(ctx, *inv); err != nil {
			log.Error().Err(err).
				Str("invoice_number", inv.InvoiceNumber).
				Msg("failed to enqueue invoice PDF job")
		} else {
			inv.PDFUrl = "/v1/documents/pdf/" + inv.InvoiceNumber + ".pdf"
		}
	}
	return inv, nil
}
