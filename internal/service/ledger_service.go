package service

import (
	"context"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/google/uuid"
)

type LedgerService interface {
	// BuildLedger returns one row per active child for (year, month),
	// ordered by nom ascending. Read-only.
	BuildLedger(ctx context.Context, year, month int) (*dto.LedgerResponse, error)
	// FindLate lists active children enrolled on or before the end of the
	// target month with no validated payment for it. precedent targets the
	// previous month instead of the current one.
	FindLate(ctx context.Context, precedent bool) ([]dto.LateEntry, error)
}

type ledgerService struct {
	childRepo   repository.ChildRepository
	paymentRepo repository.PaymentRepository
	now         func() time.Time
}

func NewLedgerService(childRepo repository.ChildRepository, paymentRepo repository.PaymentRepository) LedgerService {
	return &ledgerService{childRepo: childRepo, paymentRepo: paymentRepo, now: time.Now}
}

func (s *ledgerService) BuildLedger(ctx context.Context, year, month int) (*dto.LedgerResponse, error) {
	children, err := s.childRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByYearMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	// Index by child; on duplicate natural keys keep the most recently
	// updated row (inconsistent-state tolerance, logged at the repo level).
	byChild := make(map[uuid.UUID]*model.Payment, len(payments))
	for i := range payments {
		p := &payments[i]
		if prev, ok := byChild[p.ChildID]; ok && prev.UpdatedAt.After(p.UpdatedAt) {
			continue
		}
		byChild[p.ChildID] = p
	}

	rows := make([]dto.LedgerRow, 0, len(children))
	for i := range children {
		child := &children[i]
		row := dto.LedgerRow{
			ChildID: child.ID.String(),
			Nom:     child.Nom,
			Prenom:  child.Prenom,
			Section: child.Section,
		}
		if p, ok := byChild[child.ID]; ok {
			isEnrollmentMonth := child.EnrollmentMonth() == month
			row.Generated = true
			row.Payment = paymentToResponse(p, isEnrollmentMonth)
			row.Status = row.Payment.Status.Label
		} else {
			row.Status = dto.StatusNotGenerated
		}
		rows = append(rows, row)
	}

	return &dto.LedgerResponse{Year: year, Month: month, Rows: rows}, nil
}

func (s *ledgerService) FindLate(ctx context.Context, precedent bool) ([]dto.LateEntry, error) {
	now := s.now()
	year, month := now.Year(), int(now.Month())
	if precedent {
		year, month = PreviousMonth(year, month)
	}

	children, err := s.childRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	validated, err := s.paymentRepo.ValidatedChildIDs(ctx, year, month)
	if err != nil {
		return nil, err
	}

	monthEnd := EndOfMonth(year, month)
	entries := make([]dto.LateEntry, 0)
	for i := range children {
		child := &children[i]
		// Children without an enrollment date are skipped: we cannot tell
		// whether they were enrolled yet.
		if child.DateInscription == nil || child.DateInscription.After(monthEnd) {
			continue
		}
		if validated[child.ID] {
			continue
		}
		entries = append(entries, dto.LateEntry{
			ChildID: child.ID.String(),
			Nom:     child.Nom,
			Prenom:  child.Prenom,
			Year:    year,
			Month:   month,
		})
	}
	return entries, nil
}
