package service

import (
	"context"
	"errors"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrChildNotFound   = errors.New("enfant introuvable")
	ErrPaymentNotFound = errors.New("paiement introuvable")
)

// DeriveStatus classifies a payment for display. A nil payment means the row
// was never generated for that (child, month). Classification order:
// validated wins, then unpaid and partial payments both count as late, and a
// fully covered but unvalidated payment awaits the operator's "Valider".
func DeriveStatus(p *model.Payment, isEnrollmentMonth bool) dto.PaymentStatus {
	if p == nil {
		return dto.PaymentStatus{Label: dto.StatusNotGenerated}
	}
	totalDue := p.TotalDue(isEnrollmentMonth)
	st := dto.PaymentStatus{
		TotalDue:  totalDue,
		Remaining: p.Remaining(isEnrollmentMonth),
	}
	switch {
	case p.Validated:
		st.Label = dto.StatusValidated
	case p.AmountPaid == 0:
		st.Label = dto.StatusOverdue
	case p.AmountPaid < totalDue:
		st.Label = dto.StatusOverdue
	default:
		st.Label = dto.StatusPendingValidation
	}
	return st
}

type PaymentService interface {
	Upsert(ctx context.Context, req dto.UpsertPaymentRequest) (*dto.PaymentResponse, error)
	// UpdateAmountPaid is the quick-edit path: it stores the new paid amount
	// and recomputes validated from it (auto-validation on full payment).
	UpdateAmountPaid(ctx context.Context, id uuid.UUID, amountPaid int64) (*dto.PaymentResponse, error)
	// Validate is the explicit operator override: marks the payment settled
	// regardless of the paid amount.
	Validate(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
}

type paymentService struct {
	repo      repository.PaymentRepository
	childRepo repository.ChildRepository
}

func NewPaymentService(repo repository.PaymentRepository, childRepo repository.ChildRepository) PaymentService {
	return &paymentService{repo: repo, childRepo: childRepo}
}

// Upsert creates or updates the payment for (child, year, month). Idempotent
// per natural key — repeating the same request leaves one row.
func (s *paymentService) Upsert(ctx context.Context, req dto.UpsertPaymentRequest) (*dto.PaymentResponse, error) {
	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		return nil, errors.New("child_id invalide")
	}
	child, err := s.childRepo.FindByID(ctx, childID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}

	p, err := s.repo.FindByNaturalKey(ctx, childID, req.Year, req.Month)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = &model.Payment{ChildID: childID, Year: req.Year, Month: req.Month}
	case err != nil:
		return nil, err
	}

	p.AmountDue = req.AmountDue
	p.RegistrationFee = req.RegistrationFee
	p.AmountPaid = req.AmountPaid
	p.Validated = req.Validated
	p.Status = storedStatus(p.Validated)

	if p.ID == uuid.Nil {
		err = s.repo.Create(ctx, p)
	} else {
		err = s.repo.Update(ctx, p)
	}
	if err != nil {
		return nil, err
	}
	return paymentToResponse(p, child.EnrollmentMonth() == p.Month), nil
}

func (s *paymentService) UpdateAmountPaid(ctx context.Context, id uuid.UUID, amountPaid int64) (*dto.PaymentResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	isEnrollmentMonth, err := s.isEnrollmentMonth(ctx, p)
	if err != nil {
		return nil, err
	}

	p.AmountPaid = amountPaid
	p.Validated = amountPaid >= p.TotalDue(isEnrollmentMonth)
	p.Status = storedStatus(p.Validated)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return paymentToResponse(p, isEnrollmentMonth), nil
}

func (s *paymentService) Validate(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	// No amount re-check: the operator may settle a reduced payment.
	p.Validated = true
	p.Status = model.StatusValidated
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	isEnrollmentMonth, err := s.isEnrollmentMonth(ctx, p)
	if err != nil {
		return nil, err
	}
	return paymentToResponse(p, isEnrollmentMonth), nil
}

func (s *paymentService) isEnrollmentMonth(ctx context.Context, p *model.Payment) (bool, error) {
	child, err := s.childRepo.FindByID(ctx, p.ChildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrChildNotFound
		}
		return false, err
	}
	return child.EnrollmentMonth() == p.Month, nil
}

func storedStatus(validated bool) string {
	if validated {
		return model.StatusValidated
	}
	return ""
}

func paymentToResponse(p *model.Payment, isEnrollmentMonth bool) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:              p.ID.String(),
		ChildID:         p.ChildID.String(),
		Year:            p.Year,
		Month:           p.Month,
		AmountDue:       p.AmountDue,
		RegistrationFee: p.RegistrationFee,
		AmountPaid:      p.AmountPaid,
		Validated:       p.Validated,
		Status:          DeriveStatus(p, isEnrollmentMonth),
	}
}
