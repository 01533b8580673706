package service

import (
	"context"
	"sort"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/google/uuid"
)

// StatsService aggregates the dashboard figures: headcounts per section and
// the current month's payment totals.
type StatsService interface {
	Dashboard(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	childRepo   repository.ChildRepository
	paymentRepo repository.PaymentRepository
	now         func() time.Time
}

func NewStatsService(childRepo repository.ChildRepository, paymentRepo repository.PaymentRepository) StatsService {
	return &statsService{childRepo: childRepo, paymentRepo: paymentRepo, now: time.Now}
}

func (s *statsService) Dashboard(ctx context.Context) (*dto.StatsResponse, error) {
	now := s.now()
	year, month := now.Year(), int(now.Month())

	counts, err := s.childRepo.CountActiveBySection(ctx)
	if err != nil {
		return nil, err
	}
	sections := make([]dto.SectionCount, 0, len(counts))
	active := 0
	for section, n := range counts {
		sections = append(sections, dto.SectionCount{Section: section, Count: n})
		active += n
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Section < sections[j].Section })

	children, err := s.childRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	enrollMonth := make(map[uuid.UUID]int, len(children))
	for i := range children {
		enrollMonth[children[i].ID] = children[i].EnrollmentMonth()
	}

	payments, err := s.paymentRepo.ListByYearMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		ActiveChildren: active,
		Sections:       sections,
		Year:           year,
		Month:          month,
	}
	for i := range payments {
		p := &payments[i]
		resp.TotalDue += p.TotalDue(enrollMonth[p.ChildID] == p.Month)
		resp.TotalPaid += p.AmountPaid
		if p.Validated {
			resp.ValidatedPayments++
		} else {
			resp.PendingPayments++
		}
	}
	return resp, nil
}
