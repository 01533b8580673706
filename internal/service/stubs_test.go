package service

// Shared in-memory repository stubs for the service tests. Each stub keeps the
// same semantics as its Postgres counterpart: ListActive ordering, natural-key
// lookups, the per-year counter upsert.

import (
	"context"
	"sort"
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/dto"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/model"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory ChildRepository stub ───────────────────────────────────────────

type stubChildRepo struct {
	children map[uuid.UUID]*model.Child
}

func newStubChildRepo() *stubChildRepo {
	return &stubChildRepo{children: make(map[uuid.UUID]*model.Child)}
}

func (r *stubChildRepo) Create(_ context.Context, c *model.Child) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	cloned := *c
	r.children[c.ID] = &cloned
	return nil
}

func (r *stubChildRepo) CreateBatch(ctx context.Context, children []model.Child) error {
	for i := range children {
		if err := r.Create(ctx, &children[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubChildRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Child, error) {
	c, ok := r.children[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubChildRepo) ListActive(_ context.Context) ([]model.Child, error) {
	var out []model.Child
	for _, c := range r.children {
		if c.Actif() {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nom != out[j].Nom {
			return out[i].Nom < out[j].Nom
		}
		return out[i].Prenom < out[j].Prenom
	})
	return out, nil
}

func (r *stubChildRepo) List(_ context.Context, filter dto.ChildFilter) ([]model.Child, error) {
	var out []model.Child
	for _, c := range r.children {
		if filter.Statut != "" && c.Statut != filter.Statut {
			continue
		}
		if filter.Section != "" && c.Section != filter.Section {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

func (r *stubChildRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.Child, error) {
	var out []model.Child
	for _, id := range ids {
		if c, ok := r.children[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubChildRepo) Update(_ context.Context, c *model.Child) error {
	cloned := *c
	r.children[c.ID] = &cloned
	return nil
}

func (r *stubChildRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.children, id)
	return nil
}

func (r *stubChildRepo) CountActiveBySection(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, c := range r.children {
		if c.Actif() {
			counts[c.Section]++
		}
	}
	return counts, nil
}

var _ repository.ChildRepository = (*stubChildRepo)(nil)

// ── In-memory PaymentRepository stub ─────────────────────────────────────────

type stubPaymentRepo struct {
	payments map[uuid.UUID]*model.Payment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[uuid.UUID]*model.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, p *model.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cloned := *p
	r.payments[p.ID] = &cloned
	return nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *model.Payment) error {
	p.UpdatedAt = time.Now()
	cloned := *p
	r.payments[p.ID] = &cloned
	return nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubPaymentRepo) FindByNaturalKey(_ context.Context, childID uuid.UUID, year, month int) (*model.Payment, error) {
	var best *model.Payment
	for _, p := range r.payments {
		if p.ChildID != childID || p.Year != year || p.Month != month {
			continue
		}
		if best == nil || p.UpdatedAt.After(best.UpdatedAt) {
			best = p
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *best
	return &cloned, nil
}

func (r *stubPaymentRepo) ListByYearMonth(_ context.Context, year, month int) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.Year == year && p.Month == month {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) ListForInvoicing(_ context.Context, year int, months []int, childIDs []uuid.UUID) ([]model.Payment, error) {
	wantMonth := make(map[int]bool, len(months))
	for _, m := range months {
		wantMonth[m] = true
	}
	wantChild := make(map[uuid.UUID]bool, len(childIDs))
	for _, id := range childIDs {
		wantChild[id] = true
	}
	var out []model.Payment
	for _, p := range r.payments {
		if p.Year == year && wantMonth[p.Month] && wantChild[p.ChildID] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) ValidatedChildIDs(_ context.Context, year, month int) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool)
	for _, p := range r.payments {
		if p.Year == year && p.Month == month && p.Validated {
			set[p.ChildID] = true
		}
	}
	return set, nil
}

func (r *stubPaymentRepo) DB() *gorm.DB { return nil }

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)

// ── In-memory CounterRepository stub ─────────────────────────────────────────

type stubCounterRepo struct {
	lastSeq map[int]int
}

func newStubCounterRepo() *stubCounterRepo {
	return &stubCounterRepo{lastSeq: make(map[int]int)}
}

func (r *stubCounterRepo) NextInvoiceSeq(_ context.Context, _ *gorm.DB, year int) (int, error) {
	r.lastSeq[year]++
	return r.lastSeq[year], nil
}

var _ repository.CounterRepository = (*stubCounterRepo)(nil)

// ── In-memory SettingRepository stub ─────────────────────────────────────────

type stubSettingRepo struct {
	saved *model.Setting
}

func (r *stubSettingRepo) Get(_ context.Context) (*model.Setting, error) {
	if r.saved == nil {
		def := model.DefaultSetting()
		return &def, nil
	}
	return r.saved, nil
}

func (r *stubSettingRepo) Save(_ context.Context, s *model.Setting) error {
	s.ID = 1
	cloned := *s
	r.saved = &cloned
	return nil
}

var _ repository.SettingRepository = (*stubSettingRepo)(nil)

// ── test fixtures ────────────────────────────────────────────────────────────

func datePtr(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func activeChild(nom, prenom string, inscription *time.Time) *model.Child {
	return &model.Child{
		Nom:             nom,
		Prenom:          prenom,
		DateNaissance:   time.Date(2021, time.March, 12, 0, 0, 0, 0, time.UTC),
		Section:         model.SectionPetite,
		DateInscription: inscription,
		Statut:          model.StatutActif,
	}
}
