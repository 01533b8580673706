package dto

// Display status labels, kept identical to the legacy UI wording.
const (
	StatusNotGenerated      = "Non généré"
	StatusValidated         = "Validé"
	StatusOverdue           = "Retard"
	StatusPendingValidation = "À valider"
)

// PaymentStatus is the derived view of one payment: display label, total owed
// for the month and outstanding balance.
type PaymentStatus struct {
	Label     string `json:"label"`
	TotalDue  int64  `json:"total_due"`
	Remaining int64  `json:"remaining"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpsertPaymentRequest is the JSON body of POST /v1/paiements. Idempotent per
// (child_id, year, month).
type UpsertPaymentRequest struct {
	ChildID         string `json:"child_id"         validate:"required,uuid"`
	Year            int    `json:"year"             validate:"required,min=2020,max=2030"`
	Month           int    `json:"month"            validate:"required,min=1,max=12"`
	AmountDue       int64  `json:"amount_due"       validate:"min=0"`
	RegistrationFee int64  `json:"registration_fee" validate:"min=0"`
	AmountPaid      int64  `json:"amount_paid"      validate:"min=0"`
	Validated       bool   `json:"validated"`
}

// UpdateAmountPaidRequest is the quick-edit body of PATCH /v1/paiements/:id/montant.
// The service recomputes validated from the new amount.
type UpdateAmountPaidRequest struct {
	AmountPaid int64 `json:"amount_paid" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PaymentResponse struct {
	ID              string        `json:"id"`
	ChildID         string        `json:"child_id"`
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	AmountDue       int64         `json:"amount_due"`
	RegistrationFee int64         `json:"registration_fee"`
	AmountPaid      int64         `json:"amount_paid"`
	Validated       bool          `json:"validated"`
	Status          PaymentStatus `json:"status"`
}
