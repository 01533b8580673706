package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusValidated is the stored status string set by the explicit "Valider"
// action. All other display statuses are derived, never stored.
const StatusValidated = "validated"

// Payment is the ledger record for one (child, year, month). Created lazily on
// the first operator action for that month, mutated afterwards, never deleted.
// Amounts are whole dinars.
type Payment struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChildID uuid.UUID `gorm:"type:uuid;not null;index:idx_payments_natural_key,unique"`
	Year    int       `gorm:"not null;index:idx_payments_natural_key,unique"`
	Month   int       `gorm:"not null;index:idx_payments_natural_key,unique"`
	// AmountDue is the monthly fee for this month.
	AmountDue int64 `gorm:"not null;default:0"`
	// RegistrationFee is only charged on the child's enrollment month; for any
	// other month it is treated as 0 when computing totals.
	RegistrationFee int64  `gorm:"not null;default:0"`
	AmountPaid      int64  `gorm:"not null;default:0"`
	Validated       bool   `gorm:"not null;default:false"`
	Status          string `gorm:"type:varchar(20);not null;default:''"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Child *Child `gorm:"foreignKey:ChildID"`
}

// TotalDue is the amount owed for the month. The registration fee counts only
// when the month is the child's enrollment month.
func (p *Payment) TotalDue(isEnrollmentMonth bool) int64 {
	if isEnrollmentMonth {
		return p.AmountDue + p.RegistrationFee
	}
	return p.AmountDue
}

// Remaining is the outstanding balance, floored at zero.
func (p *Payment) Remaining(isEnrollmentMonth bool) int64 {
	r := p.TotalDue(isEnrollmentMonth) - p.AmountPaid
	if r < 0 {
		return 0
	}
	return r
}
