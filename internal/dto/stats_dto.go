package dto

// SectionCount is the number of active children in one section.
type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// StatsResponse feeds the dashboard cards: headcounts plus the current month's
// payment aggregates.
type StatsResponse struct {
	ActiveChildren    int            `json:"active_children"`
	Sections          []SectionCount `json:"sections"`
	Year              int            `json:"year"`
	Month             int            `json:"month"`
	TotalDue          int64          `json:"total_due"` // incl. enrollment-month fees
	TotalPaid         int64          `json:"total_paid"`
	ValidatedPayments int            `json:"validated_payments"`
	PendingPayments   int            `json:"pending_payments"`
}
