package dto

// LedgerFilter is bound from the query string of GET /v1/ledger.
type LedgerFilter struct {
	Year  int `form:"year"  validate:"required,min=2020,max=2030"`
	Month int `form:"month" validate:"required,min=1,max=12"`
}

// LedgerRow is one active child in the monthly ledger. When no payment row
// exists yet, Generated is false, Payment is nil and no amounts are carried.
type LedgerRow struct {
	ChildID   string           `json:"child_id"`
	Nom       string           `json:"nom"`
	Prenom    string           `json:"prenom"`
	Section   string           `json:"section"`
	Generated bool             `json:"generated"`
	Status    string           `json:"status"`
	Payment   *PaymentResponse `json:"payment,omitempty"`
}

// LedgerResponse is the full per-month table, one row per active child.
type LedgerResponse struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Rows  []LedgerRow `json:"rows"`
}

// LateFilter is bound from the query string of GET /v1/retards.
// Precedent selects the previous month instead of the current one.
type LateFilter struct {
	Precedent bool `form:"precedent"`
}

// LateEntry is one unpaid (child, month) in the late-payment report.
type LateEntry struct {
	ChildID string `json:"child_id"`
	Nom     string `json:"nom"`
	Prenom  string `json:"prenom"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
}
