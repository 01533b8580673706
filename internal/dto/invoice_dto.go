package dto

// Invoice generation modes. Single produces one invoice per (child, month);
// Grouped produces one invoice per child covering all selected months.
const (
	InvoiceModeSingle  = "single"
	InvoiceModeGrouped = "grouped"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BuildInvoicesRequest is the JSON body of POST /v1/factures. The selection is
// processed in request order, so the same selection always yields the same
// invoices and numbering.
type BuildInvoicesRequest struct {
	Year     int      `json:"year"      validate:"required,min=2020,max=2030"`
	ChildIDs []string `json:"child_ids" validate:"required,min=1,dive,uuid"`
	Months   []int    `json:"months"    validate:"required,min=1,dive,min=1,max=12"`
	Mode     string   `json:"mode"      validate:"required,oneof=single grouped"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// InvoiceLine is one billed month on an invoice.
type InvoiceLine struct {
	MonthLabel string `json:"month_label"` // e.g. "Septembre 2024"
	Amount     int64  `json:"amount"`
}

// InvoiceResponse is the derived invoice handed to the renderer. Total is the
// exact integer sum of the line amounts.
type InvoiceResponse struct {
	InvoiceNumber string        `json:"invoice_number"` // FAC-{year}-{seq:03d}
	ChildID       string        `json:"child_id"`
	ChildName     string        `json:"child_name"`
	IssueDate     string        `json:"issue_date"` // YYYY-MM-DD
	Lines         []InvoiceLine `json:"lines"`
	Total         int64         `json:"total"`
	TotalInWords  string        `json:"total_in_words"`
	// PDFUrl is set once the async renderer has produced the file.
	PDFUrl string `json:"pdf_url,omitempty"`
}

type BuildInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
