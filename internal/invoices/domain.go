package invoices

import "time"

// Invoice represents an invoice row.
type Invoice struct {
	ID       int64      `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
	CompCode string     `json:"comp_code"`
}

// InvoiceSummary is the shape returned by the list endpoint: id and company
// code only, never amounts or payment state.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// CreateInvoiceInput for creating invoices.
type CreateInvoiceInput struct {
	CompCode string
	Amt      float64
}

// UpdateInvoiceInput carries the full replacement of an invoice's mutable
// fields.
type UpdateInvoiceInput struct {
	Amt  float64
	Paid bool
}
