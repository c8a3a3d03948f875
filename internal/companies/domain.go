package companies

import "time"

// Company represents a company row. Description is nullable and renders as
// JSON null when the row has none.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanySummary is the shape returned by the list endpoint.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyInvoice is an invoice row as embedded in a company detail response.
type CompanyInvoice struct {
	ID       int64      `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
	CompCode string     `json:"comp_code"`
}

// CompanyDetail merges a company with its invoices and the names of its
// associated industries.
type CompanyDetail struct {
	Company
	Invoices   []CompanyInvoice `json:"invoices"`
	Industries []string         `json:"industries"`
}

// CreateCompanyInput for creating companies. Code is derived from Name when
// left empty; a nil Description is stored as NULL.
type CreateCompanyInput struct {
	Code        string
	Name        string
	Description *string
}
