package industries

// Industry represents an industry row.
type Industry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IndustrySummary is the shape returned by the list endpoint: the industry
// plus the codes of every associated company.
type IndustrySummary struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Companies []string `json:"companies"`
}

// Association is a single company-industry link.
type Association struct {
	CompanyCode  string `json:"company_code"`
	IndustryCode string `json:"industry_code"`
}

// CreateIndustryInput for creating industries. Code is derived from Name
// when left empty.
type CreateIndustryInput struct {
	Code string
	Name string
}
