package companies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates resource not found.
var ErrNotFound = errors.New("companies: not found")

// Repository provides PostgreSQL backed persistence for companies.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all companies in store order, code and name only.
func (r *Repository) List(ctx context.Context) ([]CompanySummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompanySummary
	for rows.Next() {
		var c CompanySummary
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get returns one company merged with its invoices and associated industry
// names. The three lookups run sequentially without a transaction.
func (r *Repository) Get(ctx context.Context, code string) (CompanyDetail, error) {
	var d CompanyDetail
	var description pgtype.Text
	err := r.pool.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`,
		code,
	).Scan(&d.Code, &d.Name, &description)
	if errors.Is(err, pgx.ErrNoRows) {
		return CompanyDetail{}, ErrNotFound
	}
	if err != nil {
		return CompanyDetail{}, err
	}
	if description.Valid {
		d.Description = &description.String
	}

	invoices, err := r.listInvoices(ctx, code)
	if err != nil {
		return CompanyDetail{}, err
	}
	d.Invoices = invoices

	industries, err := r.listIndustryNames(ctx, code)
	if err != nil {
		return CompanyDetail{}, err
	}
	d.Industries = industries

	return d, nil
}

func (r *Repository) listInvoices(ctx context.Context, code string) ([]CompanyInvoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, amt, paid, add_date, paid_date, comp_code
		 FROM invoices
		 WHERE comp_code = $1`,
		code,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]CompanyInvoice, 0)
	for rows.Next() {
		var inv CompanyInvoice
		var addDate pgtype.Date
		var paidDate pgtype.Date
		if err := rows.Scan(&inv.ID, &inv.Amt, &inv.Paid, &addDate, &paidDate, &inv.CompCode); err != nil {
			return nil, err
		}
		if addDate.Valid {
			inv.AddDate = addDate.Time
		}
		if paidDate.Valid {
			t := paidDate.Time
			inv.PaidDate = &t
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *Repository) listIndustryNames(ctx context.Context, code string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT industries.name
		 FROM industries
		 INNER JOIN company_industry ON industries.code = company_industry.industry_code
		 INNER JOIN companies ON company_industry.company_code = companies.code
		 WHERE companies.code = $1`,
		code,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Create inserts a company. A missing name or a colliding code surfaces as a
// constraint violation from the store.
func (r *Repository) Create(ctx context.Context, input CreateCompanyInput) (Company, error) {
	var c Company
	var description pgtype.Text
	err := r.pool.QueryRow(ctx,
		`INSERT INTO companies (code, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING code, name, description`,
		input.Code, nullableText(input.Name), textOrNil(input.Description),
	).Scan(&c.Code, &c.Name, &description)
	if err != nil {
		return Company{}, err
	}
	if description.Valid {
		c.Description = &description.String
	}
	return c, nil
}

// Update fully replaces the mutable fields of the row matching code. An
// absent name binds as NULL so the not-null constraint rejects it, the same
// failure the insert path produces.
func (r *Repository) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	var c Company
	var desc pgtype.Text
	err := r.pool.QueryRow(ctx,
		`UPDATE companies
		 SET name = $2, description = $3
		 WHERE code = $1
		 RETURNING code, name, description`,
		code, nullableText(name), textOrNil(description),
	).Scan(&c.Code, &c.Name, &desc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, err
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	return c, nil
}

func nullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func textOrNil(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Delete removes the row matching code. A delete that matches nothing is
// still reported as success.
func (r *Repository) Delete(ctx context.Context, code string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	return err
}
