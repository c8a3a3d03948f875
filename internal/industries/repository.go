package industries

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates resource not found.
var ErrNotFound = errors.New("industries: not found")

// Repository provides PostgreSQL backed persistence for industries and the
// company-industry association.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all industries, each with the codes of its associated
// companies gathered through the association table.
func (r *Repository) List(ctx context.Context) ([]IndustrySummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT industries.code, industries.name, company_industry.company_code
		 FROM industries
		 LEFT JOIN company_industry ON industries.code = company_industry.industry_code
		 ORDER BY industries.code, company_industry.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IndustrySummary
	index := make(map[string]int)
	for rows.Next() {
		var code, name string
		var companyCode pgtype.Text
		if err := rows.Scan(&code, &name, &companyCode); err != nil {
			return nil, err
		}
		i, ok := index[code]
		if !ok {
			out = append(out, IndustrySummary{Code: code, Name: name, Companies: make([]string, 0)})
			i = len(out) - 1
			index[code] = i
		}
		if companyCode.Valid {
			out[i].Companies = append(out[i].Companies, companyCode.String)
		}
	}
	return out, rows.Err()
}

// Get returns one industry.
func (r *Repository) Get(ctx context.Context, code string) (Industry, error) {
	var ind Industry
	err := r.pool.QueryRow(ctx,
		`SELECT code, name FROM industries WHERE code = $1`,
		code,
	).Scan(&ind.Code, &ind.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Industry{}, ErrNotFound
	}
	if err != nil {
		return Industry{}, err
	}
	return ind, nil
}

// Create inserts an industry.
func (r *Repository) Create(ctx context.Context, input CreateIndustryInput) (Industry, error) {
	var ind Industry
	err := r.pool.QueryRow(ctx,
		`INSERT INTO industries (code, name)
		 VALUES ($1, $2)
		 RETURNING code, name`,
		input.Code, input.Name,
	).Scan(&ind.Code, &ind.Name)
	if err != nil {
		return Industry{}, err
	}
	return ind, nil
}

// CompanyExists reports whether a company row with the code exists.
func (r *Repository) CompanyExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE code = $1)`,
		code,
	).Scan(&exists)
	return exists, err
}

// IndustryExists reports whether an industry row with the code exists.
func (r *Repository) IndustryExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM industries WHERE code = $1)`,
		code,
	).Scan(&exists)
	return exists, err
}

// CreateLink inserts an association row. Duplicate pairs are permitted.
func (r *Repository) CreateLink(ctx context.Context, companyCode, industryCode string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO company_industry (company_code, industry_code)
		 VALUES ($1, $2)`,
		companyCode, industryCode,
	)
	return err
}

// DeleteLink removes the matching association rows. A delete that matches
// nothing is still reported as success.
func (r *Repository) DeleteLink(ctx context.Context, companyCode, industryCode string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM company_industry
		 WHERE company_code = $1 AND industry_code = $2`,
		companyCode, industryCode,
	)
	return err
}
