package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates resource not found.
var ErrNotFound = errors.New("invoices: not found")

// Repository provides PostgreSQL backed persistence for invoices.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all invoices, id and company code only.
func (r *Repository) List(ctx context.Context) ([]InvoiceSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InvoiceSummary
	for rows.Next() {
		var inv InvoiceSummary
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Get returns the full record for one invoice.
func (r *Repository) Get(ctx context.Context, id int64) (Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, amt, paid, add_date, paid_date, comp_code
		 FROM invoices
		 WHERE id = $1`,
		id,
	)
	return scanInvoice(row)
}

// Create inserts an invoice with paid=false and a store-assigned add_date.
// A company code that references nothing surfaces as a foreign-key
// violation from the store.
func (r *Repository) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO invoices (comp_code, amt)
		 VALUES ($1, $2)
		 RETURNING id, amt, paid, add_date, paid_date, comp_code`,
		input.CompCode, input.Amt,
	)
	return scanInvoice(row)
}

// Update persists amt, paid, and the paid_date computed by the service.
func (r *Repository) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error) {
	var pd pgtype.Date
	if paidDate != nil {
		pd = pgtype.Date{Time: *paidDate, Valid: true}
	}
	row := r.pool.QueryRow(ctx,
		`UPDATE invoices
		 SET amt = $2, paid = $3, paid_date = $4
		 WHERE id = $1
		 RETURNING id, amt, paid, add_date, paid_date, comp_code`,
		id, amt, paid, pd,
	)
	return scanInvoice(row)
}

// Delete removes the row matching id. A delete that matches nothing is
// still reported as success.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var addDate pgtype.Date
	var paidDate pgtype.Date
	err := row.Scan(&inv.ID, &inv.Amt, &inv.Paid, &addDate, &paidDate, &inv.CompCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, err
	}
	if addDate.Valid {
		inv.AddDate = addDate.Time
	}
	if paidDate.Valid {
		t := paidDate.Time
		inv.PaidDate = &t
	}
	return inv, nil
}
