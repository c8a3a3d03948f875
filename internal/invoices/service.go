package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/biztrack/biztrack/internal/shared"
)

// RepositoryPort defines data access methods for invoices.
type RepositoryPort interface {
	List(ctx context.Context) ([]InvoiceSummary, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error)
	Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles invoice business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns all invoices, or a not-found error when none exist.
func (s *Service) List(ctx context.Context) ([]InvoiceSummary, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, shared.NotFoundf("No invoices exist in this database.")
	}
	return out, nil
}

// Get returns the full record for one invoice.
func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	inv, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Invoice{}, shared.NotFoundf("Invoice id %d not found.", id)
	}
	if err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

// Create inserts an invoice for a company.
func (s *Service) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	return s.repo.Create(ctx, input)
}

// Update replaces amt and paid, computing paid_date from the transition: a
// previously unpaid invoice that becomes paid is stamped now, an unpaid
// invoice is cleared, and an invoice that stays paid keeps its prior date.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInvoiceInput) (Invoice, error) {
	current, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Invoice{}, shared.NotFoundf("Invoice id %d not found.", id)
	}
	if err != nil {
		return Invoice{}, err
	}

	var paidDate *time.Time
	switch {
	case input.Paid && current.PaidDate == nil:
		now := s.now()
		paidDate = &now
	case !input.Paid:
		paidDate = nil
	default:
		paidDate = current.PaidDate
	}

	return s.repo.Update(ctx, id, input.Amt, input.Paid, paidDate)
}

// Delete removes an invoice. Deleting an id that matches nothing still
// reports success.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
