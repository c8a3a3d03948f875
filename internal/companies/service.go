package companies

import (
	"context"
	"errors"

	"github.com/biztrack/biztrack/internal/shared"
)

// RepositoryPort defines data access methods for companies.
type RepositoryPort interface {
	List(ctx context.Context) ([]CompanySummary, error)
	Get(ctx context.Context, code string) (CompanyDetail, error)
	Create(ctx context.Context, input CreateCompanyInput) (Company, error)
	Update(ctx context.Context, code, name string, description *string) (Company, error)
	Delete(ctx context.Context, code string) error
}

// Service handles company business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all companies, or a not-found error when none exist.
func (s *Service) List(ctx context.Context) ([]CompanySummary, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, shared.NotFoundf("No companies exist in this database.")
	}
	return out, nil
}

// Get returns one company with its invoices and industry names.
func (s *Service) Get(ctx context.Context, code string) (CompanyDetail, error) {
	d, err := s.repo.Get(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return CompanyDetail{}, shared.NotFoundf("Company code %s not found.", code)
	}
	if err != nil {
		return CompanyDetail{}, err
	}
	return d, nil
}

// Create inserts a company, deriving the code from the name when none is
// supplied.
func (s *Service) Create(ctx context.Context, input CreateCompanyInput) (Company, error) {
	if input.Code == "" {
		input.Code = shared.Slugify(input.Name)
	}
	return s.repo.Create(ctx, input)
}

// Update fully replaces the mutable fields of an existing company.
func (s *Service) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	c, err := s.repo.Update(ctx, code, name, description)
	if errors.Is(err, ErrNotFound) {
		return Company{}, shared.NotFoundf("Company code %s not found.", code)
	}
	if err != nil {
		return Company{}, err
	}
	return c, nil
}

// Delete removes a company. Deleting a code that matches nothing still
// reports success.
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
