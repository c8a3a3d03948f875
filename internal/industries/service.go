package industries

import (
	"context"
	"errors"

	"github.com/biztrack/biztrack/internal/shared"
)

// RepositoryPort defines data access methods for industries and
// associations.
type RepositoryPort interface {
	List(ctx context.Context) ([]IndustrySummary, error)
	Get(ctx context.Context, code string) (Industry, error)
	Create(ctx context.Context, input CreateIndustryInput) (Industry, error)
	CompanyExists(ctx context.Context, code string) (bool, error)
	IndustryExists(ctx context.Context, code string) (bool, error)
	CreateLink(ctx context.Context, companyCode, industryCode string) error
	DeleteLink(ctx context.Context, companyCode, industryCode string) error
}

// Service handles industry business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all industries with their associated company codes, or a
// not-found error when none exist.
func (s *Service) List(ctx context.Context) ([]IndustrySummary, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, shared.NotFoundf("No industries exist in this database.")
	}
	return out, nil
}

// Get returns one industry.
func (s *Service) Get(ctx context.Context, code string) (Industry, error) {
	ind, err := s.repo.Get(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return Industry{}, shared.NotFoundf("Industry code %s not found.", code)
	}
	if err != nil {
		return Industry{}, err
	}
	return ind, nil
}

// Create inserts an industry, deriving the code from the name when none is
// supplied.
func (s *Service) Create(ctx context.Context, input CreateIndustryInput) (Industry, error) {
	if input.Code == "" {
		input.Code = shared.Slugify(input.Name)
	}
	return s.repo.Create(ctx, input)
}

// Link associates a company with an industry. Both sides are checked
// explicitly before the insert, company first, each with its own lookup, so
// the not-found error names whichever side is missing.
func (s *Service) Link(ctx context.Context, industryCode, companyCode string) (Association, error) {
	ok, err := s.repo.CompanyExists(ctx, companyCode)
	if err != nil {
		return Association{}, err
	}
	if !ok {
		return Association{}, shared.NotFoundf("Company code %s not found.", companyCode)
	}

	ok, err = s.repo.IndustryExists(ctx, industryCode)
	if err != nil {
		return Association{}, err
	}
	if !ok {
		return Association{}, shared.NotFoundf("Industry code %s not found.", industryCode)
	}

	if err := s.repo.CreateLink(ctx, companyCode, industryCode); err != nil {
		return Association{}, err
	}
	return Association{CompanyCode: companyCode, IndustryCode: industryCode}, nil
}

// Unlink removes the association between a company and an industry with no
// existence pre-check; a pair that matches nothing still reports success.
func (s *Service) Unlink(ctx context.Context, industryCode, companyCode string) error {
	return s.repo.DeleteLink(ctx, companyCode, industryCode)
}
