package companies

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biztrack/biztrack/internal/shared"
)

type memoryCompanyRepo struct {
	companies  map[string]Company
	order      []string
	invoices   map[string][]CompanyInvoice
	industries map[string][]string
}

func newMemoryCompanyRepo() *memoryCompanyRepo {
	return &memoryCompanyRepo{
		companies:  make(map[string]Company),
		invoices:   make(map[string][]CompanyInvoice),
		industries: make(map[string][]string),
	}
}

func strPtr(s string) *string {
	return &s
}

func (r *memoryCompanyRepo) add(c Company) {
	if _, ok := r.companies[c.Code]; !ok {
		r.order = append(r.order, c.Code)
	}
	r.companies[c.Code] = c
}

func (r *memoryCompanyRepo) List(ctx context.Context) ([]CompanySummary, error) {
	var out []CompanySummary
	for _, code := range r.order {
		c := r.companies[code]
		out = append(out, CompanySummary{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

func (r *memoryCompanyRepo) Get(ctx context.Context, code string) (CompanyDetail, error) {
	c, ok := r.companies[code]
	if !ok {
		return CompanyDetail{}, ErrNotFound
	}
	d := CompanyDetail{Company: c, Invoices: make([]CompanyInvoice, 0), Industries: make([]string, 0)}
	d.Invoices = append(d.Invoices, r.invoices[code]...)
	d.Industries = append(d.Industries, r.industries[code]...)
	return d, nil
}

func (r *memoryCompanyRepo) Create(ctx context.Context, input CreateCompanyInput) (Company, error) {
	if input.Name == "" {
		return Company{}, errors.New(`null value in column "name" violates not-null constraint`)
	}
	if _, ok := r.companies[input.Code]; ok {
		return Company{}, fmt.Errorf("duplicate key value violates unique constraint %q", "companies_pkey")
	}
	c := Company{Code: input.Code, Name: input.Name, Description: input.Description}
	r.add(c)
	return c, nil
}

func (r *memoryCompanyRepo) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	c, ok := r.companies[code]
	if !ok {
		return Company{}, ErrNotFound
	}
	// the real repository binds an empty name as NULL, which trips the
	// not-null constraint once a row matches
	if name == "" {
		return Company{}, errors.New(`null value in column "name" violates not-null constraint`)
	}
	c.Name = name
	c.Description = description
	r.companies[code] = c
	return c, nil
}

func (r *memoryCompanyRepo) Delete(ctx context.Context, code string) error {
	delete(r.companies, code)
	for i, existing := range r.order {
		if existing == code {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestListReturnsCodeAndNamePairs(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.add(Company{Code: "acmecorp", Name: "ACME Corp.", Description: strPtr("The ACME Company.")})
	repo.add(Company{Code: "smackdown", Name: "Smackdown", Description: strPtr("Friday Night Smackdown.")})
	svc := NewService(repo)

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []CompanySummary{
		{Code: "acmecorp", Name: "ACME Corp."},
		{Code: "smackdown", Name: "Smackdown"},
	}, out)
}

func TestListEmptyIsNotFound(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.List(context.Background())
	var statusErr *shared.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 404, statusErr.Status)
	require.Equal(t, "No companies exist in this database.", statusErr.Message)
}

func TestGetMergesInvoicesAndIndustries(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.add(Company{Code: "acmecorp", Name: "ACME Corp.", Description: strPtr("The ACME Company.")})
	paidDate := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.invoices["acmecorp"] = []CompanyInvoice{
		{ID: 1, Amt: 100, CompCode: "acmecorp"},
		{ID: 3, Amt: 300, Paid: true, PaidDate: &paidDate, CompCode: "acmecorp"},
	}
	repo.industries["acmecorp"] = []string{"Accounting", "Marketing"}
	svc := NewService(repo)

	d, err := svc.Get(context.Background(), "acmecorp")
	require.NoError(t, err)
	require.Equal(t, "acmecorp", d.Code)
	require.Equal(t, "ACME Corp.", d.Name)
	require.NotNil(t, d.Description)
	require.Equal(t, "The ACME Company.", *d.Description)
	require.Len(t, d.Invoices, 2)
	for _, inv := range d.Invoices {
		require.Equal(t, "acmecorp", inv.CompCode)
	}
	require.Equal(t, []string{"Accounting", "Marketing"}, d.Industries)
}

func TestGetUnknownCodeIsNotFound(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Get(context.Background(), "notreal")
	var statusErr *shared.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 404, statusErr.Status)
	require.Equal(t, "Company code notreal not found.", statusErr.Message)
}

func TestCreateDerivesCodeFromName(t *testing.T) {
	repo := newMemoryCompanyRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), CreateCompanyInput{
		Name:        "The New Corp.",
		Description: strPtr("We're new to the database."),
	})
	require.NoError(t, err)
	require.Equal(t, "thenewcorp", c.Code)
	require.Equal(t, "The New Corp.", c.Name)
}

func TestCreateKeepsExplicitCode(t *testing.T) {
	repo := newMemoryCompanyRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), CreateCompanyInput{
		Code: "newcorp",
		Name: "The New Corp.",
	})
	require.NoError(t, err)
	require.Equal(t, "newcorp", c.Code)
}

func TestCreateWithoutDescriptionKeepsItNull(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	c, err := svc.Create(context.Background(), CreateCompanyInput{Name: "The New Corp."})
	require.NoError(t, err)
	require.Nil(t, c.Description)
}

func TestCreateDuplicateCodeFails(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.add(Company{Code: "acmecorp", Name: "ACME Corp."})
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateCompanyInput{Code: "acmecorp", Name: "Acme Corp"})
	require.Error(t, err)
	var statusErr *shared.StatusError
	require.False(t, errors.As(err, &statusErr), "duplicate insert must stay unclassified")
}

func TestUpdateReplacesMutableFields(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.add(Company{Code: "acmecorp", Name: "ACME Corp.", Description: strPtr("Old.")})
	svc := NewService(repo)

	c, err := svc.Update(context.Background(), "acmecorp", "ACME Corporation", strPtr("New."))
	require.NoError(t, err)
	require.Equal(t, "acmecorp", c.Code)
	require.Equal(t, "ACME Corporation", c.Name)
	require.NotNil(t, c.Description)
	require.Equal(t, "New.", *c.Description)
}

func TestUpdateWithoutNameFailsUnclassified(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.add(Company{Code: "acmecorp", Name: "ACME Corp.", Description: strPtr("Old.")})
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "acmecorp", "", strPtr("New."))
	require.Error(t, err)
	var statusErr *shared.StatusError
	require.False(t, errors.As(err, &statusErr), "constraint violations stay unclassified")
}

func TestUpdateUnknownCodeIsNotFound(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Update(context.Background(), "notreal", "Name", strPtr("Desc"))
	var statusErr *shared.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 404, statusErr.Status)
}

func TestUpdateUnknownCodeWithoutNameStillNotFound(t *testing.T) {
	// the row match is decided before the constraint can fire, so a missing
	// row wins over a missing name
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Update(context.Background(), "notreal", "", nil)
	var statusErr *shared.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 404, statusErr.Status)
}

func TestDeleteUnknownCodeSucceeds(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())
	require.NoError(t, svc.Delete(context.Background(), "notreal"))
}
