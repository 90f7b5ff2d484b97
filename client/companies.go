package client

import (
	"context"
	"strings"
	"sync"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// CompanyRepository is the stateful company collection behind the console's
// company screens.
type CompanyRepository struct {
	backend Backend
	state   *collection[models.Company]

	mu       sync.Mutex
	lastOpts ListOptions
}

// NewCompanyRepository creates a company repository over the given backend.
func NewCompanyRepository(backend Backend) *CompanyRepository {
	return &CompanyRepository{
		backend: backend,
		state:   newCollection(func(c models.Company) string { return c.ID }),
	}
}

// List fetches one page and replaces the in-memory collection with it.
// A response that lost the race to a later List call is discarded.
func (r *CompanyRepository) List(ctx context.Context, opts ListOptions) ([]models.Company, dto.Pagination, error) {
	r.mu.Lock()
	r.lastOpts = opts
	r.mu.Unlock()

	gen := r.state.begin()
	companies, pagination, err := r.backend.ListCompanies(ctx, opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	r.state.replace(gen, companies, pagination)
	return companies, pagination, nil
}

// GetByID fetches one company and sets it as the current item.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (models.Company, error) {
	company, err := r.backend.GetCompany(ctx, id)
	if err != nil {
		return models.Company{}, err
	}
	r.state.setCurrent(company)
	return company, nil
}

// Create validates the input, stores the company and prepends it to the
// collection, then refreshes the first page.
func (r *CompanyRepository) Create(ctx context.Context, input CompanyInput) (models.Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return models.Company{}, NewValidationError("company name is required")
	}

	company, err := r.backend.CreateCompany(ctx, input)
	if err != nil {
		return models.Company{}, err
	}
	r.state.prepend(company)
	r.refresh(ctx)
	return company, nil
}

// Update applies a partial update and merges the result into the collection
// and the current pointer.
func (r *CompanyRepository) Update(ctx context.Context, id string, patch CompanyPatch) (models.Company, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Company{}, NewValidationError("company name cannot be empty")
	}

	company, err := r.backend.UpdateCompany(ctx, id, patch)
	if err != nil {
		return models.Company{}, err
	}
	r.state.update(company)
	r.refresh(ctx)
	return company, nil
}

// Delete removes the company from the backend and the collection, then
// refreshes the first page.
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	if err := r.backend.DeleteCompany(ctx, id); err != nil {
		return err
	}
	r.state.remove(id)
	r.refresh(ctx)
	return nil
}

// refresh re-fetches the first page with the last used filters. Failures
// are swallowed: the collection simply keeps its optimistic state.
func (r *CompanyRepository) refresh(ctx context.Context) {
	r.mu.Lock()
	opts := r.lastOpts
	r.mu.Unlock()
	opts.Page = 1

	gen := r.state.begin()
	companies, pagination, err := r.backend.ListCompanies(ctx, opts)
	if err != nil {
		return
	}
	r.state.replace(gen, companies, pagination)
}

// Companies returns the in-memory collection.
func (r *CompanyRepository) Companies() []models.Company {
	return r.state.Items()
}

// Pagination returns the last fetched pagination metadata.
func (r *CompanyRepository) Pagination() dto.Pagination {
	return r.state.Pagination()
}

// Current returns the current company, or nil.
func (r *CompanyRepository) Current() *models.Company {
	return r.state.Current()
}
