package client

import (
	"context"
	"strings"
	"sync"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// ClientRepository is the stateful client collection. Lists can be filtered
// to one company.
type ClientRepository struct {
	backend Backend
	state   *collection[models.Client]

	mu       sync.Mutex
	lastOpts ListOptions
}

// NewClientRepository creates a client repository over the given backend.
func NewClientRepository(backend Backend) *ClientRepository {
	return &ClientRepository{
		backend: backend,
		state:   newCollection(func(c models.Client) string { return c.ID }),
	}
}

// List fetches one page and replaces the in-memory collection with it.
func (r *ClientRepository) List(ctx context.Context, opts ListOptions) ([]models.Client, dto.Pagination, error) {
	r.mu.Lock()
	r.lastOpts = opts
	r.mu.Unlock()

	gen := r.state.begin()
	clients, pagination, err := r.backend.ListClients(ctx, opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	r.state.replace(gen, clients, pagination)
	return clients, pagination, nil
}

// GetByID fetches one client and sets it as the current item.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (models.Client, error) {
	client, err := r.backend.GetClient(ctx, id)
	if err != nil {
		return models.Client{}, err
	}
	r.state.setCurrent(client)
	return client, nil
}

// Create validates that name, email, phone and the company selection are
// present before issuing any request, then prepends the created client and
// refreshes the first page.
func (r *ClientRepository) Create(ctx context.Context, input ClientInput) (models.Client, error) {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return models.Client{}, NewValidationError("client name is required")
	case strings.TrimSpace(input.Email) == "":
		return models.Client{}, NewValidationError("client email is required")
	case strings.TrimSpace(input.Phone) == "":
		return models.Client{}, NewValidationError("client phone is required")
	case strings.TrimSpace(input.CompanyID) == "":
		return models.Client{}, NewValidationError("a company must be selected")
	}

	client, err := r.backend.CreateClient(ctx, input)
	if err != nil {
		return models.Client{}, err
	}
	r.state.prepend(client)
	r.refresh(ctx)
	return client, nil
}

// Update applies a partial update and merges the result into the collection
// and the current pointer.
func (r *ClientRepository) Update(ctx context.Context, id string, patch ClientPatch) (models.Client, error) {
	client, err := r.backend.UpdateClient(ctx, id, patch)
	if err != nil {
		return models.Client{}, err
	}
	r.state.update(client)
	r.refresh(ctx)
	return client, nil
}

// Delete removes the client from the backend and the collection, then
// refreshes the first page.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	if err := r.backend.DeleteClient(ctx, id); err != nil {
		return err
	}
	r.state.remove(id)
	r.refresh(ctx)
	return nil
}

func (r *ClientRepository) refresh(ctx context.Context) {
	r.mu.Lock()
	opts := r.lastOpts
	r.mu.Unlock()
	opts.Page = 1

	gen := r.state.begin()
	clients, pagination, err := r.backend.ListClients(ctx, opts)
	if err != nil {
		return
	}
	r.state.replace(gen, clients, pagination)
}

// Clients returns the in-memory collection.
func (r *ClientRepository) Clients() []models.Client {
	return r.state.Items()
}

// Pagination returns the last fetched pagination metadata.
func (r *ClientRepository) Pagination() dto.Pagination {
	return r.state.Pagination()
}

// Current returns the current client, or nil.
func (r *ClientRepository) Current() *models.Client {
	return r.state.Current()
}
