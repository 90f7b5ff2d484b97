package client

import (
	"context"
	"strings"
	"sync"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// ProjectRepository is the stateful project collection. Lists can be
// filtered to one client and a status.
type ProjectRepository struct {
	backend Backend
	state   *collection[models.Project]

	mu       sync.Mutex
	lastOpts ListOptions
}

// NewProjectRepository creates a project repository over the given backend.
func NewProjectRepository(backend Backend) *ProjectRepository {
	return &ProjectRepository{
		backend: backend,
		state:   newCollection(func(p models.Project) string { return p.ID }),
	}
}

// List fetches one page and replaces the in-memory collection with it.
func (r *ProjectRepository) List(ctx context.Context, opts ListOptions) ([]models.Project, dto.Pagination, error) {
	r.mu.Lock()
	r.lastOpts = opts
	r.mu.Unlock()

	gen := r.state.begin()
	projects, pagination, err := r.backend.ListProjects(ctx, opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	r.state.replace(gen, projects, pagination)
	return projects, pagination, nil
}

// GetByID fetches one project and sets it as the current item.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (models.Project, error) {
	project, err := r.backend.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	r.state.setCurrent(project)
	return project, nil
}

// Create validates name, status and the client selection before issuing any
// request, then prepends the created project and refreshes the first page.
func (r *ProjectRepository) Create(ctx context.Context, input ProjectInput) (models.Project, error) {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return models.Project{}, NewValidationError("project name is required")
	case strings.TrimSpace(input.ClientID) == "":
		return models.Project{}, NewValidationError("a client must be selected")
	case !models.ProjectStatus(input.Status).Valid():
		return models.Project{}, NewValidationError("invalid project status")
	}

	project, err := r.backend.CreateProject(ctx, input)
	if err != nil {
		return models.Project{}, err
	}
	r.state.prepend(project)
	r.refresh(ctx)
	return project, nil
}

// Update applies a partial update and merges the result into the collection
// and the current pointer.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch ProjectPatch) (models.Project, error) {
	if patch.Status != nil && !models.ProjectStatus(*patch.Status).Valid() {
		return models.Project{}, NewValidationError("invalid project status")
	}

	project, err := r.backend.UpdateProject(ctx, id, patch)
	if err != nil {
		return models.Project{}, err
	}
	r.state.update(project)
	r.refresh(ctx)
	return project, nil
}

// Delete removes the project from the backend and the collection, then
// refreshes the first page.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if err := r.backend.DeleteProject(ctx, id); err != nil {
		return err
	}
	r.state.remove(id)
	r.refresh(ctx)
	return nil
}

func (r *ProjectRepository) refresh(ctx context.Context) {
	r.mu.Lock()
	opts := r.lastOpts
	r.mu.Unlock()
	opts.Page = 1

	gen := r.state.begin()
	projects, pagination, err := r.backend.ListProjects(ctx, opts)
	if err != nil {
		return
	}
	r.state.replace(gen, projects, pagination)
}

// Projects returns the in-memory collection.
func (r *ProjectRepository) Projects() []models.Project {
	return r.state.Items()
}

// Pagination returns the last fetched pagination metadata.
func (r *ProjectRepository) Pagination() dto.Pagination {
	return r.state.Pagination()
}

// Current returns the current project, or nil.
func (r *ProjectRepository) Current() *models.Project {
	return r.state.Current()
}
