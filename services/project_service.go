package services

import (
	"context"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
	"github.com/vodex-console/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	clientRepo  *repositories.ClientRepository
	uploads     *UploadService
}

// NewProjectService creates a new project service instance
func NewProjectService(uploads *UploadService) *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		clientRepo:  repositories.NewClientRepository(),
		uploads:     uploads,
	}
}

// List retrieves one page of projects with pagination metadata
func (s *ProjectService) List(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Status != "" && !models.ProjectStatus(filter.Status).Valid() {
		return dto.ProjectListResponse{}, ErrInvalidStatus
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(filter)
	if err != nil {
		return dto.ProjectListResponse{}, err
	}

	return dto.ProjectListResponse{
		Projects:   projects,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, totalCount),
	}, nil
}

// Get retrieves a single project by ID
func (s *ProjectService) Get(id string) (models.Project, error) {
	return s.projectRepo.FindByID(id)
}

// Create stores a new project after verifying its client exists
func (s *ProjectService) Create(ctx context.Context, userID string, input dto.ProjectInput) (models.Project, error) {
	if !input.Status.Valid() {
		return models.Project{}, ErrInvalidStatus
	}

	exists, err := s.clientRepo.Exists(input.ClientID)
	if err != nil {
		return models.Project{}, err
	}
	if !exists {
		return models.Project{}, ErrClientNotFound
	}

	project := models.Project{
		Name:         input.Name,
		Status:       input.Status,
		ClientID:     input.ClientID,
		Images:       models.StringSlice{},
		CustomFields: input.CustomFields,
		CreatedByID:  userID,
	}
	if project.CustomFields == nil {
		project.CustomFields = models.JSONMap{}
	}

	for _, image := range input.Images {
		url, err := s.uploads.Store(ctx, "projects", image)
		if err != nil {
			return models.Project{}, err
		}
		if url != "" {
			project.Images = append(project.Images, url)
		}
	}

	return s.projectRepo.Create(project)
}

// Update applies a partial update to a project. Newly uploaded images are
// appended to the existing ones.
func (s *ProjectService) Update(ctx context.Context, id string, update dto.ProjectUpdate) (models.Project, error) {
	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return models.Project{}, ErrInvalidStatus
		}
		changes["status"] = *update.Status
	}
	if update.ClientID != nil {
		exists, err := s.clientRepo.Exists(*update.ClientID)
		if err != nil {
			return models.Project{}, err
		}
		if !exists {
			return models.Project{}, ErrClientNotFound
		}
		changes["client_id"] = *update.ClientID
	}
	if update.CustomFields != nil {
		changes["custom_fields"] = update.CustomFields
	}

	if len(update.Images) > 0 {
		current, err := s.projectRepo.FindByID(id)
		if err != nil {
			return models.Project{}, err
		}
		images := current.Images
		for _, image := range update.Images {
			url, err := s.uploads.Store(ctx, "projects", image)
			if err != nil {
				return models.Project{}, err
			}
			if url != "" {
				images = append(images, url)
			}
		}
		changes["images"] = images
	}

	if len(changes) == 0 {
		return s.projectRepo.FindByID(id)
	}
	return s.projectRepo.Updates(id, changes)
}

// Delete removes a project
func (s *ProjectService) Delete(id string) error {
	return s.projectRepo.Delete(id)
}
