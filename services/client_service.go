package services

import (
	"context"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
	"github.com/vodex-console/repositories"
)

// ClientService handles business logic for clients
type ClientService struct {
	clientRepo  *repositories.ClientRepository
	companyRepo *repositories.CompanyRepository
	uploads     *UploadService
}

// NewClientService creates a new client service instance
func NewClientService(uploads *UploadService) *ClientService {
	return &ClientService{
		clientRepo:  repositories.NewClientRepository(),
		companyRepo: repositories.NewCompanyRepository(),
		uploads:     uploads,
	}
}

// List retrieves one page of clients with pagination metadata
func (s *ClientService) List(filter dto.ClientFilter) (dto.ClientListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	clients, totalCount, err := s.clientRepo.FindWithPagination(filter)
	if err != nil {
		return dto.ClientListResponse{}, err
	}

	return dto.ClientListResponse{
		Clients:    clients,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, totalCount),
	}, nil
}

// Get retrieves a single client by ID
func (s *ClientService) Get(id string) (models.Client, error) {
	return s.clientRepo.FindByID(id)
}

// Create stores a new client after verifying its company exists
func (s *ClientService) Create(ctx context.Context, userID string, input dto.ClientInput) (models.Client, error) {
	exists, err := s.companyRepo.Exists(input.CompanyID)
	if err != nil {
		return models.Client{}, err
	}
	if !exists {
		return models.Client{}, ErrCompanyNotFound
	}

	client := models.Client{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		CompanyID:    input.CompanyID,
		CustomFields: input.CustomFields,
		CreatedByID:  userID,
	}
	if client.CustomFields == nil {
		client.CustomFields = models.JSONMap{}
	}

	if input.Avatar != nil {
		url, err := s.uploads.Store(ctx, "clients", input.Avatar)
		if err != nil {
			return models.Client{}, err
		}
		client.Avatar = url
	}

	return s.clientRepo.Create(client)
}

// Update applies a partial update to a client
func (s *ClientService) Update(ctx context.Context, id string, update dto.ClientUpdate) (models.Client, error) {
	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}
	if update.CompanyID != nil {
		exists, err := s.companyRepo.Exists(*update.CompanyID)
		if err != nil {
			return models.Client{}, err
		}
		if !exists {
			return models.Client{}, ErrCompanyNotFound
		}
		changes["company_id"] = *update.CompanyID
	}
	if update.CustomFields != nil {
		changes["custom_fields"] = update.CustomFields
	}
	if update.Avatar != nil {
		url, err := s.uploads.Store(ctx, "clients", update.Avatar)
		if err != nil {
			return models.Client{}, err
		}
		changes["avatar"] = url
	}
	if len(changes) == 0 {
		return s.clientRepo.FindByID(id)
	}
	return s.clientRepo.Updates(id, changes)
}

// Delete removes a client and cascades to its projects
func (s *ClientService) Delete(id string) error {
	return s.clientRepo.Delete(id)
}
