package services

import (
	"context"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
	"github.com/vodex-console/repositories"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
	uploads     *UploadService
}

// NewCompanyService creates a new company service instance
func NewCompanyService(uploads *UploadService) *CompanyService {
	return &CompanyService{
		companyRepo: repositories.NewCompanyRepository(),
		uploads:     uploads,
	}
}

// List retrieves one page of companies with pagination metadata
func (s *CompanyService) List(filter dto.CompanyFilter) (dto.CompanyListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	companies, totalCount, err := s.companyRepo.FindWithPagination(filter)
	if err != nil {
		return dto.CompanyListResponse{}, err
	}

	return dto.CompanyListResponse{
		Companies:  companies,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, totalCount),
	}, nil
}

// Get retrieves a single company by ID
func (s *CompanyService) Get(id string) (models.Company, error) {
	return s.companyRepo.FindByID(id)
}

// Create stores a new company, uploading its logo when one is attached
func (s *CompanyService) Create(ctx context.Context, userID string, input dto.CompanyInput) (models.Company, error) {
	company := models.Company{
		Name:         input.Name,
		CustomFields: input.CustomFields,
		CreatedByID:  userID,
	}
	if company.CustomFields == nil {
		company.CustomFields = models.JSONMap{}
	}

	if input.Logo != nil {
		url, err := s.uploads.Store(ctx, "companies", input.Logo)
		if err != nil {
			return models.Company{}, err
		}
		company.Logo = url
	}

	return s.companyRepo.Create(company)
}

// Update applies a partial update to a company
func (s *CompanyService) Update(ctx context.Context, id string, update dto.CompanyUpdate) (models.Company, error) {
	changes := map[string]any{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.CustomFields != nil {
		changes["custom_fields"] = update.CustomFields
	}
	if update.Logo != nil {
		url, err := s.uploads.Store(ctx, "companies", update.Logo)
		if err != nil {
			return models.Company{}, err
		}
		changes["logo"] = url
	}
	if len(changes) == 0 {
		return s.companyRepo.FindByID(id)
	}
	return s.companyRepo.Updates(id, changes)
}

// Delete removes a company and cascades to its clients and projects
func (s *CompanyService) Delete(id string) error {
	return s.companyRepo.Delete(id)
}
