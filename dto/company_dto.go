package dto

import (
	"mime/multipart"

	"github.com/vodex-console/models"
)

// CompanyFilter represents filter criteria for the company list
type CompanyFilter struct {
	Page   int
	Limit  int
	Search string
}

// CompanyInput carries the parsed multipart payload of a company create.
type CompanyInput struct {
	Name         string
	CustomFields models.JSONMap
	Logo         *multipart.FileHeader
}

// CompanyUpdate carries a partial company update. Nil fields are untouched.
type CompanyUpdate struct {
	Name         *string
	CustomFields models.JSONMap
	Logo         *multipart.FileHeader
}

// CompanyListResponse is the data payload of GET /companies.
type CompanyListResponse struct {
	Companies  []models.Company `json:"companies"`
	Pagination Pagination       `json:"pagination"`
}

// CompanyResponse is the data payload of single-company endpoints.
type CompanyResponse struct {
	Company models.Company `json:"company"`
}
