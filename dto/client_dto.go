package dto

import (
	"mime/multipart"

	"github.com/vodex-console/models"
)

// ClientFilter represents filter criteria for the client list
type ClientFilter struct {
	Page      int
	Limit     int
	Search    string
	CompanyID string
}

// ClientInput carries the parsed multipart payload of a client create.
type ClientInput struct {
	Name         string
	Email        string
	Phone        string
	CompanyID    string
	CustomFields models.JSONMap
	Avatar       *multipart.FileHeader
}

// ClientUpdate carries a partial client update. Nil fields are untouched.
type ClientUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	CompanyID    *string
	CustomFields models.JSONMap
	Avatar       *multipart.FileHeader
}

// ClientListResponse is the data payload of GET /clients.
type ClientListResponse struct {
	Clients    []models.Client `json:"clients"`
	Pagination Pagination      `json:"pagination"`
}

// ClientResponse is the data payload of single-client endpoints.
type ClientResponse struct {
	Client models.Client `json:"client"`
}
