package dto

import (
	"mime/multipart"

	"github.com/vodex-console/models"
)

// ProjectFilter represents filter criteria for the project list
type ProjectFilter struct {
	Page     int
	Limit    int
	Search   string
	ClientID string
	Status   string
}

// ProjectInput carries the parsed multipart payload of a project create.
type ProjectInput struct {
	Name         string
	Status       models.ProjectStatus
	ClientID     string
	CustomFields models.JSONMap
	Images       []*multipart.FileHeader
}

// ProjectUpdate carries a partial project update. Nil fields are untouched;
// a non-empty Images slice appends uploaded files to the project.
type ProjectUpdate struct {
	Name         *string
	Status       *models.ProjectStatus
	ClientID     *string
	CustomFields models.JSONMap
	Images       []*multipart.FileHeader
}

// ProjectListResponse is the data payload of GET /projects.
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	Pagination Pagination       `json:"pagination"`
}

// ProjectResponse is the data payload of single-project endpoints.
type ProjectResponse struct {
	Project models.Project `json:"project"`
}
