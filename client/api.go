// Package client is the state-management layer of the Vodex console: a
// typed backend surface with HTTP and in-memory mock implementations,
// session handling, paginated entity repositories and the dynamic field
// registry that drives custom attributes on companies, clients and
// projects.
package client

import (
	"context"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// ListOptions carries the query parameters of a list call. Zero values fall
// back to page 1 / limit 10 on the backend.
type ListOptions struct {
	Page      int
	Limit     int
	Search    string
	CompanyID string // clients only
	ClientID  string // projects only
	Status    string // projects only
}

// FileUpload is an attachment sent with a multipart entity mutation.
type FileUpload struct {
	Name    string
	Content []byte
}

// CompanyInput is the payload of a company create.
type CompanyInput struct {
	Name         string
	CustomFields map[string]any
	Logo         *FileUpload
}

// CompanyPatch is a partial company update. Nil fields are untouched.
type CompanyPatch struct {
	Name         *string
	CustomFields map[string]any
	Logo         *FileUpload
}

// ClientInput is the payload of a client create.
type ClientInput struct {
	Name         string
	Email        string
	Phone        string
	CompanyID    string
	CustomFields map[string]any
	Avatar       *FileUpload
}

// ClientPatch is a partial client update. Nil fields are untouched.
type ClientPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	CompanyID    *string
	CustomFields map[string]any
	Avatar       *FileUpload
}

// ProjectInput is the payload of a project create.
type ProjectInput struct {
	Name         string
	Status       string
	ClientID     string
	CustomFields map[string]any
	Images       []FileUpload
}

// ProjectPatch is a partial project update. Images append to the existing
// set rather than replacing it.
type ProjectPatch struct {
	Name         *string
	Status       *string
	ClientID     *string
	CustomFields map[string]any
	Images       []FileUpload
}

// FieldInput is the payload of a field definition create.
type FieldInput struct {
	FieldKey    string
	FieldLabel  string
	FieldType   models.FieldType
	Required    bool
	Order       int
	Options     []string
	Validation  *models.FieldValidation
	Description string
}

// FieldPatch is a partial field definition update. FieldKey and entity type
// are absent on purpose: neither is mutable after creation.
type FieldPatch struct {
	FieldLabel  *string
	FieldType   *models.FieldType
	Required    *bool
	Order       *int
	Options     []string
	Validation  *models.FieldValidation
	Description *string
}

// Backend is the typed surface of the console's REST contract. client.Client
// speaks it over HTTP; MockBackend satisfies it from fixed in-memory data.
type Backend interface {
	Login(ctx context.Context, email, password string) (dto.AuthResponse, error)
	Me(ctx context.Context) (models.User, error)
	Logout(ctx context.Context) error

	ListCompanies(ctx context.Context, opts ListOptions) ([]models.Company, dto.Pagination, error)
	GetCompany(ctx context.Context, id string) (models.Company, error)
	CreateCompany(ctx context.Context, input CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, id string, patch CompanyPatch) (models.Company, error)
	DeleteCompany(ctx context.Context, id string) error

	ListClients(ctx context.Context, opts ListOptions) ([]models.Client, dto.Pagination, error)
	GetClient(ctx context.Context, id string) (models.Client, error)
	CreateClient(ctx context.Context, input ClientInput) (models.Client, error)
	UpdateClient(ctx context.Context, id string, patch ClientPatch) (models.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListProjects(ctx context.Context, opts ListOptions) ([]models.Project, dto.Pagination, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, input ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListFields(ctx context.Context, entityType models.EntityType) ([]models.FieldDefinition, error)
	CreateField(ctx context.Context, entityType models.EntityType, input FieldInput) (models.FieldDefinition, error)
	UpdateField(ctx context.Context, fieldID string, patch FieldPatch) (models.FieldDefinition, error)
	ToggleField(ctx context.Context, fieldID string) (models.FieldDefinition, error)
	DeleteField(ctx context.Context, fieldID string) error
	ReorderFields(ctx context.Context, entityType models.EntityType, orderedIDs []string) error
}
