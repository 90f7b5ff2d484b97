package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// MockAccessToken is the fixed opaque token issued by the mock backend.
const MockAccessToken = "mock-token-no-server"

// MockBackend satisfies the Backend surface from a fixed in-memory dataset,
// so the console can run with no server at all. Login accepts any non-empty
// credentials and always yields the demo admin account. All entity and
// field semantics match the real backend: pagination, search, duplicate-key
// rejection, cascade on delete, orphaned values on field delete.
type MockBackend struct {
	mu        sync.Mutex
	user      models.User
	companies []models.Company
	clients   []models.Client
	projects  []models.Project
	fields    []models.FieldDefinition
}

var _ Backend = (*MockBackend)(nil)

// NewMockBackend seeds the demo dataset.
func NewMockBackend() *MockBackend {
	now := time.Now()
	user := models.User{
		ID:        uuid.NewString(),
		Email:     "demo@vodex.com",
		Name:      "Demo User",
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	techCorp := models.Company{
		ID:   uuid.NewString(),
		Name: "TechCorp Solutions",
		CustomFields: models.JSONMap{
			"industry": "Technology",
		},
		CreatedByID: user.ID,
		CreatedAt:   now.Add(-48 * time.Hour),
		UpdatedAt:   now.Add(-48 * time.Hour),
	}
	greenLeaf := models.Company{
		ID:   uuid.NewString(),
		Name: "GreenLeaf Organic",
		CustomFields: models.JSONMap{
			"industry": "Agriculture",
		},
		CreatedByID: user.ID,
		CreatedAt:   now.Add(-72 * time.Hour),
		UpdatedAt:   now.Add(-72 * time.Hour),
	}

	john := models.Client{
		ID:           uuid.NewString(),
		Name:         "John Smith",
		Email:        "john.smith@techcorp.com",
		Phone:        "+1 555 0101",
		CompanyID:    techCorp.ID,
		CustomFields: models.JSONMap{},
		CreatedByID:  user.ID,
		CreatedAt:    now.Add(-40 * time.Hour),
		UpdatedAt:    now.Add(-40 * time.Hour),
	}
	sarah := models.Client{
		ID:           uuid.NewString(),
		Name:         "Sarah Johnson",
		Email:        "sarah.johnson@techcorp.com",
		Phone:        "+1 555 0102",
		CompanyID:    techCorp.ID,
		CustomFields: models.JSONMap{},
		CreatedByID:  user.ID,
		CreatedAt:    now.Add(-36 * time.Hour),
		UpdatedAt:    now.Add(-36 * time.Hour),
	}
	mike := models.Client{
		ID:           uuid.NewString(),
		Name:         "Mike Davis",
		Email:        "mike.davis@greenleaf.com",
		Phone:        "+1 555 0103",
		CompanyID:    greenLeaf.ID,
		CustomFields: models.JSONMap{},
		CreatedByID:  user.ID,
		CreatedAt:    now.Add(-30 * time.Hour),
		UpdatedAt:    now.Add(-30 * time.Hour),
	}

	ecommerce := models.Project{
		ID:           uuid.NewString(),
		Name:         "E-commerce Platform",
		Status:       models.ProjectActive,
		Images:       models.StringSlice{},
		ClientID:     john.ID,
		CustomFields: models.JSONMap{},
		CreatedByID:  user.ID,
		CreatedAt:    now.Add(-24 * time.Hour),
		UpdatedAt:    now.Add(-24 * time.Hour),
	}
	mobileApp := models.Project{
		ID:           uuid.NewString(),
		Name:         "Mobile App Development",
		Status:       models.ProjectPending,
		Images:       models.StringSlice{},
		ClientID:     sarah.ID,
		CustomFields: models.JSONMap{},
		CreatedByID:  user.ID,
		CreatedAt:    now.Add(-12 * time.Hour),
		UpdatedAt:    now.Add(-12 * time.Hour),
	}

	industry := models.FieldDefinition{
		ID:         uuid.NewString(),
		EntityType: models.EntityCompany,
		FieldKey:   "industry",
		FieldLabel: "Industry",
		FieldType:  models.FieldSelect,
		Options:    models.StringSlice{"Technology", "Agriculture", "Finance", "Retail"},
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return &MockBackend{
		user:      user,
		companies: []models.Company{techCorp, greenLeaf},
		clients:   []models.Client{john, sarah, mike},
		projects:  []models.Project{ecommerce, mobileApp},
		fields:    []models.FieldDefinition{industry},
	}
}

// Login accepts any non-empty credentials and returns the demo admin user
// with the fixed mock token.
func (m *MockBackend) Login(ctx context.Context, email, password string) (dto.AuthResponse, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return dto.AuthResponse{}, NewAuthenticationError("invalid email or password")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.user.LastLogin = &now
	return dto.AuthResponse{User: m.user, AccessToken: MockAccessToken}, nil
}

func (m *MockBackend) Me(ctx context.Context) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, nil
}

func (m *MockBackend) Logout(ctx context.Context) error {
	return nil
}

// page slices one page out of a filtered result set, newest first.
func page[T any](items []T, opts ListOptions) ([]T, dto.Pagination) {
	pageNum := opts.Page
	if pageNum < 1 {
		pageNum = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}

	total := int64(len(items))
	start := (pageNum - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, dto.NewPagination(pageNum, limit, total)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// mockUploadURL stands in for an object-storage URL.
func mockUploadURL(prefix, name string) string {
	return fmt.Sprintf("mock://uploads/%s/%s-%s", prefix, uuid.NewString(), name)
}

func (m *MockBackend) ListCompanies(ctx context.Context, opts ListOptions) ([]models.Company, dto.Pagination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var filtered []models.Company
	for _, company := range m.companies {
		if opts.Search != "" && !containsFold(company.Name, opts.Search) {
			continue
		}
		filtered = append(filtered, company)
	}
	companies, pagination := page(filtered, opts)
	return companies, pagination, nil
}

func (m *MockBackend) GetCompany(ctx context.Context, id string) (models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, company := range m.companies {
		if company.ID == id {
			return company, nil
		}
	}
	return models.Company{}, NewNotFoundError("company not found")
}

func (m *MockBackend) CreateCompany(ctx context.Context, input CompanyInput) (models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	company := models.Company{
		ID:           uuid.NewString(),
		Name:         input.Name,
		CustomFields: models.JSONMap(input.CustomFields),
		CreatedByID:  m.user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if company.CustomFields == nil {
		company.CustomFields = models.JSONMap{}
	}
	if input.Logo != nil {
		company.Logo = mockUploadURL("companies", input.Logo.Name)
	}
	m.companies = append([]models.Company{company}, m.companies...)
	return company, nil
}

func (m *MockBackend) UpdateCompany(ctx context.Context, id string, patch CompanyPatch) (models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.companies {
		if m.companies[i].ID != id {
			continue
		}
		if patch.Name != nil {
			m.companies[i].Name = *patch.Name
		}
		if patch.CustomFields != nil {
			m.companies[i].CustomFields = models.JSONMap(patch.CustomFields)
		}
		if patch.Logo != nil {
			m.companies[i].Logo = mockUploadURL("companies", patch.Logo.Name)
		}
		m.companies[i].UpdatedAt = time.Now()
		return m.companies[i], nil
	}
	return models.Company{}, NewNotFoundError("company not found")
}

// DeleteCompany cascades: the company's clients and their projects go too.
func (m *MockBackend) DeleteCompany(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	index := -1
	for i := range m.companies {
		if m.companies[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return NewNotFoundError("company not found")
	}
	m.companies = append(m.companies[:index], m.companies[index+1:]...)

	var keptClients []models.Client
	removed := map[string]bool{}
	for _, client := range m.clients {
		if client.CompanyID == id {
			removed[client.ID] = true
			continue
		}
		keptClients = append(keptClients, client)
	}
	m.clients = keptClients

	var keptProjects []models.Project
	for _, project := range m.projects {
		if removed[project.ClientID] {
			continue
		}
		keptProjects = append(keptProjects, project)
	}
	m.projects = keptProjects
	return nil
}

func (m *MockBackend) ListClients(ctx context.Context, opts ListOptions) ([]models.Client, dto.Pagination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var filtered []models.Client
	for _, client := range m.clients {
		if opts.CompanyID != "" && client.CompanyID != opts.CompanyID {
			continue
		}
		if opts.Search != "" &&
			!containsFold(client.Name, opts.Search) &&
			!containsFold(client.Email, opts.Search) &&
			!containsFold(client.Phone, opts.Search) {
			continue
		}
		filtered = append(filtered, m.withCompany(client))
	}
	clients, pagination := page(filtered, opts)
	return clients, pagination, nil
}

func (m *MockBackend) GetClient(ctx context.Context, id string) (models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, client := range m.clients {
		if client.ID == id {
			return m.withCompany(client), nil
		}
	}
	return models.Client{}, NewNotFoundError("client not found")
}

func (m *MockBackend) CreateClient(ctx context.Context, input ClientInput) (models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.companyExists(input.CompanyID) {
		return models.Client{}, NewValidationError("company not found")
	}
	now := time.Now()
	client := models.Client{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		CompanyID:    input.CompanyID,
		CustomFields: models.JSONMap(input.CustomFields),
		CreatedByID:  m.user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if client.CustomFields == nil {
		client.CustomFields = models.JSONMap{}
	}
	if input.Avatar != nil {
		client.Avatar = mockUploadURL("clients", input.Avatar.Name)
	}
	m.clients = append([]models.Client{client}, m.clients...)
	return m.withCompany(client), nil
}

func (m *MockBackend) UpdateClient(ctx context.Context, id string, patch ClientPatch) (models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.clients {
		if m.clients[i].ID != id {
			continue
		}
		if patch.CompanyID != nil {
			if !m.companyExists(*patch.CompanyID) {
				return models.Client{}, NewValidationError("company not found")
			}
			m.clients[i].CompanyID = *patch.CompanyID
		}
		if patch.Name != nil {
			m.clients[i].Name = *patch.Name
		}
		if patch.Email != nil {
			m.clients[i].Email = *patch.Email
		}
		if patch.Phone != nil {
			m.clients[i].Phone = *patch.Phone
		}
		if patch.CustomFields != nil {
			m.clients[i].CustomFields = models.JSONMap(patch.CustomFields)
		}
		if patch.Avatar != nil {
			m.clients[i].Avatar = mockUploadURL("clients", patch.Avatar.Name)
		}
		m.clients[i].UpdatedAt = time.Now()
		return m.withCompany(m.clients[i]), nil
	}
	return models.Client{}, NewNotFoundError("client not found")
}

// DeleteClient cascades to the client's projects.
func (m *MockBackend) DeleteClient(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	index := -1
	for i := range m.clients {
		if m.clients[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return NewNotFoundError("client not found")
	}
	m.clients = append(m.clients[:index], m.clients[index+1:]...)

	var kept []models.Project
	for _, project := range m.projects {
		if project.ClientID == id {
			continue
		}
		kept = append(kept, project)
	}
	m.projects = kept
	return nil
}

func (m *MockBackend) ListProjects(ctx context.Context, opts ListOptions) ([]models.Project, dto.Pagination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var filtered []models.Project
	for _, project := range m.projects {
		if opts.ClientID != "" && project.ClientID != opts.ClientID {
			continue
		}
		if opts.Status != "" && string(project.Status) != opts.Status {
			continue
		}
		if opts.Search != "" && !containsFold(project.Name, opts.Search) {
			continue
		}
		filtered = append(filtered, m.withClient(project))
	}
	projects, pagination := page(filtered, opts)
	return projects, pagination, nil
}

func (m *MockBackend) GetProject(ctx context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, project := range m.projects {
		if project.ID == id {
			return m.withClient(project), nil
		}
	}
	return models.Project{}, NewNotFoundError("project not found")
}

func (m *MockBackend) CreateProject(ctx context.Context, input ProjectInput) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := models.ProjectStatus(input.Status)
	if !status.Valid() {
		return models.Project{}, NewValidationError("invalid project status")
	}
	if !m.clientExists(input.ClientID) {
		return models.Project{}, NewValidationError("client not found")
	}
	now := time.Now()
	project := models.Project{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Status:       status,
		Images:       models.StringSlice{},
		ClientID:     input.ClientID,
		CustomFields: models.JSONMap(input.CustomFields),
		CreatedByID:  m.user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if project.CustomFields == nil {
		project.CustomFields = models.JSONMap{}
	}
	for _, image := range input.Images {
		project.Images = append(project.Images, mockUploadURL("projects", image.Name))
	}
	m.projects = append([]models.Project{project}, m.projects...)
	return m.withClient(project), nil
}

func (m *MockBackend) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID != id {
			continue
		}
		if patch.Status != nil {
			status := models.ProjectStatus(*patch.Status)
			if !status.Valid() {
				return models.Project{}, NewValidationError("invalid project status")
			}
			m.projects[i].Status = status
		}
		if patch.ClientID != nil {
			if !m.clientExists(*patch.ClientID) {
				return models.Project{}, NewValidationError("client not found")
			}
			m.projects[i].ClientID = *patch.ClientID
		}
		if patch.Name != nil {
			m.projects[i].Name = *patch.Name
		}
		if patch.CustomFields != nil {
			m.projects[i].CustomFields = models.JSONMap(patch.CustomFields)
		}
		for _, image := range patch.Images {
			m.projects[i].Images = append(m.projects[i].Images, mockUploadURL("projects", image.Name))
		}
		m.projects[i].UpdatedAt = time.Now()
		return m.withClient(m.projects[i]), nil
	}
	return models.Project{}, NewNotFoundError("project not found")
}

func (m *MockBackend) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError("project not found")
}

func (m *MockBackend) ListFields(ctx context.Context, entityType models.EntityType) ([]models.FieldDefinition, error) {
	if !entityType.Valid() {
		return nil, NewValidationError("invalid entity type")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FieldDefinition
	for _, field := range m.fields {
		if field.EntityType == entityType {
			out = append(out, field)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (m *MockBackend) CreateField(ctx context.Context, entityType models.EntityType, input FieldInput) (models.FieldDefinition, error) {
	if !entityType.Valid() {
		return models.FieldDefinition{}, NewValidationError("invalid entity type")
	}
	if !input.FieldType.Valid() {
		return models.FieldDefinition{}, NewValidationError("invalid field type")
	}
	key := strings.TrimSpace(input.FieldKey)
	label := strings.TrimSpace(input.FieldLabel)
	if key == "" || label == "" {
		return models.FieldDefinition{}, NewValidationError("fieldKey and fieldLabel cannot be blank")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, field := range m.fields {
		if field.EntityType == entityType && field.FieldKey == key {
			return models.FieldDefinition{}, NewValidationError("fieldKey already exists for this entity type")
		}
	}
	now := time.Now()
	field := models.FieldDefinition{
		ID:           uuid.NewString(),
		EntityType:   entityType,
		FieldKey:     key,
		FieldLabel:   label,
		FieldType:    input.FieldType,
		Required:     input.Required,
		DisplayOrder: input.Order,
		IsActive:     true,
		Options:      models.StringSlice(input.Options),
		Validation:   input.Validation,
		Description:  input.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.fields = append(m.fields, field)
	return field, nil
}

func (m *MockBackend) UpdateField(ctx context.Context, fieldID string, patch FieldPatch) (models.FieldDefinition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.fields {
		if m.fields[i].ID != fieldID {
			continue
		}
		if patch.FieldType != nil {
			if !patch.FieldType.Valid() {
				return models.FieldDefinition{}, NewValidationError("invalid field type")
			}
			m.fields[i].FieldType = *patch.FieldType
		}
		if patch.FieldLabel != nil {
			m.fields[i].FieldLabel = *patch.FieldLabel
		}
		if patch.Required != nil {
			m.fields[i].Required = *patch.Required
		}
		if patch.Order != nil {
			m.fields[i].DisplayOrder = *patch.Order
		}
		if patch.Options != nil {
			m.fields[i].Options = models.StringSlice(patch.Options)
		}
		if patch.Validation != nil {
			m.fields[i].Validation = patch.Validation
		}
		if patch.Description != nil {
			m.fields[i].Description = *patch.Description
		}
		m.fields[i].UpdatedAt = time.Now()
		return m.fields[i], nil
	}
	return models.FieldDefinition{}, NewNotFoundError("field not found")
}

func (m *MockBackend) ToggleField(ctx context.Context, fieldID string) (models.FieldDefinition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.fields {
		if m.fields[i].ID == fieldID {
			m.fields[i].IsActive = !m.fields[i].IsActive
			m.fields[i].UpdatedAt = time.Now()
			return m.fields[i], nil
		}
	}
	return models.FieldDefinition{}, NewNotFoundError("field not found")
}

// DeleteField removes the definition only; values stored under its key on
// entities are left in place.
func (m *MockBackend) DeleteField(ctx context.Context, fieldID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.fields {
		if m.fields[i].ID == fieldID {
			m.fields = append(m.fields[:i], m.fields[i+1:]...)
			return nil
		}
	}
	return NewNotFoundError("field not found")
}

func (m *MockBackend) ReorderFields(ctx context.Context, entityType models.EntityType, orderedIDs []string) error {
	if !entityType.Valid() {
		return NewValidationError("invalid entity type")
	}
	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		position[id] = i
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.fields {
		if m.fields[i].EntityType != entityType {
			continue
		}
		if order, ok := position[m.fields[i].ID]; ok {
			m.fields[i].DisplayOrder = order
		}
	}
	return nil
}

// callers hold m.mu
func (m *MockBackend) companyExists(id string) bool {
	for _, company := range m.companies {
		if company.ID == id {
			return true
		}
	}
	return false
}

func (m *MockBackend) clientExists(id string) bool {
	for _, client := range m.clients {
		if client.ID == id {
			return true
		}
	}
	return false
}

func (m *MockBackend) withCompany(client models.Client) models.Client {
	for i := range m.companies {
		if m.companies[i].ID == client.CompanyID {
			company := m.companies[i]
			client.Company = &company
			break
		}
	}
	return client
}

func (m *MockBackend) withClient(project models.Project) models.Project {
	for i := range m.clients {
		if m.clients[i].ID == project.ClientID {
			client := m.withCompany(m.clients[i])
			project.Client = &client
			break
		}
	}
	return project
}
