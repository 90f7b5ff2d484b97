package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// Client speaks the console's REST contract over HTTP. It attaches a bearer
// token to every request, decodes the shared response envelope and maps
// failures onto the error taxonomy. Nothing is retried.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string
	// TokenSource returns the current bearer token, or "" when logged out.
	TokenSource func() string
	// OnUnauthorized runs whenever an authenticated call returns 401. The
	// session manager hooks its forced logout here.
	OnUnauthorized func()
	// HTTPClient overrides the default 10 second timeout client.
	HTTPClient *http.Client
}

// New creates an HTTP backend client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	tokenSource := opts.TokenSource
	if tokenSource == nil {
		tokenSource = func() string { return "" }
	}
	return &Client{
		baseURL:        opts.BaseURL,
		httpClient:     httpClient,
		tokenSource:    tokenSource,
		onUnauthorized: opts.OnUnauthorized,
	}
}

var _ Backend = (*Client)(nil)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Timestamp  string          `json:"timestamp"`
}

// do issues one request and decodes the envelope. A non-2xx status is mapped
// onto the error taxonomy; out is left untouched on failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return NewNetworkError("failed to build request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewNetworkError("backend unreachable", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 500 {
			return NewServerError(fmt.Sprintf("server error (%d)", resp.StatusCode))
		}
		return NewNetworkError("malformed response", err)
	}

	if err := c.mapStatus(resp.StatusCode, path, env.Message); err != nil {
		return err
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return NewNetworkError("malformed response payload", err)
		}
	}
	return nil
}

// mapStatus converts a non-2xx status into a taxonomy error. A 401 on the
// login call is bad credentials; a 401 anywhere else means the session is no
// longer valid and triggers the forced-logout hook.
func (c *Client) mapStatus(status int, path, message string) error {
	if status < 400 {
		return nil
	}
	switch {
	case status == http.StatusUnauthorized:
		if path == "/auth/login" {
			return NewAuthenticationError(message)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return NewAuthorizationError(message)
	case status == http.StatusNotFound:
		return NewNotFoundError(message)
	case status >= 500:
		return NewServerError(message)
	default:
		return NewValidationError(message)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return NewNetworkError("failed to encode request", err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

// multipartBody assembles an entity mutation form: scalar string parts, a
// JSON-encoded customFields part when present, and file attachments.
func multipartBody(fields map[string]*string, customFields map[string]any, files map[string][]FileUpload) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := writer.WriteField(name, *value); err != nil {
			return nil, "", err
		}
	}

	if customFields != nil {
		encoded, err := json.Marshal(customFields)
		if err != nil {
			return nil, "", err
		}
		if err := writer.WriteField("customFields", string(encoded)); err != nil {
			return nil, "", err
		}
	}

	for name, uploads := range files {
		for _, upload := range uploads {
			part, err := writer.CreateFormFile(name, upload.Name)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(upload.Content); err != nil {
				return nil, "", err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.FormDataContentType(), nil
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]*string, customFields map[string]any, files map[string][]FileUpload, out any) error {
	body, contentType, err := multipartBody(fields, customFields, files)
	if err != nil {
		return NewNetworkError("failed to encode form", err)
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

func listQuery(opts ListOptions) url.Values {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.CompanyID != "" {
		query.Set("companyId", opts.CompanyID)
	}
	if opts.ClientID != "" {
		query.Set("clientId", opts.ClientID)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	return query
}

func strPtr(s string) *string { return &s }

// Login exchanges credentials for a user and access token.
func (c *Client) Login(ctx context.Context, email, password string) (dto.AuthResponse, error) {
	var auth dto.AuthResponse
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &auth)
	return auth, err
}

// Me revalidates the current token and returns the authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var payload dto.MeResponse
	if err := c.getJSON(ctx, "/auth/me", nil, &payload); err != nil {
		return models.User{}, err
	}
	return payload.User, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ListCompanies(ctx context.Context, opts ListOptions) ([]models.Company, dto.Pagination, error) {
	var payload dto.CompanyListResponse
	if err := c.getJSON(ctx, "/companies", listQuery(opts), &payload); err != nil {
		return nil, dto.Pagination{}, err
	}
	return payload.Companies, payload.Pagination, nil
}

func (c *Client) GetCompany(ctx context.Context, id string) (models.Company, error) {
	var payload dto.CompanyResponse
	if err := c.getJSON(ctx, "/companies/"+id, nil, &payload); err != nil {
		return models.Company{}, err
	}
	return payload.Company, nil
}

func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) (models.Company, error) {
	files := map[string][]FileUpload{}
	if input.Logo != nil {
		files["logo"] = []FileUpload{*input.Logo}
	}
	var payload dto.CompanyResponse
	err := c.sendMultipart(ctx, http.MethodPost, "/companies",
		map[string]*string{"name": strPtr(input.Name)}, input.CustomFields, files, &payload)
	return payload.Company, err
}

func (c *Client) UpdateCompany(ctx context.Context, id string, patch CompanyPatch) (models.Company, error) {
	files := map[string][]FileUpload{}
	if patch.Logo != nil {
		files["logo"] = []FileUpload{*patch.Logo}
	}
	var payload dto.CompanyResponse
	err := c.sendMultipart(ctx, http.MethodPatch, "/companies/"+id,
		map[string]*string{"name": patch.Name}, patch.CustomFields, files, &payload)
	return payload.Company, err
}

func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/companies/"+id, nil, nil, "", nil)
}

func (c *Client) ListClients(ctx context.Context, opts ListOptions) ([]models.Client, dto.Pagination, error) {
	var payload dto.ClientListResponse
	if err := c.getJSON(ctx, "/clients", listQuery(opts), &payload); err != nil {
		return nil, dto.Pagination{}, err
	}
	return payload.Clients, payload.Pagination, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (models.Client, error) {
	var payload dto.ClientResponse
	if err := c.getJSON(ctx, "/clients/"+id, nil, &payload); err != nil {
		return models.Client{}, err
	}
	return payload.Client, nil
}

func (c *Client) CreateClient(ctx context.Context, input ClientInput) (models.Client, error) {
	files := map[string][]FileUpload{}
	if input.Avatar != nil {
		files["avatar"] = []FileUpload{*input.Avatar}
	}
	var payload dto.ClientResponse
	err := c.sendMultipart(ctx, http.MethodPost, "/clients",
		map[string]*string{
			"name":      strPtr(input.Name),
			"email":     strPtr(input.Email),
			"phone":     strPtr(input.Phone),
			"companyId": strPtr(input.CompanyID),
		}, input.CustomFields, files, &payload)
	return payload.Client, err
}

func (c *Client) UpdateClient(ctx context.Context, id string, patch ClientPatch) (models.Client, error) {
	files := map[string][]FileUpload{}
	if patch.Avatar != nil {
		files["avatar"] = []FileUpload{*patch.Avatar}
	}
	var payload dto.ClientResponse
	err := c.sendMultipart(ctx, http.MethodPatch, "/clients/"+id,
		map[string]*string{
			"name":      patch.Name,
			"email":     patch.Email,
			"phone":     patch.Phone,
			"companyId": patch.CompanyID,
		}, patch.CustomFields, files, &payload)
	return payload.Client, err
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil, "", nil)
}

func (c *Client) ListProjects(ctx context.Context, opts ListOptions) ([]models.Project, dto.Pagination, error) {
	var payload dto.ProjectListResponse
	if err := c.getJSON(ctx, "/projects", listQuery(opts), &payload); err != nil {
		return nil, dto.Pagination{}, err
	}
	return payload.Projects, payload.Pagination, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	var payload dto.ProjectResponse
	if err := c.getJSON(ctx, "/projects/"+id, nil, &payload); err != nil {
		return models.Project{}, err
	}
	return payload.Project, nil
}

func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (models.Project, error) {
	files := map[string][]FileUpload{}
	if len(input.Images) > 0 {
		files["images"] = input.Images
	}
	var payload dto.ProjectResponse
	err := c.sendMultipart(ctx, http.MethodPost, "/projects",
		map[string]*string{
			"name":     strPtr(input.Name),
			"status":   strPtr(input.Status),
			"clientId": strPtr(input.ClientID),
		}, input.CustomFields, files, &payload)
	return payload.Project, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (models.Project, error) {
	files := map[string][]FileUpload{}
	if len(patch.Images) > 0 {
		files["images"] = patch.Images
	}
	var payload dto.ProjectResponse
	err := c.sendMultipart(ctx, http.MethodPatch, "/projects/"+id,
		map[string]*string{
			"name":     patch.Name,
			"status":   patch.Status,
			"clientId": patch.ClientID,
		}, patch.CustomFields, files, &payload)
	return payload.Project, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil, "", nil)
}

func (c *Client) ListFields(ctx context.Context, entityType models.EntityType) ([]models.FieldDefinition, error) {
	var payload dto.FieldListResponse
	if err := c.getJSON(ctx, "/fields/"+string(entityType), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Fields, nil
}

func (c *Client) CreateField(ctx context.Context, entityType models.EntityType, input FieldInput) (models.FieldDefinition, error) {
	req := dto.CreateFieldRequest{
		FieldKey:    input.FieldKey,
		FieldLabel:  input.FieldLabel,
		FieldType:   input.FieldType,
		Required:    input.Required,
		Order:       input.Order,
		Options:     input.Options,
		Validation:  input.Validation,
		Description: input.Description,
	}
	var payload dto.FieldResponse
	err := c.sendJSON(ctx, http.MethodPost, "/fields/"+string(entityType), req, &payload)
	return payload.Field, err
}

func (c *Client) UpdateField(ctx context.Context, fieldID string, patch FieldPatch) (models.FieldDefinition, error) {
	req := dto.UpdateFieldRequest{
		FieldLabel:  patch.FieldLabel,
		FieldType:   patch.FieldType,
		Required:    patch.Required,
		Order:       patch.Order,
		Options:     patch.Options,
		Validation:  patch.Validation,
		Description: patch.Description,
	}
	var payload dto.FieldResponse
	err := c.sendJSON(ctx, http.MethodPut, "/fields/"+fieldID, req, &payload)
	return payload.Field, err
}

func (c *Client) ToggleField(ctx context.Context, fieldID string) (models.FieldDefinition, error) {
	var payload dto.FieldResponse
	err := c.sendJSON(ctx, http.MethodPatch, "/fields/"+fieldID+"/toggle", nil, &payload)
	return payload.Field, err
}

func (c *Client) DeleteField(ctx context.Context, fieldID string) error {
	return c.do(ctx, http.MethodDelete, "/fields/"+fieldID, nil, nil, "", nil)
}

func (c *Client) ReorderFields(ctx context.Context, entityType models.EntityType, orderedIDs []string) error {
	req := dto.ReorderFieldsRequest{}
	for i, id := range orderedIDs {
		req.FieldOrders = append(req.FieldOrders, dto.FieldOrder{FieldID: id, Order: i})
	}
	return c.sendJSON(ctx, http.MethodPatch, "/fields/"+string(entityType)+"/reorder", req, nil)
}
