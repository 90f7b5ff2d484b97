package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vodex-console/models"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"success":    status < 400,
		"message":    message,
		"data":       data,
		"timestamp":  "2026-08-30T00:00:00Z",
	})
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, "ok", map[string]any{"user": models.User{Email: "demo@vodex.com"}})
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL, TokenSource: func() string { return "token-123" }})
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("Authorization = %q, want Bearer token-123", gotAuth)
	}
}

func TestLogin401MapsToAuthenticationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "invalid email or password", nil)
	}))
	defer server.Close()

	unauthorizedCalled := false
	c := New(Options{BaseURL: server.URL, OnUnauthorized: func() { unauthorizedCalled = true }})

	_, err := c.Login(context.Background(), "demo@vodex.com", "wrong")
	if !IsAuthentication(err) {
		t.Fatalf("got %v, want authentication error", err)
	}
	// The message reaches the operator verbatim.
	if err.Error() != "invalid email or password" {
		t.Errorf("message = %q, want the server message verbatim", err.Error())
	}
	// Bad credentials are not a session loss.
	if unauthorizedCalled {
		t.Error("login failure triggered the forced-logout hook")
	}
}

func TestOther401TriggersForcedLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "invalid or expired token", nil)
	}))
	defer server.Close()

	unauthorizedCalled := false
	c := New(Options{BaseURL: server.URL, OnUnauthorized: func() { unauthorizedCalled = true }})

	_, _, err := c.ListCompanies(context.Background(), ListOptions{})
	if !IsAuthorization(err) {
		t.Fatalf("got %v, want authorization error", err)
	}
	if !unauthorizedCalled {
		t.Error("401 did not trigger the forced-logout hook")
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"404 is not found", http.StatusNotFound, IsNotFound},
		{"400 is validation", http.StatusBadRequest, IsValidation},
		{"500 is server", http.StatusInternalServerError, IsServer},
		{"503 is server", http.StatusServiceUnavailable, IsServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, "nope", nil)
			}))
			defer server.Close()

			c := New(Options{BaseURL: server.URL})
			_, err := c.GetCompany(context.Background(), "abc")
			if !tt.check(err) {
				t.Errorf("status %d mapped to %v", tt.status, err)
			}
		})
	}
}

func TestUnreachableBackendIsNetworkError(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:1/api"})
	_, err := c.GetCompany(context.Background(), "abc")
	if !IsNetwork(err) {
		t.Errorf("got %v, want network error", err)
	}
}

func TestListQueryParameters(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		writeEnvelope(w, http.StatusOK, "ok", map[string]any{"projects": []models.Project{}, "pagination": map[string]any{}})
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})
	_, _, err := c.ListProjects(context.Background(), ListOptions{
		Page: 2, Limit: 5, Search: "shop", ClientID: "c1", Status: "active",
	})
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}

	want := map[string]string{"page": "2", "limit": "5", "search": "shop", "clientId": "c1", "status": "active"}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Errorf("query %s = %q, want %q", key, gotQuery[key], value)
		}
	}
}

func TestCreateClientSendsMultipartForm(t *testing.T) {
	var (
		gotName, gotEmail, gotPhone, gotCompany string
		gotCustomFields                         map[string]any
		gotAvatarName                           string
		gotAvatarBytes                          int64
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotName = r.FormValue("name")
		gotEmail = r.FormValue("email")
		gotPhone = r.FormValue("phone")
		gotCompany = r.FormValue("companyId")
		json.Unmarshal([]byte(r.FormValue("customFields")), &gotCustomFields)
		if file, header, err := r.FormFile("avatar"); err == nil {
			gotAvatarName = header.Filename
			gotAvatarBytes = header.Size
			file.Close()
		}
		writeEnvelope(w, http.StatusCreated, "created", map[string]any{"client": models.Client{Name: r.FormValue("name")}})
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})
	_, err := c.CreateClient(context.Background(), ClientInput{
		Name:         "John Smith",
		Email:        "john@techcorp.com",
		Phone:        "+1 555 0101",
		CompanyID:    "comp-1",
		CustomFields: map[string]any{"vip": true},
		Avatar:       &FileUpload{Name: "avatar.png", Content: []byte("png-bytes")},
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	if gotName != "John Smith" || gotEmail != "john@techcorp.com" || gotPhone != "+1 555 0101" || gotCompany != "comp-1" {
		t.Errorf("form scalars = %q %q %q %q", gotName, gotEmail, gotPhone, gotCompany)
	}
	if gotCustomFields["vip"] != true {
		t.Errorf("customFields = %v, want vip:true", gotCustomFields)
	}
	if gotAvatarName != "avatar.png" || gotAvatarBytes != int64(len("png-bytes")) {
		t.Errorf("avatar = %q (%d bytes)", gotAvatarName, gotAvatarBytes)
	}
}

func TestUpdateOmitsAbsentFields(t *testing.T) {
	var present map[string]bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(1 << 20)
		present = map[string]bool{}
		for key := range r.MultipartForm.Value {
			present[key] = true
		}
		writeEnvelope(w, http.StatusOK, "updated", map[string]any{"company": models.Company{}})
	}))
	defer server.Close()

	c := New(Options{BaseURL: server.URL})
	name := "New Name"
	if _, err := c.UpdateCompany(context.Background(), "comp-1", CompanyPatch{Name: &name}); err != nil {
		t.Fatalf("UpdateCompany: %v", err)
	}

	if !present["name"] {
		t.Error("name part missing from patch form")
	}
	if present["customFields"] {
		t.Error("customFields part sent for a name-only patch")
	}
}
