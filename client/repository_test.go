package client

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// mutationCounter counts entity creates that reach the backend.
type mutationCounter struct {
	Backend
	clientCreates atomic.Int64
}

func (b *mutationCounter) CreateClient(ctx context.Context, input ClientInput) (models.Client, error) {
	b.clientCreates.Add(1)
	return b.Backend.CreateClient(ctx, input)
}

func TestCreateCompanyPrependsAndBumpsTotal(t *testing.T) {
	repo := NewCompanyRepository(NewMockBackend())
	ctx := context.Background()

	_, pagination, err := repo.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	before := pagination.TotalItems

	if _, err := repo.Create(ctx, CompanyInput{Name: "Acme"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	companies := repo.Companies()
	if len(companies) == 0 || companies[0].Name != "Acme" {
		t.Fatalf("first element = %+v, want Acme", companies)
	}
	if got := repo.Pagination().TotalItems; got != before+1 {
		t.Errorf("totalItems = %d, want %d", got, before+1)
	}
}

func TestUpdateCompanyMergesOnlyProvidedKeys(t *testing.T) {
	repo := NewCompanyRepository(NewMockBackend())
	ctx := context.Background()

	if _, _, err := repo.List(ctx, ListOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	original := repo.Companies()[0]

	name := "TechCorp Renamed"
	updated, err := repo.Update(ctx, original.ID, CompanyPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	if updated.ID != original.ID {
		t.Errorf("id changed on update")
	}
	// Keys not named in the patch keep their values.
	if updated.CustomFields["industry"] != original.CustomFields["industry"] {
		t.Errorf("customFields.industry = %v, want %v untouched",
			updated.CustomFields["industry"], original.CustomFields["industry"])
	}
	if updated.Logo != original.Logo {
		t.Errorf("logo changed by a name-only patch")
	}
}

func TestUpdateRefreshesCurrentPointer(t *testing.T) {
	repo := NewCompanyRepository(NewMockBackend())
	ctx := context.Background()

	if _, _, err := repo.List(ctx, ListOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	target := repo.Companies()[0]
	if _, err := repo.GetByID(ctx, target.ID); err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	name := "Renamed"
	if _, err := repo.Update(ctx, target.ID, CompanyPatch{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	current := repo.Current()
	if current == nil || current.Name != name {
		t.Errorf("current = %+v, want name %q", current, name)
	}
}

func TestDeleteThenGetByIDYieldsNotFound(t *testing.T) {
	repo := NewCompanyRepository(NewMockBackend())
	ctx := context.Background()

	if _, _, err := repo.List(ctx, ListOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	target := repo.Companies()[0]
	if _, err := repo.GetByID(ctx, target.ID); err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if err := repo.Delete(ctx, target.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, target.ID); !IsNotFound(err) {
		t.Errorf("GetByID after delete: got %v, want not found", err)
	}
	for _, company := range repo.Companies() {
		if company.ID == target.ID {
			t.Errorf("deleted company still listed")
		}
	}
	if current := repo.Current(); current != nil && current.ID == target.ID {
		t.Errorf("current pointer still refers to the deleted company")
	}
}

func TestCreateClientEmptyPhoneRejectedBeforeNetwork(t *testing.T) {
	backend := &mutationCounter{Backend: NewMockBackend()}
	repo := NewClientRepository(backend)
	ctx := context.Background()

	if _, _, err := repo.List(ctx, ListOptions{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	before := repo.Clients()

	_, err := repo.Create(ctx, ClientInput{
		Name:      "New Client",
		Email:     "new@client.com",
		Phone:     "",
		CompanyID: before[0].CompanyID,
	})
	if !IsValidation(err) {
		t.Fatalf("empty phone: got %v, want validation error", err)
	}
	if got := backend.clientCreates.Load(); got != 0 {
		t.Errorf("backend saw %d creates, want 0", got)
	}
	if len(repo.Clients()) != len(before) {
		t.Errorf("collection changed on rejected create")
	}
}

func TestDeleteCompanyCascadesInMock(t *testing.T) {
	backend := NewMockBackend()
	companies := NewCompanyRepository(backend)
	clients := NewClientRepository(backend)
	projects := NewProjectRepository(backend)
	ctx := context.Background()

	if _, _, err := companies.List(ctx, ListOptions{}); err != nil {
		t.Fatalf("List companies: %v", err)
	}
	var techCorp models.Company
	for _, company := range companies.Companies() {
		if company.Name == "TechCorp Solutions" {
			techCorp = company
		}
	}
	if techCorp.ID == "" {
		t.Fatal("seed data missing TechCorp Solutions")
	}

	if err := companies.Delete(ctx, techCorp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	remaining, _, err := clients.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List clients: %v", err)
	}
	for _, client := range remaining {
		if client.CompanyID == techCorp.ID {
			t.Errorf("client %s survived company delete", client.Name)
		}
	}
	remainingProjects, _, err := projects.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List projects: %v", err)
	}
	if len(remainingProjects) != 0 {
		t.Errorf("%d projects survived cascade, want 0", len(remainingProjects))
	}
}

func TestProjectCreateValidatesStatus(t *testing.T) {
	backend := NewMockBackend()
	repo := NewProjectRepository(backend)
	ctx := context.Background()

	clients, _, err := backend.ListClients(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}

	_, err = repo.Create(ctx, ProjectInput{Name: "X", Status: "archived", ClientID: clients[0].ID})
	if !IsValidation(err) {
		t.Errorf("bad status: got %v, want validation error", err)
	}

	if _, err := repo.Create(ctx, ProjectInput{Name: "X", Status: "active", ClientID: clients[0].ID}); err != nil {
		t.Errorf("valid create: %v", err)
	}
}

func TestStaleListResponseDiscarded(t *testing.T) {
	state := newCollection(func(c models.Company) string { return c.ID })

	older := state.begin()
	newer := state.begin()

	fresh := []models.Company{{ID: "new", Name: "Fresh"}}
	if !state.replace(newer, fresh, dto.Pagination{TotalItems: 1}) {
		t.Fatal("newest response rejected")
	}

	stale := []models.Company{{ID: "old", Name: "Stale"}}
	if state.replace(older, stale, dto.Pagination{TotalItems: 1}) {
		t.Fatal("stale response accepted")
	}

	items := state.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Errorf("collection = %+v, want the fresh page", items)
	}
}
