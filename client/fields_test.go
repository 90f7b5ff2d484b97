package client

import (
	"context"
	"testing"

	"github.com/vodex-console/models"
)

func newTestRegistry(t *testing.T) (*FieldRegistry, *MockBackend) {
	t.Helper()
	backend := NewMockBackend()
	registry := NewFieldRegistry(backend)
	if _, err := registry.Load(context.Background(), models.EntityCompany); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return registry, backend
}

func TestCreateFieldRejectsBlankKeyAndLabel(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := registry.Create(ctx, models.EntityCompany, FieldInput{FieldKey: "  ", FieldLabel: "Founded", FieldType: models.FieldDate})
	if !IsValidation(err) {
		t.Errorf("blank key: got %v, want validation error", err)
	}
	_, err = registry.Create(ctx, models.EntityCompany, FieldInput{FieldKey: "founded", FieldLabel: "", FieldType: models.FieldDate})
	if !IsValidation(err) {
		t.Errorf("blank label: got %v, want validation error", err)
	}
	if len(registry.Fields(models.EntityCompany)) != 1 {
		t.Errorf("registry grew on rejected create")
	}
}

func TestCreateFieldRejectsDuplicateKey(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	// The mock dataset already defines "industry" on companies.
	_, err := registry.Create(ctx, models.EntityCompany, FieldInput{
		FieldKey: "industry", FieldLabel: "Industry again", FieldType: models.FieldText,
	})
	if !IsValidation(err) {
		t.Fatalf("duplicate key: got %v, want validation error", err)
	}

	// The same key on a different entity type is fine.
	if _, err := registry.Create(ctx, models.EntityClient, FieldInput{
		FieldKey: "industry", FieldLabel: "Industry", FieldType: models.FieldText,
	}); err != nil {
		t.Fatalf("same key, different entity type: %v", err)
	}
}

func TestDoubleToggleRestoresActiveAndKeepsValues(t *testing.T) {
	registry, backend := newTestRegistry(t)
	ctx := context.Background()

	field := registry.Fields(models.EntityCompany)[0]
	original := field.IsActive

	toggled, err := registry.Toggle(ctx, field.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if toggled.IsActive == original {
		t.Fatal("first toggle did not flip the flag")
	}
	if len(registry.ActiveFields(models.EntityCompany)) != 0 {
		t.Error("inactive field still listed as active")
	}

	restored, err := registry.Toggle(ctx, field.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if restored.IsActive != original {
		t.Error("double toggle did not restore the flag")
	}

	// Stored entity values are untouched by either toggle.
	companies, _, err := backend.ListCompanies(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	for _, company := range companies {
		if _, ok := company.CustomFields["industry"]; !ok {
			t.Errorf("company %s lost its industry value", company.Name)
		}
	}
}

func TestDeleteFieldLeavesStoredValues(t *testing.T) {
	registry, backend := newTestRegistry(t)
	ctx := context.Background()

	field := registry.Fields(models.EntityCompany)[0]
	if err := registry.Delete(ctx, field.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(registry.Fields(models.EntityCompany)) != 0 {
		t.Error("definition still cached after delete")
	}

	companies, _, err := backend.ListCompanies(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	for _, company := range companies {
		if _, ok := company.CustomFields["industry"]; !ok {
			t.Errorf("company %s lost its industry value after field delete", company.Name)
		}
	}

	// The key can be recreated once the definition is gone.
	if _, err := registry.Create(ctx, models.EntityCompany, FieldInput{
		FieldKey: "industry", FieldLabel: "Industry", FieldType: models.FieldText,
	}); err != nil {
		t.Errorf("recreate after delete: %v", err)
	}
}

func TestReorderFields(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	founded, err := registry.Create(ctx, models.EntityCompany, FieldInput{
		FieldKey: "founded", FieldLabel: "Founded", FieldType: models.FieldDate, Order: 1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	industry := registry.Fields(models.EntityCompany)[0]

	if err := registry.Reorder(ctx, models.EntityCompany, []string{founded.ID, industry.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	fields := registry.Fields(models.EntityCompany)
	if fields[0].ID != founded.ID || fields[1].ID != industry.ID {
		t.Errorf("order after reorder = [%s %s], want [%s %s]",
			fields[0].FieldKey, fields[1].FieldKey, "founded", "industry")
	}
}

func TestRegistryValidateSkipsInactiveAndUnknown(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	// "industry" is a select field; an off-list value must be rejected.
	err := registry.Validate(models.EntityCompany, map[string]any{"industry": "Shipping"})
	if !IsValidation(err) {
		t.Errorf("off-list select value: got %v, want validation error", err)
	}

	// Unknown keys ride along as opaque payload.
	if err := registry.Validate(models.EntityCompany, map[string]any{
		"industry": "Technology",
		"legacy":   "whatever",
	}); err != nil {
		t.Errorf("unknown key: got %v, want nil", err)
	}

	// Once inactive, the field is not validated at all.
	field := registry.Fields(models.EntityCompany)[0]
	if _, err := registry.Toggle(ctx, field.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := registry.Validate(models.EntityCompany, map[string]any{"industry": "Shipping"}); err != nil {
		t.Errorf("inactive field still validated: %v", err)
	}
}
