package client

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vodex-console/models"
)

// FieldRegistry holds the dynamic field definitions per entity type and
// validates custom-field values against them. Definitions are kept ordered
// by display order, ties broken by insertion order.
type FieldRegistry struct {
	backend Backend

	mu     sync.Mutex
	fields map[models.EntityType][]models.FieldDefinition
}

// NewFieldRegistry creates a field registry over the given backend.
func NewFieldRegistry(backend Backend) *FieldRegistry {
	return &FieldRegistry{
		backend: backend,
		fields:  make(map[models.EntityType][]models.FieldDefinition),
	}
}

// Load fetches the definitions for one entity type and replaces the cached
// set.
func (r *FieldRegistry) Load(ctx context.Context, entityType models.EntityType) ([]models.FieldDefinition, error) {
	if !entityType.Valid() {
		return nil, NewValidationError("invalid entity type")
	}
	fields, err := r.backend.ListFields(ctx, entityType)
	if err != nil {
		return nil, err
	}
	r.setFields(entityType, fields)
	return r.Fields(entityType), nil
}

// Fields returns the cached definitions for one entity type, ordered.
func (r *FieldRegistry) Fields(entityType models.EntityType) []models.FieldDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.FieldDefinition, len(r.fields[entityType]))
	copy(out, r.fields[entityType])
	return out
}

// ActiveFields returns the cached definitions that are active, ordered.
// Inactive fields are excluded from form rendering; their stored values on
// entities are untouched.
func (r *FieldRegistry) ActiveFields(entityType models.EntityType) []models.FieldDefinition {
	var active []models.FieldDefinition
	for _, field := range r.Fields(entityType) {
		if field.IsActive {
			active = append(active, field)
		}
	}
	return active
}

// Create adds a field definition. Blank keys and labels are rejected before
// any request; the key is immutable and unique per entity type from then on.
func (r *FieldRegistry) Create(ctx context.Context, entityType models.EntityType, input FieldInput) (models.FieldDefinition, error) {
	if !entityType.Valid() {
		return models.FieldDefinition{}, NewValidationError("invalid entity type")
	}
	if strings.TrimSpace(input.FieldKey) == "" || strings.TrimSpace(input.FieldLabel) == "" {
		return models.FieldDefinition{}, NewValidationError("field key and label are required")
	}

	field, err := r.backend.CreateField(ctx, entityType, input)
	if err != nil {
		return models.FieldDefinition{}, err
	}

	r.mu.Lock()
	r.fields[entityType] = append(r.fields[entityType], field)
	r.sortLocked(entityType)
	r.mu.Unlock()
	return field, nil
}

// Update edits a definition. The field key and entity type cannot change
// through this path.
func (r *FieldRegistry) Update(ctx context.Context, fieldID string, patch FieldPatch) (models.FieldDefinition, error) {
	field, err := r.backend.UpdateField(ctx, fieldID, patch)
	if err != nil {
		return models.FieldDefinition{}, err
	}
	r.replaceField(field)
	return field, nil
}

// Toggle flips a definition's active flag only.
func (r *FieldRegistry) Toggle(ctx context.Context, fieldID string) (models.FieldDefinition, error) {
	field, err := r.backend.ToggleField(ctx, fieldID)
	if err != nil {
		return models.FieldDefinition{}, err
	}
	r.replaceField(field)
	return field, nil
}

// Delete removes a definition. Values already stored under its key on
// existing entities are left in place.
func (r *FieldRegistry) Delete(ctx context.Context, fieldID string) error {
	if err := r.backend.DeleteField(ctx, fieldID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for entityType, fields := range r.fields {
		for i := range fields {
			if fields[i].ID == fieldID {
				r.fields[entityType] = append(fields[:i], fields[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// Reorder reassigns display orders to match the given id sequence.
func (r *FieldRegistry) Reorder(ctx context.Context, entityType models.EntityType, orderedIDs []string) error {
	if !entityType.Valid() {
		return NewValidationError("invalid entity type")
	}
	if err := r.backend.ReorderFields(ctx, entityType, orderedIDs); err != nil {
		return err
	}

	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		position[id] = i
	}

	r.mu.Lock()
	fields := r.fields[entityType]
	for i := range fields {
		if order, ok := position[fields[i].ID]; ok {
			fields[i].DisplayOrder = order
		}
	}
	r.sortLocked(entityType)
	r.mu.Unlock()
	return nil
}

// Validate checks a submitted custom-field payload for one entity type
// against the active definitions. Unknown keys are ignored as opaque
// payload; inactive fields are skipped entirely.
func (r *FieldRegistry) Validate(entityType models.EntityType, values map[string]any) error {
	for _, def := range r.ActiveFields(entityType) {
		if err := ValidateValue(def, values[def.FieldKey]); err != nil {
			return err
		}
	}
	return nil
}

func (r *FieldRegistry) setFields(entityType models.EntityType, fields []models.FieldDefinition) {
	r.mu.Lock()
	r.fields[entityType] = append([]models.FieldDefinition(nil), fields...)
	r.sortLocked(entityType)
	r.mu.Unlock()
}

func (r *FieldRegistry) replaceField(field models.FieldDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fields := r.fields[field.EntityType]
	for i := range fields {
		if fields[i].ID == field.ID {
			fields[i] = field
			break
		}
	}
	r.sortLocked(field.EntityType)
}

// sortLocked orders by display order; sort.SliceStable keeps insertion
// order for equal values. Callers hold r.mu.
func (r *FieldRegistry) sortLocked(entityType models.EntityType) {
	fields := r.fields[entityType]
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].DisplayOrder < fields[j].DisplayOrder
	})
}
