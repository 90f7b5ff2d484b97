package services

import (
	"strings"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
	"github.com/vodex-console/repositories"
)

// FieldService handles business logic for dynamic field definitions
type FieldService struct {
	fieldRepo *repositories.FieldRepository
}

// NewFieldService creates a new field service instance
func NewFieldService() *FieldService {
	return &FieldService{
		fieldRepo: repositories.NewFieldRepository(),
	}
}

// List retrieves all field definitions for one entity type, ordered
func (s *FieldService) List(entityType models.EntityType) ([]models.FieldDefinition, error) {
	if !entityType.Valid() {
		return nil, ErrInvalidEntityType
	}
	return s.fieldRepo.FindByEntityType(entityType)
}

// Create stores a new field definition. The fieldKey is unique within the
// entity type and immutable from then on.
func (s *FieldService) Create(entityType models.EntityType, req dto.CreateFieldRequest) (models.FieldDefinition, error) {
	if !entityType.Valid() {
		return models.FieldDefinition{}, ErrInvalidEntityType
	}
	if !req.FieldType.Valid() {
		return models.FieldDefinition{}, ErrInvalidFieldType
	}

	key := strings.TrimSpace(req.FieldKey)
	label := strings.TrimSpace(req.FieldLabel)
	if key == "" || label == "" {
		return models.FieldDefinition{}, ErrBlankFieldKey
	}

	taken, err := s.fieldRepo.KeyExists(entityType, key)
	if err != nil {
		return models.FieldDefinition{}, err
	}
	if taken {
		return models.FieldDefinition{}, ErrDuplicateFieldKey
	}

	field := models.FieldDefinition{
		EntityType:   entityType,
		FieldKey:     key,
		FieldLabel:   label,
		FieldType:    req.FieldType,
		Required:     req.Required,
		DisplayOrder: req.Order,
		IsActive:     true,
		Options:      models.StringSlice(req.Options),
		Validation:   req.Validation,
		Description:  req.Description,
	}
	return s.fieldRepo.Create(field)
}

// Update edits a field definition. FieldKey and entityType cannot change.
func (s *FieldService) Update(id string, req dto.UpdateFieldRequest) (models.FieldDefinition, error) {
	field, err := s.fieldRepo.FindByID(id)
	if err != nil {
		return models.FieldDefinition{}, err
	}

	if req.FieldLabel != nil {
		field.FieldLabel = *req.FieldLabel
	}
	if req.FieldType != nil {
		if !req.FieldType.Valid() {
			return models.FieldDefinition{}, ErrInvalidFieldType
		}
		field.FieldType = *req.FieldType
	}
	if req.Required != nil {
		field.Required = *req.Required
	}
	if req.Order != nil {
		field.DisplayOrder = *req.Order
	}
	if req.Options != nil {
		field.Options = models.StringSlice(req.Options)
	}
	if req.Validation != nil {
		field.Validation = req.Validation
	}
	if req.Description != nil {
		field.Description = *req.Description
	}

	return s.fieldRepo.Save(field)
}

// Toggle flips the active flag only. Values already stored on entities are
// never touched by a toggle.
func (s *FieldService) Toggle(id string) (models.FieldDefinition, error) {
	field, err := s.fieldRepo.FindByID(id)
	if err != nil {
		return models.FieldDefinition{}, err
	}
	field.IsActive = !field.IsActive
	return s.fieldRepo.Save(field)
}

// Delete removes a field definition. Stored custom-field values on existing
// entities are left in place.
func (s *FieldService) Delete(id string) error {
	return s.fieldRepo.Delete(id)
}

// Reorder reassigns display orders for an entity type
func (s *FieldService) Reorder(entityType models.EntityType, req dto.ReorderFieldsRequest) error {
	if !entityType.Valid() {
		return ErrInvalidEntityType
	}
	orders := make(map[string]int, len(req.FieldOrders))
	for _, fo := range req.FieldOrders {
		orders[fo.FieldID] = fo.Order
	}
	return s.fieldRepo.UpdateOrders(entityType, orders)
}
