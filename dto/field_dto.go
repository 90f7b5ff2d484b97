package dto

import (
	"github.com/vodex-console/models"
)

// CreateFieldRequest is the body of POST /fields/{entityType}.
type CreateFieldRequest struct {
	FieldKey    string                  `json:"fieldKey" binding:"required"`
	FieldLabel  string                  `json:"fieldLabel" binding:"required"`
	FieldType   models.FieldType        `json:"fieldType" binding:"required"`
	Required    bool                    `json:"required"`
	Order       int                     `json:"order"`
	Options     []string                `json:"options"`
	Validation  *models.FieldValidation `json:"validation"`
	Description string                  `json:"description"`
}

// UpdateFieldRequest is the body of PUT /fields/{fieldId}. FieldKey and
// entityType are deliberately absent: neither is mutable after creation.
type UpdateFieldRequest struct {
	FieldLabel  *string                 `json:"fieldLabel"`
	FieldType   *models.FieldType       `json:"fieldType"`
	Required    *bool                   `json:"required"`
	Order       *int                    `json:"order"`
	Options     []string                `json:"options"`
	Validation  *models.FieldValidation `json:"validation"`
	Description *string                 `json:"description"`
}

// FieldOrder pairs a field definition with its new display order.
type FieldOrder struct {
	FieldID string `json:"fieldId" binding:"required"`
	Order   int    `json:"order"`
}

// ReorderFieldsRequest is the body of PATCH /fields/{entityType}/reorder.
type ReorderFieldsRequest struct {
	FieldOrders []FieldOrder `json:"fieldOrders" binding:"required"`
}

// FieldListResponse is the data payload of GET /fields/{entityType}.
type FieldListResponse struct {
	Fields []models.FieldDefinition `json:"fields"`
}

// FieldResponse is the data payload of single-field endpoints.
type FieldResponse struct {
	Field models.FieldDefinition `json:"field"`
}
