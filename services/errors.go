package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidStatus     = errors.New("invalid project status")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidFieldType  = errors.New("invalid field type")
	ErrDuplicateFieldKey = errors.New("fieldKey already exists for this entity type")
	ErrBlankFieldKey     = errors.New("fieldKey and fieldLabel are required")
)
