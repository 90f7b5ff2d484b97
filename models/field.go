package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityType names the record kinds that can carry dynamic fields.
type EntityType string

const (
	EntityCompany EntityType = "company"
	EntityClient  EntityType = "client"
	EntityProject EntityType = "project"
)

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityCompany, EntityClient, EntityProject:
		return true
	}
	return false
}

// FieldType is the closed set of dynamic field variants. Each type carries
// its own validation contract (see the client field interpreter).
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
	FieldBoolean  FieldType = "boolean"
	FieldURL      FieldType = "url"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldNumber, FieldDate, FieldEmail, FieldSelect,
		FieldTextarea, FieldBoolean, FieldURL:
		return true
	}
	return false
}

// FieldValidation holds the optional per-type constraints of a field
// definition. Length bounds apply to text/textarea, min/max to number.
type FieldValidation struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

func (v FieldValidation) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *FieldValidation) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, v)
	case string:
		return json.Unmarshal([]byte(raw), v)
	}
	return fmt.Errorf("cannot scan %T into FieldValidation", value)
}

// FieldDefinition describes one operator-defined attribute of an entity type.
// FieldKey is immutable after creation and unique within its entity type;
// definitions are hard-deleted so a key can be recreated later.
type FieldDefinition struct {
	ID           string           `json:"id" gorm:"primaryKey;type:uuid"`
	EntityType   EntityType       `json:"entityType" gorm:"type:varchar(10);not null;uniqueIndex:idx_fields_entity_key"`
	FieldKey     string           `json:"fieldKey" gorm:"not null;uniqueIndex:idx_fields_entity_key"`
	FieldLabel   string           `json:"fieldLabel" gorm:"not null"`
	FieldType    FieldType        `json:"fieldType" gorm:"type:varchar(10);not null"`
	Required     bool             `json:"required"`
	DisplayOrder int              `json:"order" gorm:"column:display_order"`
	IsActive     bool             `json:"isActive" gorm:"default:true"`
	Options      StringSlice      `json:"options,omitempty" gorm:"type:jsonb"`
	Validation   *FieldValidation `json:"validation,omitempty" gorm:"type:jsonb"`
	Description  string           `json:"description,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (f *FieldDefinition) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
