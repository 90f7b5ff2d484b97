package client

import (
	"testing"

	"github.com/vodex-console/models"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestValidateValueRequired(t *testing.T) {
	def := models.FieldDefinition{
		FieldKey:   "industry",
		FieldLabel: "Industry",
		FieldType:  models.FieldText,
		Required:   true,
	}

	if err := ValidateValue(def, nil); !IsValidation(err) {
		t.Errorf("nil value on required field: got %v, want validation error", err)
	}
	if err := ValidateValue(def, ""); !IsValidation(err) {
		t.Errorf("empty value on required field: got %v, want validation error", err)
	}

	def.Required = false
	if err := ValidateValue(def, nil); err != nil {
		t.Errorf("nil value on optional field: got %v, want nil", err)
	}
}

func TestValidateValueByType(t *testing.T) {
	tests := []struct {
		name    string
		def     models.FieldDefinition
		value   any
		wantErr bool
	}{
		{
			name:  "text within bounds",
			def:   models.FieldDefinition{FieldType: models.FieldText, Validation: &models.FieldValidation{MinLength: intPtr(2), MaxLength: intPtr(5)}},
			value: "abc",
		},
		{
			name:    "text too short",
			def:     models.FieldDefinition{FieldType: models.FieldText, Validation: &models.FieldValidation{MinLength: intPtr(2)}},
			value:   "a",
			wantErr: true,
		},
		{
			name:    "textarea too long",
			def:     models.FieldDefinition{FieldType: models.FieldTextarea, Validation: &models.FieldValidation{MaxLength: intPtr(3)}},
			value:   "abcdef",
			wantErr: true,
		},
		{
			name:    "text pattern mismatch",
			def:     models.FieldDefinition{FieldType: models.FieldText, Validation: &models.FieldValidation{Pattern: `^\d+$`}},
			value:   "abc",
			wantErr: true,
		},
		{
			name:  "number in range",
			def:   models.FieldDefinition{FieldType: models.FieldNumber, Validation: &models.FieldValidation{Min: floatPtr(1), Max: floatPtr(10)}},
			value: 5,
		},
		{
			name:  "numeric string accepted",
			def:   models.FieldDefinition{FieldType: models.FieldNumber},
			value: "42.5",
		},
		{
			name:    "number below min",
			def:     models.FieldDefinition{FieldType: models.FieldNumber, Validation: &models.FieldValidation{Min: floatPtr(1)}},
			value:   0.5,
			wantErr: true,
		},
		{
			name:    "number not numeric",
			def:     models.FieldDefinition{FieldType: models.FieldNumber},
			value:   "abc",
			wantErr: true,
		},
		{
			name:  "select matches option",
			def:   models.FieldDefinition{FieldType: models.FieldSelect, Options: models.StringSlice{"red", "blue"}},
			value: "blue",
		},
		{
			name:    "select outside options",
			def:     models.FieldDefinition{FieldType: models.FieldSelect, Options: models.StringSlice{"red", "blue"}},
			value:   "green",
			wantErr: true,
		},
		{
			name:  "valid email",
			def:   models.FieldDefinition{FieldType: models.FieldEmail},
			value: "demo@vodex.com",
		},
		{
			name:    "invalid email",
			def:     models.FieldDefinition{FieldType: models.FieldEmail},
			value:   "not-an-email",
			wantErr: true,
		},
		{
			name:  "date only",
			def:   models.FieldDefinition{FieldType: models.FieldDate},
			value: "2026-08-30",
		},
		{
			name:  "rfc3339 timestamp",
			def:   models.FieldDefinition{FieldType: models.FieldDate},
			value: "2026-08-30T12:00:00Z",
		},
		{
			name:    "not a date",
			def:     models.FieldDefinition{FieldType: models.FieldDate},
			value:   "tomorrow",
			wantErr: true,
		},
		{
			name:  "boolean true",
			def:   models.FieldDefinition{FieldType: models.FieldBoolean},
			value: true,
		},
		{
			name:  "boolean string",
			def:   models.FieldDefinition{FieldType: models.FieldBoolean},
			value: "false",
		},
		{
			name:    "boolean junk",
			def:     models.FieldDefinition{FieldType: models.FieldBoolean},
			value:   "maybe",
			wantErr: true,
		},
		{
			name:  "https url",
			def:   models.FieldDefinition{FieldType: models.FieldURL},
			value: "https://vodex.com/path",
		},
		{
			name:    "url missing scheme",
			def:     models.FieldDefinition{FieldType: models.FieldURL},
			value:   "vodex.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.def.FieldLabel == "" {
				tt.def.FieldLabel = "Field"
			}
			err := ValidateValue(tt.def, tt.value)
			if tt.wantErr && !IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("got %v, want nil", err)
			}
		})
	}
}

func TestValidateValueUnknownType(t *testing.T) {
	def := models.FieldDefinition{FieldLabel: "Mystery", FieldType: models.FieldType("color")}
	if err := ValidateValue(def, "x"); !IsValidation(err) {
		t.Errorf("got %v, want validation error for unknown type", err)
	}
}
