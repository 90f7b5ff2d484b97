package client

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/vodex-console/models"
)

// fieldValidator checks one submitted value against a field definition.
// Each field type carries its own validation contract; dispatch is over the
// closed set of types, not ad hoc string branching at call sites.
type fieldValidator interface {
	validate(def models.FieldDefinition, value any) error
}

var fieldValidators = map[models.FieldType]fieldValidator{
	models.FieldText:     textValidator{},
	models.FieldTextarea: textValidator{},
	models.FieldNumber:   numberValidator{},
	models.FieldDate:     dateValidator{},
	models.FieldEmail:    emailValidator{},
	models.FieldSelect:   selectValidator{},
	models.FieldBoolean:  booleanValidator{},
	models.FieldURL:      urlValidator{},
}

// ValidateValue checks one value against a field definition: the required
// flag first, then the type-specific contract. An empty optional value is
// always accepted.
func ValidateValue(def models.FieldDefinition, value any) error {
	if isEmptyValue(value) {
		if def.Required {
			return NewValidationError(fmt.Sprintf("%s is required", def.FieldLabel))
		}
		return nil
	}
	validator, ok := fieldValidators[def.FieldType]
	if !ok {
		return NewValidationError(fmt.Sprintf("%s has an unknown field type", def.FieldLabel))
	}
	return validator.validate(def, value)
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

type textValidator struct{}

func (textValidator) validate(def models.FieldDefinition, value any) error {
	s, ok := value.(string)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be text", def.FieldLabel))
	}
	if v := def.Validation; v != nil {
		if v.MinLength != nil && len(s) < *v.MinLength {
			return NewValidationError(fmt.Sprintf("%s must be at least %d characters", def.FieldLabel, *v.MinLength))
		}
		if v.MaxLength != nil && len(s) > *v.MaxLength {
			return NewValidationError(fmt.Sprintf("%s must be at most %d characters", def.FieldLabel, *v.MaxLength))
		}
		if v.Pattern != "" {
			re, err := regexp.Compile(v.Pattern)
			if err == nil && !re.MatchString(s) {
				return NewValidationError(fmt.Sprintf("%s has an invalid format", def.FieldLabel))
			}
		}
	}
	return nil
}

type numberValidator struct{}

func (numberValidator) validate(def models.FieldDefinition, value any) error {
	n, ok := toFloat(value)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be a number", def.FieldLabel))
	}
	if v := def.Validation; v != nil {
		if v.Min != nil && n < *v.Min {
			return NewValidationError(fmt.Sprintf("%s must be at least %v", def.FieldLabel, *v.Min))
		}
		if v.Max != nil && n > *v.Max {
			return NewValidationError(fmt.Sprintf("%s must be at most %v", def.FieldLabel, *v.Max))
		}
	}
	return nil
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

type dateValidator struct{}

func (dateValidator) validate(def models.FieldDefinition, value any) error {
	s, ok := value.(string)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be a date", def.FieldLabel))
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return NewValidationError(fmt.Sprintf("%s must be a valid date", def.FieldLabel))
}

type emailValidator struct{}

func (emailValidator) validate(def models.FieldDefinition, value any) error {
	s, ok := value.(string)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be an email address", def.FieldLabel))
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return NewValidationError(fmt.Sprintf("%s must be a valid email address", def.FieldLabel))
	}
	return nil
}

type selectValidator struct{}

func (selectValidator) validate(def models.FieldDefinition, value any) error {
	s, ok := value.(string)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be one of the configured options", def.FieldLabel))
	}
	for _, option := range def.Options {
		if s == option {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("%s must be one of the configured options", def.FieldLabel))
}

type booleanValidator struct{}

func (booleanValidator) validate(def models.FieldDefinition, value any) error {
	switch v := value.(type) {
	case bool:
		return nil
	case string:
		if _, err := strconv.ParseBool(v); err == nil {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("%s must be true or false", def.FieldLabel))
}

type urlValidator struct{}

func (urlValidator) validate(def models.FieldDefinition, value any) error {
	s, ok := value.(string)
	if !ok {
		return NewValidationError(fmt.Sprintf("%s must be a URL", def.FieldLabel))
	}
	parsed, err := url.Parse(s)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return NewValidationError(fmt.Sprintf("%s must be a valid http(s) URL", def.FieldLabel))
	}
	return nil
}
