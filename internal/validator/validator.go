package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps JSON field names to human-readable messages.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

// Validator validates request DTOs against their `validate` tags.
type Validator struct {
	inner *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Error messages should name the wire field, not the Go field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{inner: v}
}

func (v *Validator) Validate(obj interface{}) error {
	err := v.inner.Struct(obj)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages[fe.Field()] = messageFor(fe)
	}
	return &ValidationError{Errors: messages}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		switch fe.Kind() {
		case reflect.String, reflect.Slice, reflect.Map:
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return "Must be at least " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "gte":
		return "Must be at least " + fe.Param()
	default:
		return fmt.Sprintf("Failed validation on '%s'", fe.Tag())
	}
}
