package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator implements [Validator] for request and domain structs that
// declare their rules with `validate` struct tags.
//
// Field names reported in errors are the json names of the fields when present.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator and returns it as the
// Validator interface.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		default:
			return name
		}
	})

	return &StructValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given, only
// violations on those fields are reported.
//
// The first violation is returned wrapped in ErrRequiredField, ErrFieldTooLong
// or ErrInvalidField.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	typ := reflect.TypeOf(obj)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	for _, fieldErr := range validationErrors {
		if len(fields) > 0 && !slices.Contains(fields, fieldErr.Field()) {
			continue
		}
		return fieldError(fieldErr)
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return fmt.Errorf("%w: %s", ErrRequiredField, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", ErrFieldTooLong, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s failed on %s", ErrInvalidField, fe.Field(), fe.Tag())
	}
}
