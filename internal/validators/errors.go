package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrRequiredField = errors.New("field is required")
	ErrFieldTooLong  = errors.New("field is too long")
	ErrInvalidField  = errors.New("field is invalid")
)
