package models

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes an absent JSON field from an explicit null.
// Set is true whenever the field was present; Value is nil for null.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// NewOptionalString returns a present field holding s.
func NewOptionalString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}
