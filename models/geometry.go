// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONList is an arbitrary JSON array used for geometry metadata such as axis
// triples and rotation angles. It is persisted as JSON text.
type JSONList []any

// Value implements [driver.Valuer]. A nil list is stored as "[]".
func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]any(l))
	if err != nil {
		return nil, fmt.Errorf("error marshaling json list: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (l *JSONList) Scan(src any) error {
	data, err := jsonSource(src)
	if err != nil {
		return err
	}

	list := make(JSONList, 0)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("error unmarshaling json list: %w", err)
		}
	}
	*l = list
	return nil
}

// Clone returns a deep-enough copy of the list so that placements seeded
// from a model never share backing arrays with it.
func (l JSONList) Clone() JSONList {
	if l == nil {
		return JSONList{}
	}
	b, err := json.Marshal([]any(l))
	if err != nil {
		out := make(JSONList, len(l))
		copy(out, l)
		return out
	}
	var out JSONList
	if err := json.Unmarshal(b, &out); err != nil || out == nil {
		out = make(JSONList, len(l))
		copy(out, l)
	}
	return out
}

// StringList is a list of free-text values (for example, model tags)
// persisted as a JSON array.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("error marshaling string list: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (l *StringList) Scan(src any) error {
	data, err := jsonSource(src)
	if err != nil {
		return err
	}

	list := make(StringList, 0)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("error unmarshaling string list: %w", err)
		}
	}
	*l = list
	return nil
}

func jsonSource(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", src)
	}
}
