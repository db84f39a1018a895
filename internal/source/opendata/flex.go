package opendata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The open-data exports changed encoding across legislatures: string fields
// appear either as plain scalars or wrapped as {"#text": "..."}, and
// relations appear either as a single object or as an array. FlexString and
// FlexList normalize both generations at the parser boundary so downstream
// code never re-checks shape.

// FlexString decodes a scalar string, a {"#text": ...} wrapper, or null.
// Whitespace is trimmed; an empty or absent value is not Valid.
type FlexString struct {
	Value string
	Valid bool
}

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = FlexString{}
		return nil
	}

	if data[0] == '{' {
		var wrapped struct {
			Text *string `json:"#text"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("decode wrapped string: %w", err)
		}
		if wrapped.Text == nil {
			*f = FlexString{}
			return nil
		}
		f.set(*wrapped.Text)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Some exports encode numeric codes without quotes.
		var n json.Number
		if numErr := json.Unmarshal(data, &n); numErr != nil {
			return fmt.Errorf("decode string: %w", err)
		}
		s = n.String()
	}
	f.set(s)
	return nil
}

func (f *FlexString) set(s string) {
	s = strings.TrimSpace(s)
	f.Value = s
	f.Valid = s != ""
}

// Ptr returns the value as an optional, nil when absent or empty.
func (f FlexString) Ptr() *string {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

func (f FlexString) String() string {
	return f.Value
}

// FlexList decodes either a JSON array of T or a single T, always yielding a
// slice (empty on null/absent).
type FlexList[T any] []T

func (l *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode list: %w", err)
		}
		*l = items
		return nil
	}

	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("decode single-element list: %w", err)
	}
	*l = []T{single}
	return nil
}
