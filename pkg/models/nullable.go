package models

import (
	"bytes"
	"encoding/json"
)

// NullableString tells an absent JSON field apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// NewNullableString returns a set value holding s.
func NewNullableString(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

// Null returns a set value holding JSON null.
func Null() NullableString {
	return NullableString{Set: true}
}

// UnmarshalJSON is only called when the key is present, so Set records presence.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(data, []byte("null")) {
		n.Value = nil

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	n.Value = &s

	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(*n.Value)
}

// Ptr returns a fresh pointer to the held value, or nil.
func (n NullableString) Ptr() *string {
	if n.Value == nil {
		return nil
	}

	s := *n.Value

	return &s
}
