package model

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that remembers whether it was sent.
//
// A missing key leaves it unset, an explicit null sets it to null and any
// other value sets it to that value. Update payloads use it so that
// {"name": null} clears a column while {} leaves it alone.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns a set, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns a set Optional holding SQL NULL.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// UnmarshalJSON is only called for keys present in the document, including
// keys whose value is null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON writes null for unset and null values.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o Optional[T]) IsSet() bool  { return o.set }
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether it is set and non-null.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// Arg returns the value to bind as a query argument: nil for null.
func (o Optional[T]) Arg() any {
	if o.null {
		return nil
	}
	return o.value
}
