package patch

import (
	"bytes"
	"encoding/json"
)

// Optional represents a field that may or may not be present in a patch.
//   - Not set (absent from the payload): zero value, set=false
//   - Set to null: value=nil, set=true
//   - Set to a value: value=&T, set=true
type Optional[T any] struct {
	value *T
	set   bool
}

// NewOptional creates an Optional with a value
func NewOptional[T any](val T) Optional[T] {
	return Optional[T]{value: &val, set: true}
}

// NewOptionalPtr creates an Optional from a pointer.
// A nil pointer yields an explicit null.
func NewOptionalPtr[T any](val *T) Optional[T] {
	if val == nil {
		return Unset[T]()
	}
	return Optional[T]{value: val, set: true}
}

// Unset creates an Optional that was present as null
func Unset[T any]() Optional[T] {
	return Optional[T]{value: nil, set: true}
}

// NotSet creates an Optional that was absent
func NotSet[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether the field was present, even as null
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Value returns the pointer value (nil if absent or null)
func (o Optional[T]) Value() *T {
	return o.value
}

// IsUnset reports whether the field was present as null
func (o Optional[T]) IsUnset() bool {
	return o.set && o.value == nil
}

// HasValue reports whether the field was present with a non-null value
func (o Optional[T]) HasValue() bool {
	return o.set && o.value != nil
}

// ApplyTo copies the value into dst when one is present.
func (o Optional[T]) ApplyTo(dst *T) bool {
	if !o.HasValue() {
		return false
	}
	*dst = *o.value
	return true
}

// ApplyToPtr is ApplyTo for nullable destination fields.
func (o Optional[T]) ApplyToPtr(dst **T) bool {
	if !o.HasValue() {
		return false
	}
	v := *o.value
	*dst = &v
	return true
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what distinguishes an absent field from an explicit null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

// MarshalJSON renders null for absent and null fields alike.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}
