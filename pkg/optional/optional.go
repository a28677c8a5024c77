// Package optional contains safer code to handle optional values.
package optional

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// Value is an optional value. The zero value of this structure
// is equivalent to the one you get when calling [None].
type Value[T any] struct {
	// indirect is the indirect pointer to the value.
	indirect *T
}

// None constructs an empty value.
func None[T any]() Value[T] {
	return Value[T]{nil}
}

// Some constructs a some value unless T is a pointer and points to
// nil, in which case [Some] is equivalent to [None].
func Some[T any](value T) Value[T] {
	v := Value[T]{}
	if !isNilPointer(value) {
		v.indirect = &value
	}
	return v
}

func isNilPointer[T any](value T) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// UnmarshalJSON implements json.Unmarshaler. Note that a `null` JSON
// value always leads to an empty Value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`null`)) {
		v.indirect = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	v.indirect = &value
	return nil
}

// MarshalJSON implements json.Marshaler. An empty value serializes
// to `null` and otherwise we serialize the underlying value.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.indirect == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(*v.indirect)
}

// IsNone returns whether this [Value] is empty.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// ErrIsNone is the panic value raised when unwrapping an empty [Value].
var ErrIsNone = errors.New("is none")

// Unwrap returns the underlying value or panics with [ErrIsNone]. In
// case of doubt, you should check [Value.IsNone] before calling it.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic(ErrIsNone)
	}
	return *v.indirect
}

// UnwrapOr returns the fallback if the [Value] is empty.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.indirect == nil {
		return fallback
	}
	return *v.indirect
}
