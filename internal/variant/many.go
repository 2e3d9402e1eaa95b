package variant

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/analyzer"
)

// SingleOrMany is a list of option blocks that the wire format may give as
// a bare object when there is only one, e.g. title, legend, grid or axes.
// T must not itself encode as a JSON array.
type SingleOrMany[T any] []T

// One returns a SingleOrMany holding v.
func One[T any](v T) SingleOrMany[T] {
	return SingleOrMany[T]{v}
}

// Many returns a SingleOrMany holding values in order.
func Many[T any](values ...T) SingleOrMany[T] {
	return append(SingleOrMany[T]{}, values...)
}

// Values returns the elements as a plain slice.
func (s SingleOrMany[T]) Values() []T {
	return []T(s)
}

// First returns the first element.
func (s SingleOrMany[T]) First() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// MarshalJSON implements json.Marshaler.
func (s SingleOrMany[T]) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	if len(s) == 1 {
		return Marshal(s[0])
	}
	return Marshal([]T(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SingleOrMany[T]) UnmarshalJSON(data []byte) error {
	switch analyzer.Peek(data) {
	case analyzer.Null:
		*s = nil
	case analyzer.UniformArray:
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*s = items
	default:
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*s = SingleOrMany[T]{item}
	}
	return nil
}
