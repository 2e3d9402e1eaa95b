package variant

import (
	"bytes"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
)

// Scalar lists the element types ArrayOrSingle supports.
type Scalar interface {
	int | float64 | string | bool
}

// ArrayOrSingle is a list of scalars that the wire format may give either
// as a bare scalar or as an array. The list is the canonical form: a bare
// scalar decodes to a one-element list and a one-element list encodes back
// to the bare scalar.
type ArrayOrSingle[T Scalar] []T

// Common instantiations.
type (
	Ints    = ArrayOrSingle[int]
	Floats  = ArrayOrSingle[float64]
	Strings = ArrayOrSingle[string]
	Bools   = ArrayOrSingle[bool]
)

// ArrayOf returns an ArrayOrSingle holding values in order.
func ArrayOf[T Scalar](values ...T) ArrayOrSingle[T] {
	return append(ArrayOrSingle[T]{}, values...)
}

// NewArrayOrSingle builds an ArrayOrSingle from a T, a []T, or a
// []interface{} whose elements are all T.
func NewArrayOrSingle[T Scalar](v interface{}) (ArrayOrSingle[T], error) {
	switch val := v.(type) {
	case T:
		return ArrayOrSingle[T]{val}, nil
	case []T:
		return ArrayOf[T](val...), nil
	case ArrayOrSingle[T]:
		return ArrayOf[T](val...), nil
	case []interface{}:
		out := make(ArrayOrSingle[T], len(val))
		for i, el := range val {
			x, ok := el.(T)
			if !ok {
				return nil, errors.NewConstructionError(scalarTarget[T](), el)
			}
			out[i] = x
		}
		return out, nil
	}
	return nil, errors.NewConstructionError(scalarTarget[T](), v)
}

// Values returns the elements as a plain slice.
func (a ArrayOrSingle[T]) Values() []T {
	return []T(a)
}

// Single returns the only element when the list has exactly one.
func (a ArrayOrSingle[T]) Single() (T, bool) {
	if len(a) != 1 {
		var zero T
		return zero, false
	}
	return a[0], true
}

// MarshalJSON implements json.Marshaler.
func (a ArrayOrSingle[T]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	if len(a) == 1 {
		return encodeScalar(a[0])
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, x := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := encodeScalar(x)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ArrayOrSingle[T]) UnmarshalJSON(data []byte) error {
	values, err := decodeArrayOrSingle[T](scalarTarget[T](), data)
	if err != nil {
		return err
	}
	*a = values
	return nil
}

func decodeArrayOrSingle[T Scalar](target string, data []byte) ([]T, error) {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return nil, err
	}
	switch {
	case kind == analyzer.Null:
		return nil, nil
	case kind.IsScalar():
		x, ok := scalarFrom[T](val)
		if !ok {
			return nil, shapeError(target, kind, scalarName[T](), "array")
		}
		return []T{x}, nil
	case kind == analyzer.UniformArray:
		arr := val.(models.JSONArray)
		out := make([]T, len(arr))
		for i, el := range arr {
			x, ok := scalarFrom[T](el)
			if !ok {
				return nil, shapeError(target, analyzer.Classify(el), scalarName[T]())
			}
			out[i] = x
		}
		return out, nil
	default:
		return nil, shapeError(target, kind, scalarName[T](), "array of "+scalarName[T]())
	}
}

func scalarFrom[T Scalar](v models.JSONValue) (T, bool) {
	var zero T
	var out interface{}
	var ok bool
	switch any(zero).(type) {
	case int:
		out, ok = asInt(v)
	case float64:
		out, ok = asFloat(v)
	case string:
		out, ok = asString(v)
	case bool:
		out, ok = asBool(v)
	}
	if !ok {
		return zero, false
	}
	return out.(T), true
}

func encodeScalar[T Scalar](x T) ([]byte, error) {
	if s, ok := any(x).(string); ok {
		return EncodeString(s)
	}
	return Marshal(x)
}

func scalarName[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "integer"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return "boolean"
	}
}

func scalarTarget[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "Ints"
	case float64:
		return "Floats"
	case string:
		return "Strings"
	default:
		return "Bools"
	}
}

// StringOrNumberList is a list whose elements may each be a string or a
// number, e.g. radius: ["40%", 120]. It follows the same collapse rule as
// ArrayOrSingle.
type StringOrNumberList []StringOrNumber

// StringOrNumberListOf builds a list from strings and Go numbers. Other
// payloads fail with a construction error.
func StringOrNumberListOf(values ...interface{}) (StringOrNumberList, error) {
	out := make(StringOrNumberList, len(values))
	for i, v := range values {
		if sn, ok := v.(StringOrNumber); ok {
			out[i] = sn
			continue
		}
		sn, err := NewStringOrNumber(v)
		if err != nil {
			return nil, errors.NewConstructionError("StringOrNumberList", v)
		}
		out[i] = sn
	}
	return out, nil
}

// Values returns the elements as a plain slice.
func (l StringOrNumberList) Values() []StringOrNumber {
	return []StringOrNumber(l)
}

// Texts returns every element formatted with StringOrNumber.Text.
func (l StringOrNumberList) Texts() []string {
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = v.Text()
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (l StringOrNumberList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	if len(l) == 1 {
		return l[0].MarshalJSON()
	}
	return Marshal([]StringOrNumber(l))
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringOrNumberList) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch {
	case kind == analyzer.Null:
		*l = nil
	case kind == analyzer.String || kind.IsNumber():
		*l = StringOrNumberList{fromStringOrNumber(val)}
	case kind == analyzer.UniformArray || kind == analyzer.MixedArray:
		arr := val.(models.JSONArray)
		out := make(StringOrNumberList, len(arr))
		for i, el := range arr {
			elKind := analyzer.Classify(el)
			if elKind != analyzer.String && !elKind.IsNumber() {
				return shapeError("StringOrNumberList", elKind, "string", "number")
			}
			out[i] = fromStringOrNumber(el)
		}
		*l = out
	default:
		return shapeError("StringOrNumberList", kind, "string", "number", "array")
	}
	return nil
}

func fromStringOrNumber(v models.JSONValue) StringOrNumber {
	if s, ok := asString(v); ok {
		return StringOrNumberFromString(s)
	}
	n, _ := asFloat(v)
	return StringOrNumberFromNumber(n)
}
