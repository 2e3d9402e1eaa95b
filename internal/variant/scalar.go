package variant

import (
	"strconv"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
)

// StringOrNumber holds a string or a number, e.g. a position given as
// "center" or 20.
type StringOrNumber struct {
	str   string
	num   float64
	isNum bool
	set   bool
}

// StringOrNumberFromString returns a StringOrNumber holding s.
func StringOrNumberFromString(s string) StringOrNumber {
	return StringOrNumber{str: s, set: true}
}

// StringOrNumberFromNumber returns a StringOrNumber holding n.
func StringOrNumberFromNumber(n float64) StringOrNumber {
	return StringOrNumber{num: n, isNum: true, set: true}
}

// NewStringOrNumber builds a StringOrNumber from a string or any Go numeric
// type. Other payloads fail with a construction error.
func NewStringOrNumber(v interface{}) (StringOrNumber, error) {
	if s, ok := v.(string); ok {
		return StringOrNumberFromString(s), nil
	}
	if n, ok := toFloat64(v); ok {
		return StringOrNumberFromNumber(n), nil
	}
	return StringOrNumber{}, errors.NewConstructionError("StringOrNumber", v)
}

// IsZero reports whether no arm is set.
func (v StringOrNumber) IsZero() bool { return !v.set }

// IsNumber reports whether the number arm is active.
func (v StringOrNumber) IsNumber() bool { return v.set && v.isNum }

// Str returns the string arm.
func (v StringOrNumber) Str() (string, bool) {
	return v.str, v.set && !v.isNum
}

// Number returns the number arm.
func (v StringOrNumber) Number() (float64, bool) {
	return v.num, v.IsNumber()
}

// Text returns the value as a string, formatting numbers in their shortest
// decimal form.
func (v StringOrNumber) Text() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON implements json.Marshaler.
func (v StringOrNumber) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.isNum:
		return Marshal(v.num)
	default:
		return EncodeString(v.str)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *StringOrNumber) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch {
	case kind == analyzer.Null:
		*v = StringOrNumber{}
	case kind == analyzer.String:
		s, _ := asString(val)
		*v = StringOrNumberFromString(s)
	case kind.IsNumber():
		n, _ := asFloat(val)
		*v = StringOrNumberFromNumber(n)
	default:
		return shapeError("StringOrNumber", kind, "string", "number")
	}
	return nil
}

// StringOrBool holds a string or a boolean, e.g. roam: true or "scale".
type StringOrBool struct {
	str    string
	b      bool
	isBool bool
	set    bool
}

// StringOrBoolFromString returns a StringOrBool holding s.
func StringOrBoolFromString(s string) StringOrBool {
	return StringOrBool{str: s, set: true}
}

// StringOrBoolFromBool returns a StringOrBool holding b.
func StringOrBoolFromBool(b bool) StringOrBool {
	return StringOrBool{b: b, isBool: true, set: true}
}

// NewStringOrBool builds a StringOrBool from a string or bool payload.
func NewStringOrBool(v interface{}) (StringOrBool, error) {
	switch val := v.(type) {
	case string:
		return StringOrBoolFromString(val), nil
	case bool:
		return StringOrBoolFromBool(val), nil
	}
	return StringOrBool{}, errors.NewConstructionError("StringOrBool", v)
}

// IsZero reports whether no arm is set.
func (v StringOrBool) IsZero() bool { return !v.set }

// Str returns the string arm.
func (v StringOrBool) Str() (string, bool) {
	return v.str, v.set && !v.isBool
}

// Bool returns the boolean arm.
func (v StringOrBool) Bool() (bool, bool) {
	return v.b, v.set && v.isBool
}

// Text returns the value as a string; booleans become "true" or "false".
func (v StringOrBool) Text() string {
	if v.isBool {
		return strconv.FormatBool(v.b)
	}
	return v.str
}

// MarshalJSON implements json.Marshaler.
func (v StringOrBool) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.isBool:
		return Marshal(v.b)
	default:
		return EncodeString(v.str)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *StringOrBool) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch kind {
	case analyzer.Null:
		*v = StringOrBool{}
	case analyzer.String:
		s, _ := asString(val)
		*v = StringOrBoolFromString(s)
	case analyzer.Bool:
		b, _ := asBool(val)
		*v = StringOrBoolFromBool(b)
	default:
		return shapeError("StringOrBool", kind, "string", "boolean")
	}
	return nil
}

// NumberOrBool holds a number or a boolean, e.g. smooth: true or 0.3.
type NumberOrBool struct {
	num    float64
	b      bool
	isBool bool
	set    bool
}

// NumberOrBoolFromNumber returns a NumberOrBool holding n.
func NumberOrBoolFromNumber(n float64) NumberOrBool {
	return NumberOrBool{num: n, set: true}
}

// NumberOrBoolFromBool returns a NumberOrBool holding b.
func NumberOrBoolFromBool(b bool) NumberOrBool {
	return NumberOrBool{b: b, isBool: true, set: true}
}

// NewNumberOrBool builds a NumberOrBool from a bool or any Go numeric type.
func NewNumberOrBool(v interface{}) (NumberOrBool, error) {
	if b, ok := v.(bool); ok {
		return NumberOrBoolFromBool(b), nil
	}
	if n, ok := toFloat64(v); ok {
		return NumberOrBoolFromNumber(n), nil
	}
	return NumberOrBool{}, errors.NewConstructionError("NumberOrBool", v)
}

// IsZero reports whether no arm is set.
func (v NumberOrBool) IsZero() bool { return !v.set }

// Number returns the number arm.
func (v NumberOrBool) Number() (float64, bool) {
	return v.num, v.set && !v.isBool
}

// Bool returns the boolean arm.
func (v NumberOrBool) Bool() (bool, bool) {
	return v.b, v.set && v.isBool
}

// Float returns the number arm, or 1 and 0 for true and false.
func (v NumberOrBool) Float() float64 {
	if !v.isBool {
		return v.num
	}
	if v.b {
		return 1
	}
	return 0
}

// MarshalJSON implements json.Marshaler.
func (v NumberOrBool) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.isBool:
		return Marshal(v.b)
	default:
		return Marshal(v.num)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *NumberOrBool) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch {
	case kind == analyzer.Null:
		*v = NumberOrBool{}
	case kind == analyzer.Bool:
		b, _ := asBool(val)
		*v = NumberOrBoolFromBool(b)
	case kind.IsNumber():
		n, _ := asFloat(val)
		*v = NumberOrBoolFromNumber(n)
	default:
		return shapeError("NumberOrBool", kind, "number", "boolean")
	}
	return nil
}

// StringOrFunction is a template string or an inline callback such as
// "function (params) { return params.name; }". Callbacks are written to the
// wire unquoted.
type StringOrFunction string

// IsFunction reports whether s is written as a raw callback.
func (s StringOrFunction) IsFunction() bool {
	return IsFunction(string(s))
}

// MarshalJSON implements json.Marshaler.
func (s StringOrFunction) MarshalJSON() ([]byte, error) {
	return EncodeString(string(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringOrFunction) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch kind {
	case analyzer.Null:
		*s = ""
	case analyzer.String:
		str, _ := asString(val)
		*s = StringOrFunction(str)
	default:
		return shapeError("StringOrFunction", kind, "string")
	}
	return nil
}
