// Package analyzer classifies JSON values into the shapes the variant
// converters understand.
package analyzer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/parser"
)

// Kind names the shape of one JSON value.
type Kind int

const (
	Null Kind = iota
	Bool
	Integer
	Float
	String
	UniformArray
	MixedArray
	NestedArray
	Object
	Invalid
)

var kindNames = [...]string{
	Null:         "null",
	Bool:         "boolean",
	Integer:      "integer",
	Float:        "float",
	String:       "string",
	UniformArray: "array",
	MixedArray:   "mixed array",
	NestedArray:  "nested array",
	Object:       "object",
	Invalid:      "invalid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsArray reports whether k is one of the array kinds.
func (k Kind) IsArray() bool {
	return k == UniformArray || k == MixedArray || k == NestedArray
}

// IsNumber reports whether k is Integer or Float.
func (k Kind) IsNumber() bool {
	return k == Integer || k == Float
}

// IsScalar reports whether k is a boolean, number or string.
func (k Kind) IsScalar() bool {
	return k == Bool || k.IsNumber() || k == String
}

// Classify returns the Kind of v. v is expected to come from the parser,
// so numbers are json.Number, objects models.JSONObject and arrays
// models.JSONArray.
//
// Arrays are classified by their first element when it is itself an array
// (NestedArray). Otherwise every element is inspected: an array whose
// elements all share one scalar class (numbers count as one class) or are
// all objects is UniformArray, anything else is MixedArray. An empty array
// is UniformArray. Values of any other Go type are Invalid.
func Classify(v models.JSONValue) Kind {
	switch val := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case string:
		return String
	case json.Number:
		return classifyNumber(val)
	case float64:
		return Float
	case int, int64:
		return Integer
	case models.JSONObject, map[string]interface{}:
		return Object
	case models.JSONArray:
		return classifyArray(val)
	case []interface{}:
		arr := make(models.JSONArray, len(val))
		for i, el := range val {
			arr[i] = el
		}
		return classifyArray(arr)
	default:
		return Invalid
	}
}

func classifyNumber(num json.Number) Kind {
	// Try to parse as integer first
	if _, err := num.Int64(); err == nil {
		return Integer
	}
	return Float
}

func classifyArray(arr models.JSONArray) Kind {
	if len(arr) == 0 {
		return UniformArray
	}
	if Classify(arr[0]).IsArray() {
		return NestedArray
	}
	first := elementClass(Classify(arr[0]))
	for i := 1; i < len(arr); i++ {
		if elementClass(Classify(arr[i])) != first {
			return MixedArray
		}
	}
	return UniformArray
}

// elementClass folds Integer into Float so [1, 2.5] stays uniform.
func elementClass(k Kind) Kind {
	if k == Integer {
		return Float
	}
	return k
}

// ElementKind returns the common element kind of a uniform array: Integer
// when every element is an integer, Float when any is fractional, or the
// shared String, Bool or Object kind. ok is false for empty, mixed, nested
// or non-array values.
func ElementKind(v models.JSONValue) (kind Kind, ok bool) {
	arr, isArr := v.(models.JSONArray)
	if !isArr || len(arr) == 0 || classifyArray(arr) != UniformArray {
		return Null, false
	}
	kind = Classify(arr[0])
	for _, el := range arr[1:] {
		if Classify(el) == Float {
			kind = Float
		}
	}
	return kind, true
}

// Decode parses one JSON value and classifies it.
func Decode(data []byte) (models.JSONValue, Kind, error) {
	doc, err := parser.ParseBytes(data)
	if err != nil {
		return nil, Null, err
	}
	return doc.Root, Classify(doc.Root), nil
}

// Peek returns the coarse kind of the JSON value in data by looking at its
// first significant byte. Arrays report UniformArray and numbers Float;
// use Decode when the finer distinction matters.
func Peek(data []byte) Kind {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Null
	}
	switch data[0] {
	case '{':
		return Object
	case '[':
		return UniformArray
	case '"':
		return String
	case 't', 'f':
		return Bool
	case 'n':
		return Null
	default:
		return Float
	}
}

// KeyReport describes one top-level key of a JSON object.
type KeyReport struct {
	Key     string
	Kind    Kind
	Element Kind // set when Kind is UniformArray and the array is not empty
	Length  int  // array length, 0 otherwise
}

// Summarize classifies every key of a JSON object, in sorted key order.
// Non-object roots produce a single report with an empty key.
func Summarize(doc models.Document) []KeyReport {
	obj, ok := doc.Root.(models.JSONObject)
	if !ok {
		return []KeyReport{report("", doc.Root)}
	}

	// To ensure deterministic ordering, extract keys, sort them, and then iterate.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	reports := make([]KeyReport, 0, len(keys))
	for _, key := range keys {
		reports = append(reports, report(key, obj[key]))
	}
	return reports
}

func report(key string, v models.JSONValue) KeyReport {
	r := KeyReport{Key: key, Kind: Classify(v)}
	if arr, ok := v.(models.JSONArray); ok {
		r.Length = len(arr)
	}
	if el, ok := ElementKind(v); ok {
		r.Element = el
	}
	return r
}

func (r KeyReport) String() string {
	switch {
	case r.Kind == UniformArray && r.Length > 0:
		return fmt.Sprintf("%s: array of %d %s", r.Key, r.Length, r.Element)
	case r.Kind.IsArray():
		return fmt.Sprintf("%s: %s of %d", r.Key, r.Kind, r.Length)
	default:
		return fmt.Sprintf("%s: %s", r.Key, r.Kind)
	}
}
