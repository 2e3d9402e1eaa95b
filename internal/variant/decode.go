package variant

import (
	"encoding/json"
	"math"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
)

func shapeError(target string, got analyzer.Kind, expected ...string) error {
	return errors.NewShapeError(target, got.String(), expected...)
}

func asFloat(v models.JSONValue) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	return f, err == nil
}

// asInt accepts integers and integral floats such as 2.0.
func asInt(v models.JSONValue) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f > math.MaxInt {
		return 0, false
	}
	return int(f), true
}

func asString(v models.JSONValue) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return DecodeString(s), true
}

func asBool(v models.JSONValue) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asFloats converts a uniform numeric array. The returned kind is the
// offending element kind when ok is false.
func asFloats(arr models.JSONArray) ([]float64, analyzer.Kind, bool) {
	out := make([]float64, len(arr))
	for i, el := range arr {
		f, ok := asFloat(el)
		if !ok {
			return nil, analyzer.Classify(el), false
		}
		out[i] = f
	}
	return out, analyzer.Null, true
}

// toFloat64 widens Go numeric payloads for the guarded constructors.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func toFloat64s(v interface{}) ([]float64, bool) {
	switch vals := v.(type) {
	case []float64:
		return append([]float64(nil), vals...), true
	case []int:
		out := make([]float64, len(vals))
		for i, n := range vals {
			out[i] = float64(n)
		}
		return out, true
	case []interface{}:
		out := make([]float64, len(vals))
		for i, el := range vals {
			f, ok := toFloat64(el)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}
