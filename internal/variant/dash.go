package variant

import (
	"bytes"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
)

type dashArm uint8

const (
	dashNone dashArm = iota
	dashName
	dashLengths
	dashSegments
)

// DashPattern is a line type: a named style ("solid", "dashed", "dotted"),
// a dash length list such as [5, 10] (a bare number is a one-element list),
// or a list of such lists.
type DashPattern struct {
	name     string
	lengths  []float64
	segments [][]float64
	arm      dashArm
}

// DashPatternFromName returns a named dash pattern.
func DashPatternFromName(name string) DashPattern {
	return DashPattern{name: name, arm: dashName}
}

// DashPatternFromLengths returns a flat dash length pattern.
func DashPatternFromLengths(lengths ...float64) DashPattern {
	return DashPattern{lengths: append([]float64{}, lengths...), arm: dashLengths}
}

// DashPatternFromSegments returns a nested dash pattern.
func DashPatternFromSegments(segments ...[]float64) DashPattern {
	out := make([][]float64, len(segments))
	for i, s := range segments {
		out[i] = append([]float64{}, s...)
	}
	return DashPattern{segments: out, arm: dashSegments}
}

// NewDashPattern builds a DashPattern from a string, a Go number, a
// []float64 or []int, or a [][]float64.
func NewDashPattern(v interface{}) (DashPattern, error) {
	if s, ok := v.(string); ok {
		return DashPatternFromName(s), nil
	}
	if n, ok := toFloat64(v); ok {
		return DashPatternFromLengths(n), nil
	}
	if segs, ok := v.([][]float64); ok {
		return DashPatternFromSegments(segs...), nil
	}
	if l, ok := toFloat64s(v); ok {
		return DashPatternFromLengths(l...), nil
	}
	return DashPattern{}, errors.NewConstructionError("DashPattern", v)
}

// IsZero reports whether no arm is set.
func (d DashPattern) IsZero() bool { return d.arm == dashNone }

// Name returns the named style arm.
func (d DashPattern) Name() (string, bool) {
	return d.name, d.arm == dashName
}

// Lengths returns the flat length arm.
func (d DashPattern) Lengths() ([]float64, bool) {
	return d.lengths, d.arm == dashLengths
}

// Segments returns the nested arm.
func (d DashPattern) Segments() ([][]float64, bool) {
	return d.segments, d.arm == dashSegments
}

// AsSegments returns the numeric arms in nested form: a flat pattern
// becomes a single segment. Named styles return nil.
func (d DashPattern) AsSegments() [][]float64 {
	switch d.arm {
	case dashLengths:
		return [][]float64{d.lengths}
	case dashSegments:
		return d.segments
	}
	return nil
}

// MarshalJSON implements json.Marshaler. A one-element flat pattern is
// written as a bare number; nested patterns are always arrays.
func (d DashPattern) MarshalJSON() ([]byte, error) {
	switch d.arm {
	case dashName:
		return EncodeString(d.name)
	case dashLengths:
		if len(d.lengths) == 1 {
			return Marshal(d.lengths[0])
		}
		return Marshal(d.lengths)
	case dashSegments:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, seg := range d.segments {
			if i > 0 {
				buf.WriteByte(',')
			}
			if seg == nil {
				seg = []float64{}
			}
			b, err := Marshal(seg)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DashPattern) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch {
	case kind == analyzer.Null:
		*d = DashPattern{}
	case kind == analyzer.String:
		s, _ := asString(val)
		*d = DashPatternFromName(s)
	case kind.IsNumber():
		n, _ := asFloat(val)
		*d = DashPatternFromLengths(n)
	case kind == analyzer.UniformArray:
		lengths, elKind, ok := asFloats(val.(models.JSONArray))
		if !ok {
			return shapeError("DashPattern", elKind, "number")
		}
		*d = DashPattern{lengths: lengths, arm: dashLengths}
	case kind == analyzer.NestedArray:
		arr := val.(models.JSONArray)
		segments := make([][]float64, len(arr))
		for i, el := range arr {
			inner, isArr := el.(models.JSONArray)
			if !isArr {
				return shapeError("DashPattern", analyzer.Classify(el), "array of number")
			}
			seg, elKind, ok := asFloats(inner)
			if !ok {
				return shapeError("DashPattern", elKind, "number")
			}
			segments[i] = seg
		}
		*d = DashPattern{segments: segments, arm: dashSegments}
	default:
		return shapeError("DashPattern", kind, "string", "number", "array of number", "array of arrays")
	}
	return nil
}
