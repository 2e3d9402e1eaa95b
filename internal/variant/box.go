package variant

import (
	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
)

// Padding holds the four sides of a box. The wire form is a number (all
// sides), [vertical, horizontal], or [top, right, bottom, left].
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns a Padding with every side set to v.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// PaddingOf expands 1, 2 or 4 values the way the wire form does.
func PaddingOf(values ...float64) (Padding, error) {
	box, err := expandBox("Padding", values)
	if err != nil {
		return Padding{}, err
	}
	return Padding{Top: box[0], Right: box[1], Bottom: box[2], Left: box[3]}, nil
}

// NewPadding builds a Padding from a Go number or a numeric slice of
// length 1, 2 or 4.
func NewPadding(v interface{}) (Padding, error) {
	if n, ok := toFloat64(v); ok {
		return UniformPadding(n), nil
	}
	if l, ok := toFloat64s(v); ok {
		return PaddingOf(l...)
	}
	return Padding{}, errors.NewConstructionError("Padding", v)
}

// Values returns top, right, bottom, left.
func (p Padding) Values() [4]float64 {
	return [4]float64{p.Top, p.Right, p.Bottom, p.Left}
}

// IsUniform reports whether all four sides are equal.
func (p Padding) IsUniform() bool {
	return isUniform(p.Values())
}

// MarshalJSON implements json.Marshaler.
func (p Padding) MarshalJSON() ([]byte, error) {
	return encodeBox(p.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Padding) UnmarshalJSON(data []byte) error {
	box, isNull, err := decodeBox("Padding", data)
	if err != nil || isNull {
		return err
	}
	*p = Padding{Top: box[0], Right: box[1], Bottom: box[2], Left: box[3]}
	return nil
}

// BorderRadius holds the four corner radii of a rounded rectangle. The
// wire order is top-left, top-right, bottom-right, bottom-left.
type BorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformBorderRadius returns a BorderRadius with every corner set to v.
func UniformBorderRadius(v float64) BorderRadius {
	return BorderRadius{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

// BorderRadiusOf expands 1, 2 or 4 values the way the wire form does.
func BorderRadiusOf(values ...float64) (BorderRadius, error) {
	box, err := expandBox("BorderRadius", values)
	if err != nil {
		return BorderRadius{}, err
	}
	return BorderRadius{TopLeft: box[0], TopRight: box[1], BottomRight: box[2], BottomLeft: box[3]}, nil
}

// NewBorderRadius builds a BorderRadius from a Go number or a numeric slice
// of length 1, 2 or 4.
func NewBorderRadius(v interface{}) (BorderRadius, error) {
	if n, ok := toFloat64(v); ok {
		return UniformBorderRadius(n), nil
	}
	if l, ok := toFloat64s(v); ok {
		return BorderRadiusOf(l...)
	}
	return BorderRadius{}, errors.NewConstructionError("BorderRadius", v)
}

// Values returns top-left, top-right, bottom-right, bottom-left.
func (r BorderRadius) Values() [4]float64 {
	return [4]float64{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft}
}

// IsUniform reports whether all four corners are equal.
func (r BorderRadius) IsUniform() bool {
	return isUniform(r.Values())
}

// MarshalJSON implements json.Marshaler.
func (r BorderRadius) MarshalJSON() ([]byte, error) {
	return encodeBox(r.Values())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BorderRadius) UnmarshalJSON(data []byte) error {
	box, isNull, err := decodeBox("BorderRadius", data)
	if err != nil || isNull {
		return err
	}
	*r = BorderRadius{TopLeft: box[0], TopRight: box[1], BottomRight: box[2], BottomLeft: box[3]}
	return nil
}

func isUniform(box [4]float64) bool {
	return box[0] == box[1] && box[1] == box[2] && box[2] == box[3]
}

func encodeBox(box [4]float64) ([]byte, error) {
	if isUniform(box) {
		return Marshal(box[0])
	}
	return Marshal(box[:])
}

func expandBox(target string, values []float64) ([4]float64, error) {
	switch len(values) {
	case 1:
		return [4]float64{values[0], values[0], values[0], values[0]}, nil
	case 2:
		return [4]float64{values[0], values[1], values[0], values[1]}, nil
	case 4:
		return [4]float64{values[0], values[1], values[2], values[3]}, nil
	}
	return [4]float64{}, errors.NewArityError(target, len(values), 1, 2, 4)
}

func decodeBox(target string, data []byte) (box [4]float64, isNull bool, err error) {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return box, false, err
	}
	switch {
	case kind == analyzer.Null:
		return box, true, nil
	case kind.IsNumber():
		n, _ := asFloat(val)
		box, err = expandBox(target, []float64{n})
		return box, false, err
	case kind == analyzer.UniformArray:
		values, elKind, ok := asFloats(val.(models.JSONArray))
		if !ok {
			return box, false, shapeError(target, elKind, "number")
		}
		box, err = expandBox(target, values)
		return box, false, err
	default:
		return box, false, shapeError(target, kind, "number", "array of number")
	}
}
