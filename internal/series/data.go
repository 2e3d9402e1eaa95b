package series

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

type dataArm uint8

const (
	dataNull dataArm = iota
	dataScalar
	dataTuple
	dataPoint
)

// DataItem is one entry of a series data list: a scalar such as 12 or
// "-", a tuple such as [x, y], a data point object, or null.
type DataItem struct {
	scalar variant.StringOrNumber
	tuple  []DataItem
	point  *DataPoint
	arm    dataArm
}

// Value returns a scalar item.
func Value(v variant.StringOrNumber) DataItem {
	return DataItem{scalar: v, arm: dataScalar}
}

// Number returns a numeric scalar item.
func Number(n float64) DataItem {
	return Value(variant.StringOrNumberFromNumber(n))
}

// Tuple returns an array item.
func Tuple(values ...DataItem) DataItem {
	return DataItem{tuple: append([]DataItem{}, values...), arm: dataTuple}
}

// Numbers returns an array item of numbers.
func Numbers(values ...float64) DataItem {
	out := make([]DataItem, len(values))
	for i, v := range values {
		out[i] = Number(v)
	}
	return DataItem{tuple: out, arm: dataTuple}
}

// Point returns an object item.
func Point(p DataPoint) DataItem {
	return DataItem{point: &p, arm: dataPoint}
}

// IsZero reports whether the item is null.
func (d DataItem) IsZero() bool { return d.arm == dataNull }

// Scalar returns the scalar arm.
func (d DataItem) Scalar() (variant.StringOrNumber, bool) {
	return d.scalar, d.arm == dataScalar
}

// Tuple returns the array arm.
func (d DataItem) Tuple() ([]DataItem, bool) {
	return d.tuple, d.arm == dataTuple
}

// Point returns the object arm.
func (d DataItem) Point() (*DataPoint, bool) {
	return d.point, d.arm == dataPoint
}

// Floats returns the numeric values of a scalar or tuple item, with ok
// false if any member is not a number.
func (d DataItem) Floats() ([]float64, bool) {
	switch d.arm {
	case dataScalar:
		n, ok := d.scalar.Number()
		return []float64{n}, ok
	case dataTuple:
		out := make([]float64, len(d.tuple))
		for i, item := range d.tuple {
			n, ok := item.scalar.Number()
			if item.arm != dataScalar || !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	case dataPoint:
		return d.point.Value.Floats()
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler.
func (d DataItem) MarshalJSON() ([]byte, error) {
	switch d.arm {
	case dataScalar:
		return d.scalar.MarshalJSON()
	case dataTuple:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range d.tuple {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case dataPoint:
		return d.point.MarshalJSON()
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DataItem) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	item, err := dataItemFrom(val, kind, data)
	if err != nil {
		return err
	}
	*d = item
	return nil
}

func dataItemFrom(val models.JSONValue, kind analyzer.Kind, raw []byte) (DataItem, error) {
	switch {
	case kind == analyzer.Null:
		return DataItem{}, nil
	case kind == analyzer.String:
		return Value(variant.StringOrNumberFromString(variant.DecodeString(val.(string)))), nil
	case kind.IsNumber():
		f, err := val.(json.Number).Float64()
		if err != nil {
			return DataItem{}, err
		}
		return Number(f), nil
	case kind.IsArray():
		arr := val.(models.JSONArray)
		out := make([]DataItem, len(arr))
		for i, el := range arr {
			elRaw, err := json.Marshal(el)
			if err != nil {
				return DataItem{}, err
			}
			item, err := dataItemFrom(el, analyzer.Classify(el), elRaw)
			if err != nil {
				return DataItem{}, err
			}
			out[i] = item
		}
		return DataItem{tuple: out, arm: dataTuple}, nil
	case kind == analyzer.Object:
		var p DataPoint
		if err := json.Unmarshal(raw, &p); err != nil {
			return DataItem{}, err
		}
		return Point(p), nil
	}
	return DataItem{}, errors.NewShapeError("DataItem", kind.String(), "string", "number", "array", "object", "null")
}

// Data is a series data list.
type Data []DataItem

// DataOf returns a list of numeric scalar items.
func DataOf(values ...float64) Data {
	out := make(Data, len(values))
	for i, v := range values {
		out[i] = Number(v)
	}
	return out
}

// DataPoint is the object form of a data item. Tree, treemap and sunburst
// nodes nest through Children.
type DataPoint struct {
	Name       string                 `json:"name,omitempty"`
	Value      DataItem               `json:"value,omitzero"`
	Children   []DataPoint            `json:"children,omitempty"`
	Category   variant.StringOrNumber `json:"category,omitzero"`
	X          *float64               `json:"x,omitempty"`
	Y          *float64               `json:"y,omitempty"`
	Coords     [][]float64            `json:"coords,omitempty"`
	Symbol     variant.Symbol         `json:"symbol,omitzero"`
	SymbolSize variant.SymbolSize     `json:"symbolSize,omitzero"`
	Selected   *bool                  `json:"selected,omitempty"`
	Collapsed  *bool                  `json:"collapsed,omitempty"`
	ItemStyle  *style.ItemStyle       `json:"itemStyle,omitempty"`
	LineStyle  *style.LineStyle       `json:"lineStyle,omitempty"`
	Label      *style.Label           `json:"label,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainDataPoint DataPoint

var dataPointFields = models.FieldsOf(reflect.TypeOf(plainDataPoint{}))

// MarshalJSON implements json.Marshaler.
func (p DataPoint) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainDataPoint(p), p.Extra, dataPointFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	var v plainDataPoint
	extra, err := variant.UnmarshalMembers(data, &v, dataPointFields)
	if err != nil {
		return err
	}
	*p = DataPoint(v)
	p.Extra = extra
	return nil
}

// Link is an edge of a graph or sankey series.
type Link struct {
	Source    variant.StringOrNumber `json:"source"`
	Target    variant.StringOrNumber `json:"target"`
	Value     *float64               `json:"value,omitempty"`
	LineStyle *style.LineStyle       `json:"lineStyle,omitempty"`
	Label     *style.Label           `json:"label,omitempty"`
	Symbol    variant.Symbol         `json:"symbol,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}
