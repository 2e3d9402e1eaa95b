// Package series implements the series list of an option document: a
// union of chart series records selected by their "type" field.
package series

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Series is implemented by every series record. The set of
// implementations is closed: records embed Base.
type Series interface {
	// SeriesType returns the "type" discriminator of the record.
	SeriesType() string
	common() *Base
}

// Base holds the fields every series accepts. Members the record does not
// declare are kept in Extra and written back after the declared fields.
type Base struct {
	ID           string                                `json:"id,omitempty"`
	Name         string                                `json:"name,omitempty"`
	ZLevel       *float64                              `json:"zlevel,omitempty"`
	Z            *float64                              `json:"z,omitempty"`
	Silent       *bool                                 `json:"silent,omitempty"`
	Animation    *bool                                 `json:"animation,omitempty"`
	DatasetIndex *int                                  `json:"datasetIndex,omitempty"`
	Encode       map[string]variant.StringOrNumberList `json:"encode,omitempty"`
	Label        *style.Label                          `json:"label,omitempty"`
	ItemStyle    *style.ItemStyle                      `json:"itemStyle,omitempty"`
	Emphasis     *style.Emphasis                       `json:"emphasis,omitempty"`
	Tooltip      *style.Tooltip                        `json:"tooltip,omitempty"`
	Data         Data                                  `json:"data,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (b *Base) common() *Base { return b }

type entry struct {
	new    func() Series
	fields models.FieldSet
}

// registry maps discriminators to records. It is filled by init and only
// read afterwards.
var registry = map[string]entry{}

func register(newFn func() Series) {
	s := newFn()
	registry[s.SeriesType()] = entry{new: newFn, fields: models.FieldsOf(reflect.TypeOf(s))}
}

func init() {
	for _, t := range []string{"scatterGL", "graphGL", "flowGL"} {
		strcase.ConfigureAcronym(t, t)
	}

	for _, newFn := range []func() Series{
		// basic
		func() Series { return &Line{} },
		func() Series { return &Bar{} },
		func() Series { return &Pie{} },
		func() Series { return &Scatter{} },
		func() Series { return &EffectScatter{} },
		func() Series { return &PictorialBar{} },
		// statistical
		func() Series { return &Boxplot{} },
		func() Series { return &Candlestick{} },
		func() Series { return &Heatmap{} },
		func() Series { return &Parallel{} },
		func() Series { return &ThemeRiver{} },
		func() Series { return &Funnel{} },
		func() Series { return &Gauge{} },
		func() Series { return &Radar{} },
		// geographic
		func() Series { return &Map{} },
		func() Series { return &Lines{} },
		// hierarchical and relational
		func() Series { return &Tree{} },
		func() Series { return &Treemap{} },
		func() Series { return &Sunburst{} },
		func() Series { return &Graph{} },
		func() Series { return &Sankey{} },
		// 3D and GL
		func() Series { return &Bar3D{} },
		func() Series { return &Line3D{} },
		func() Series { return &Scatter3D{} },
		func() Series { return &Surface{} },
		func() Series { return &Map3D{} },
		func() Series { return &Lines3D{} },
		func() Series { return &Polygons3D{} },
		func() Series { return &ScatterGL{} },
		func() Series { return &GraphGL{} },
		func() Series { return &FlowGL{} },
		// specialty
		func() Series { return &Custom{} },
	} {
		register(newFn)
	}
}

// New returns an empty record for a series type.
func New(seriesType string) (Series, error) {
	e, ok := registry[seriesType]
	if !ok {
		return nil, errors.NewDiscriminatorError("series", "type", seriesType, Types())
	}
	return e.new(), nil
}

// Types returns every known series type, sorted.
func Types() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// TypeName returns the Go record name for a series type, e.g. "Line" for
// "line" and "ScatterGL" for "scatterGL".
func TypeName(seriesType string) string {
	return strcase.ToCamel(seriesType)
}

// Decode reads one series object, selecting the record by its "type".
func Decode(data []byte) (Series, error) {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return nil, err
	}
	if kind != analyzer.Object {
		return nil, errors.NewShapeError("Series", kind.String(), "object")
	}

	t, ok := val.(models.JSONObject)["type"]
	if !ok {
		return nil, errors.NewMissingDiscriminatorError("series", "type")
	}
	name, ok := t.(string)
	if !ok {
		return nil, errors.NewDiscriminatorError("series", "type", analyzer.Classify(t).String(), Types())
	}
	e, ok := registry[name]
	if !ok {
		return nil, errors.NewDiscriminatorError("series", "type", name, Types())
	}

	s := e.new()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	extra, err := models.ExtraMembers(data, e.fields)
	if err != nil {
		return nil, err
	}
	s.common().Extra = extra
	return s, nil
}

// Encode writes one series object with "type" as its first member.
func Encode(s Series) ([]byte, error) {
	e, ok := registry[s.SeriesType()]
	if !ok {
		return nil, errors.NewDiscriminatorError("series", "type", s.SeriesType(), Types())
	}
	body, err := variant.Marshal(s)
	if err != nil {
		return nil, err
	}
	body, err = variant.AppendMembers(body, s.common().Extra, e.fields)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	typ, err := variant.Marshal(s.SeriesType())
	if err != nil {
		return nil, err
	}
	buf.Write(typ)
	if inner := bytes.TrimSpace(body[1 : len(body)-1]); len(inner) > 0 {
		buf.WriteByte(',')
		buf.Write(inner)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// List is the series member of an option document. It decodes from an
// array of series objects or a bare object, and always encodes as an
// array.
type List []Series

// Types returns the discriminator of every element in order.
func (l List) Types() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = s.SeriesType()
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		if s == nil {
			buf.WriteString("null")
			continue
		}
		b, err := Encode(s)
		if err != nil {
			return nil, fmt.Errorf("series[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *List) UnmarshalJSON(data []byte) error {
	switch analyzer.Peek(data) {
	case analyzer.Null:
		*l = nil
		return nil
	case analyzer.Object:
		s, err := Decode(data)
		if err != nil {
			return err
		}
		*l = List{s}
		return nil
	case analyzer.UniformArray:
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return err
		}
		out := make(List, len(raws))
		for i, raw := range raws {
			s, err := Decode(raw)
			if err != nil {
				return fmt.Errorf("series[%d]: %w", i, err)
			}
			out[i] = s
		}
		*l = out
		return nil
	}
	_, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	return errors.NewShapeError("series", kind.String(), "array", "object")
}
