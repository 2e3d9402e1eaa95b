// Package option models a complete chart option document and converts it
// to and from its JSON wire form.
package option

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/parser"
	"github.com/mcncl/echartsopt/internal/series"
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Option is the root of an option document. Component groups that may be
// given as one block or several use SingleOrMany. Top-level members not
// modelled here, such as toolbox or geo, are kept in Extra.
type Option struct {
	Title           variant.SingleOrMany[Title]       `json:"title,omitzero"`
	Legend          variant.SingleOrMany[Legend]      `json:"legend,omitzero"`
	Grid            variant.SingleOrMany[Grid]        `json:"grid,omitzero"`
	XAxis           variant.SingleOrMany[Axis]        `json:"xAxis,omitzero"`
	YAxis           variant.SingleOrMany[Axis]        `json:"yAxis,omitzero"`
	VisualMap       variant.SingleOrMany[VisualMap]   `json:"visualMap,omitzero"`
	DataZoom        variant.SingleOrMany[DataZoom]    `json:"dataZoom,omitzero"`
	Dataset         variant.SingleOrMany[Dataset]     `json:"dataset,omitzero"`
	Tooltip         *style.Tooltip                    `json:"tooltip,omitempty"`
	Color           variant.SingleOrMany[color.Color] `json:"color,omitzero"`
	BackgroundColor color.Color                       `json:"backgroundColor,omitzero"`
	TextStyle       *style.TextStyle                  `json:"textStyle,omitempty"`
	Animation       *bool                             `json:"animation,omitempty"`
	Series          series.List                       `json:"series,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainOption Option

var optionFields = models.FieldsOf(reflect.TypeOf(plainOption{}))

// MarshalJSON implements json.Marshaler.
func (o Option) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainOption(o), o.Extra, optionFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Option) UnmarshalJSON(data []byte) error {
	var p plainOption
	extra, err := variant.UnmarshalMembers(data, &p, optionFields)
	if err != nil {
		return err
	}
	*o = Option(p)
	o.Extra = extra
	return nil
}

// DecodeOptions controls how lenient Decode is.
type DecodeOptions struct {
	// AllowSingleSeries accepts a bare series object in place of a
	// one-element series array.
	AllowSingleSeries bool
}

// DefaultDecodeOptions returns the lenient defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{AllowSingleSeries: true}
}

// Decode parses an option document with the default options.
func Decode(data []byte) (*Option, error) {
	return DecodeWith(data, DefaultDecodeOptions())
}

// DecodeWith parses an option document. The input must hold exactly one
// JSON object.
func DecodeWith(data []byte, opts DecodeOptions) (*Option, error) {
	doc, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	root, ok := doc.Root.(models.JSONObject)
	if !ok {
		return nil, errors.NewShapeError("Option", analyzer.Classify(doc.Root).String(), "object")
	}
	if s, present := root["series"]; present && !opts.AllowSingleSeries {
		if kind := analyzer.Classify(s); kind == analyzer.Object {
			return nil, errors.NewShapeError("series", kind.String(), "array")
		}
	}

	var o Option
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DecodeReader reads and parses an option document from r.
func DecodeReader(r io.Reader, opts DecodeOptions) (*Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewInputError("failed to read option document", err)
	}
	return DecodeWith(data, opts)
}

// Encode returns the compact JSON form of o with function strings still
// marked. Use the formatter package to produce the wire form.
func Encode(o *Option) ([]byte, error) {
	return variant.Marshal(o)
}
