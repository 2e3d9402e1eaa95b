package option

import (
	"encoding/json"
	"reflect"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/series"
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Title is a chart title block.
type Title struct {
	ID        string `json:"id,omitempty"`
	Show      *bool  `json:"show,omitempty"`
	Text      string `json:"text,omitempty"`
	Link      string `json:"link,omitempty"`
	Subtext   string `json:"subtext,omitempty"`
	TextAlign string `json:"textAlign,omitempty"`
	style.Position
	TextStyle       *style.TextStyle      `json:"textStyle,omitempty"`
	SubtextStyle    *style.TextStyle      `json:"subtextStyle,omitempty"`
	Padding         *variant.Padding      `json:"padding,omitempty"`
	ItemGap         *float64              `json:"itemGap,omitempty"`
	BackgroundColor color.Color           `json:"backgroundColor,omitzero"`
	BorderRadius    *variant.BorderRadius `json:"borderRadius,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainTitle Title

var titleFields = models.FieldsOf(reflect.TypeOf(plainTitle{}))

// MarshalJSON implements json.Marshaler.
func (t Title) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainTitle(t), t.Extra, titleFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Title) UnmarshalJSON(data []byte) error {
	var p plainTitle
	extra, err := variant.UnmarshalMembers(data, &p, titleFields)
	if err != nil {
		return err
	}
	*t = Title(p)
	t.Extra = extra
	return nil
}

// LegendItem is an entry of legend.data: a series name, or an object
// with per-item settings.
type LegendItem struct {
	Name      string           `json:"name"`
	Icon      string           `json:"icon,omitempty"`
	TextStyle *style.TextStyle `json:"textStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainLegendItem LegendItem

var legendItemFields = models.FieldsOf(reflect.TypeOf(plainLegendItem{}))

// MarshalJSON implements json.Marshaler. Items with only a name are
// written as a bare string.
func (l LegendItem) MarshalJSON() ([]byte, error) {
	if l.Icon == "" && l.TextStyle == nil && len(l.Extra) == 0 {
		return variant.EncodeString(l.Name)
	}
	return variant.MarshalMembers(plainLegendItem(l), l.Extra, legendItemFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LegendItem) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch kind {
	case analyzer.Null:
		*l = LegendItem{}
		return nil
	case analyzer.String:
		*l = LegendItem{Name: variant.DecodeString(val.(string))}
		return nil
	case analyzer.Object:
		var p plainLegendItem
		extra, err := variant.UnmarshalMembers(data, &p, legendItemFields)
		if err != nil {
			return err
		}
		*l = LegendItem(p)
		l.Extra = extra
		return nil
	}
	return errors.NewShapeError("LegendItem", kind.String(), "string", "object")
}

// Legend is a legend block.
type Legend struct {
	ID     string `json:"id,omitempty"`
	Type   string `json:"type,omitempty"`
	Show   *bool  `json:"show,omitempty"`
	Orient string `json:"orient,omitempty"`
	style.Position
	Data         []LegendItem             `json:"data,omitempty"`
	Icon         string                   `json:"icon,omitempty"`
	ItemGap      *float64                 `json:"itemGap,omitempty"`
	ItemWidth    *float64                 `json:"itemWidth,omitempty"`
	ItemHeight   *float64                 `json:"itemHeight,omitempty"`
	Padding      *variant.Padding         `json:"padding,omitempty"`
	Formatter    variant.StringOrFunction `json:"formatter,omitempty"`
	SelectedMode variant.StringOrBool     `json:"selectedMode,omitzero"`
	Selected     map[string]bool          `json:"selected,omitempty"`
	TextStyle    *style.TextStyle         `json:"textStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainLegend Legend

var legendFields = models.FieldsOf(reflect.TypeOf(plainLegend{}))

// MarshalJSON implements json.Marshaler.
func (l Legend) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainLegend(l), l.Extra, legendFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Legend) UnmarshalJSON(data []byte) error {
	var p plainLegend
	extra, err := variant.UnmarshalMembers(data, &p, legendFields)
	if err != nil {
		return err
	}
	*l = Legend(p)
	l.Extra = extra
	return nil
}

// Grid is a rectangular plotting area.
type Grid struct {
	ID   string `json:"id,omitempty"`
	Show *bool  `json:"show,omitempty"`
	style.Position
	ContainLabel    *bool       `json:"containLabel,omitempty"`
	BackgroundColor color.Color `json:"backgroundColor,omitzero"`
	BorderColor     color.Color `json:"borderColor,omitzero"`
	BorderWidth     *float64    `json:"borderWidth,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainGrid Grid

var gridFields = models.FieldsOf(reflect.TypeOf(plainGrid{}))

// MarshalJSON implements json.Marshaler.
func (g Grid) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainGrid(g), g.Extra, gridFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var p plainGrid
	extra, err := variant.UnmarshalMembers(data, &p, gridFields)
	if err != nil {
		return err
	}
	*g = Grid(p)
	g.Extra = extra
	return nil
}

// AxisLine configures an axis line, tick or split line.
type AxisLine struct {
	Show      *bool            `json:"show,omitempty"`
	OnZero    *bool            `json:"onZero,omitempty"`
	LineStyle *style.LineStyle `json:"lineStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainAxisLine AxisLine

var axisLineFields = models.FieldsOf(reflect.TypeOf(plainAxisLine{}))

// MarshalJSON implements json.Marshaler.
func (a AxisLine) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainAxisLine(a), a.Extra, axisLineFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AxisLine) UnmarshalJSON(data []byte) error {
	var p plainAxisLine
	extra, err := variant.UnmarshalMembers(data, &p, axisLineFields)
	if err != nil {
		return err
	}
	*a = AxisLine(p)
	a.Extra = extra
	return nil
}

// Axis is an x or y axis of a cartesian grid.
type Axis struct {
	ID           string                 `json:"id,omitempty"`
	Show         *bool                  `json:"show,omitempty"`
	Type         string                 `json:"type,omitempty"`
	Name         string                 `json:"name,omitempty"`
	NameLocation string                 `json:"nameLocation,omitempty"`
	NameGap      *float64               `json:"nameGap,omitempty"`
	Position     string                 `json:"position,omitempty"`
	GridIndex    *int                   `json:"gridIndex,omitempty"`
	Inverse      *bool                  `json:"inverse,omitempty"`
	Scale        *bool                  `json:"scale,omitempty"`
	Min          variant.StringOrNumber `json:"min,omitzero"`
	Max          variant.StringOrNumber `json:"max,omitzero"`
	SplitNumber  *int                   `json:"splitNumber,omitempty"`
	Data         series.Data            `json:"data,omitzero"`
	AxisLabel    *style.Label           `json:"axisLabel,omitempty"`
	AxisLine     *AxisLine              `json:"axisLine,omitempty"`
	AxisTick     *AxisLine              `json:"axisTick,omitempty"`
	SplitLine    *AxisLine              `json:"splitLine,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainAxis Axis

var axisFields = models.FieldsOf(reflect.TypeOf(plainAxis{}))

// MarshalJSON implements json.Marshaler.
func (a Axis) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainAxis(a), a.Extra, axisFields)
}

// UnmarshalJSON implements json.Unmarshaler. The axis "type" member is a
// declared field here, not a discriminator.
func (a *Axis) UnmarshalJSON(data []byte) error {
	var p plainAxis
	extra, err := variant.UnmarshalMembers(data, &p, axisFields)
	if err != nil {
		return err
	}
	*a = Axis(p)
	a.Extra = extra
	return nil
}

// VisualRange maps data values onto visual channels.
type VisualRange struct {
	Color      variant.SingleOrMany[color.Color] `json:"color,omitzero"`
	SymbolSize variant.Floats                    `json:"symbolSize,omitzero"`
	Opacity    variant.Floats                    `json:"opacity,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainVisualRange VisualRange

var visualRangeFields = models.FieldsOf(reflect.TypeOf(plainVisualRange{}))

// MarshalJSON implements json.Marshaler.
func (v VisualRange) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainVisualRange(v), v.Extra, visualRangeFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *VisualRange) UnmarshalJSON(data []byte) error {
	var p plainVisualRange
	extra, err := variant.UnmarshalMembers(data, &p, visualRangeFields)
	if err != nil {
		return err
	}
	*v = VisualRange(p)
	v.Extra = extra
	return nil
}

// VisualMap is a continuous or piecewise visual mapping component.
type VisualMap struct {
	ID         string   `json:"id,omitempty"`
	Type       string   `json:"type,omitempty"`
	Show       *bool    `json:"show,omitempty"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Calculable *bool    `json:"calculable,omitempty"`
	Orient     string   `json:"orient,omitempty"`
	style.Position
	Dimension   variant.StringOrNumber `json:"dimension,omitzero"`
	SeriesIndex variant.Ints           `json:"seriesIndex,omitzero"`
	Text        variant.Strings        `json:"text,omitzero"`
	InRange     *VisualRange           `json:"inRange,omitempty"`
	OutOfRange  *VisualRange           `json:"outOfRange,omitempty"`
	TextStyle   *style.TextStyle       `json:"textStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainVisualMap VisualMap

var visualMapFields = models.FieldsOf(reflect.TypeOf(plainVisualMap{}))

// MarshalJSON implements json.Marshaler.
func (v VisualMap) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainVisualMap(v), v.Extra, visualMapFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *VisualMap) UnmarshalJSON(data []byte) error {
	var p plainVisualMap
	extra, err := variant.UnmarshalMembers(data, &p, visualMapFields)
	if err != nil {
		return err
	}
	*v = VisualMap(p)
	v.Extra = extra
	return nil
}

// DataZoom is an inside or slider zoom component.
type DataZoom struct {
	ID         string                 `json:"id,omitempty"`
	Type       string                 `json:"type,omitempty"`
	Show       *bool                  `json:"show,omitempty"`
	Start      *float64               `json:"start,omitempty"`
	End        *float64               `json:"end,omitempty"`
	StartValue variant.StringOrNumber `json:"startValue,omitzero"`
	EndValue   variant.StringOrNumber `json:"endValue,omitzero"`
	XAxisIndex variant.Ints           `json:"xAxisIndex,omitzero"`
	YAxisIndex variant.Ints           `json:"yAxisIndex,omitzero"`
	FilterMode string                 `json:"filterMode,omitempty"`
	Orient     string                 `json:"orient,omitempty"`
	style.Position

	Extra map[string]json.RawMessage `json:"-"`
}

type plainDataZoom DataZoom

var dataZoomFields = models.FieldsOf(reflect.TypeOf(plainDataZoom{}))

// MarshalJSON implements json.Marshaler.
func (d DataZoom) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainDataZoom(d), d.Extra, dataZoomFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DataZoom) UnmarshalJSON(data []byte) error {
	var p plainDataZoom
	extra, err := variant.UnmarshalMembers(data, &p, dataZoomFields)
	if err != nil {
		return err
	}
	*d = DataZoom(p)
	d.Extra = extra
	return nil
}

// Dataset holds tabular source data shared by series. Source rows are
// kept verbatim.
type Dataset struct {
	ID               string               `json:"id,omitempty"`
	Source           json.RawMessage      `json:"source,omitempty"`
	Dimensions       json.RawMessage      `json:"dimensions,omitempty"`
	SourceHeader     variant.NumberOrBool `json:"sourceHeader,omitzero"`
	FromDatasetIndex *int                 `json:"fromDatasetIndex,omitempty"`
	Transform        json.RawMessage      `json:"transform,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type plainDataset Dataset

var datasetFields = models.FieldsOf(reflect.TypeOf(plainDataset{}))

// MarshalJSON implements json.Marshaler.
func (d Dataset) MarshalJSON() ([]byte, error) {
	return variant.MarshalMembers(plainDataset(d), d.Extra, datasetFields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var p plainDataset
	extra, err := variant.UnmarshalMembers(data, &p, datasetFields)
	if err != nil {
		return err
	}
	*d = Dataset(p)
	d.Extra = extra
	return nil
}
