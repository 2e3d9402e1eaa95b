// Package style holds the option blocks shared by series and components:
// text, item, line and area styles, labels and emphasis states.
package style

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool { return &v }

// Position places a component or box-shaped series inside the chart.
type Position struct {
	Left   variant.StringOrNumber `json:"left,omitzero"`
	Top    variant.StringOrNumber `json:"top,omitzero"`
	Right  variant.StringOrNumber `json:"right,omitzero"`
	Bottom variant.StringOrNumber `json:"bottom,omitzero"`
	Width  variant.StringOrNumber `json:"width,omitzero"`
	Height variant.StringOrNumber `json:"height,omitzero"`
}

// Text holds the text properties shared by text style blocks and labels.
type Text struct {
	Color           color.Color            `json:"color,omitzero"`
	FontStyle       string                 `json:"fontStyle,omitempty"`
	FontWeight      variant.StringOrNumber `json:"fontWeight,omitzero"`
	FontFamily      string                 `json:"fontFamily,omitempty"`
	FontSize        variant.StringOrNumber `json:"fontSize,omitzero"`
	LineHeight      *float64               `json:"lineHeight,omitempty"`
	Align           string                 `json:"align,omitempty"`
	VerticalAlign   string                 `json:"verticalAlign,omitempty"`
	BackgroundColor color.Color            `json:"backgroundColor,omitzero"`
	BorderColor     color.Color            `json:"borderColor,omitzero"`
	BorderWidth     *float64               `json:"borderWidth,omitempty"`
	BorderType      variant.DashPattern    `json:"borderType,omitzero"`
	BorderRadius    *variant.BorderRadius  `json:"borderRadius,omitempty"`
	Padding         *variant.Padding       `json:"padding,omitempty"`
	TextBorderColor color.Color            `json:"textBorderColor,omitzero"`
	TextBorderWidth *float64               `json:"textBorderWidth,omitempty"`
	TextBorderType  variant.DashPattern    `json:"textBorderType,omitzero"`
	TextShadowColor color.Color            `json:"textShadowColor,omitzero"`
	TextShadowBlur  *float64               `json:"textShadowBlur,omitempty"`
	Width           variant.StringOrNumber `json:"width,omitzero"`
	Overflow        string                 `json:"overflow,omitempty"`
}

// TextStyle configures text rendering.
type TextStyle struct {
	Text

	Extra map[string]json.RawMessage `json:"-"`
}

// ItemStyle configures the graphic of a data item.
type ItemStyle struct {
	Color         color.Color           `json:"color,omitzero"`
	BorderColor   color.Color           `json:"borderColor,omitzero"`
	BorderWidth   *float64              `json:"borderWidth,omitempty"`
	BorderType    variant.DashPattern   `json:"borderType,omitzero"`
	BorderRadius  *variant.BorderRadius `json:"borderRadius,omitempty"`
	Opacity       *float64              `json:"opacity,omitempty"`
	ShadowBlur    *float64              `json:"shadowBlur,omitempty"`
	ShadowColor   color.Color           `json:"shadowColor,omitzero"`
	ShadowOffsetX *float64              `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY *float64              `json:"shadowOffsetY,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// LineStyle configures stroked lines.
type LineStyle struct {
	Color       color.Color         `json:"color,omitzero"`
	Width       *float64            `json:"width,omitempty"`
	Type        variant.DashPattern `json:"type,omitzero"`
	DashOffset  *float64            `json:"dashOffset,omitempty"`
	Cap         string              `json:"cap,omitempty"`
	Join        string              `json:"join,omitempty"`
	Opacity     *float64            `json:"opacity,omitempty"`
	ShadowBlur  *float64            `json:"shadowBlur,omitempty"`
	ShadowColor color.Color         `json:"shadowColor,omitzero"`
	Curveness   *float64            `json:"curveness,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// AreaStyle configures filled areas.
type AreaStyle struct {
	Color       color.Color            `json:"color,omitzero"`
	Origin      variant.StringOrNumber `json:"origin,omitzero"`
	Opacity     *float64               `json:"opacity,omitempty"`
	ShadowBlur  *float64               `json:"shadowBlur,omitempty"`
	ShadowColor color.Color            `json:"shadowColor,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Label configures the text label of a data item. Text properties are
// inlined as in the option format.
type Label struct {
	Show      *bool                      `json:"show,omitempty"`
	Position  variant.StringOrNumberList `json:"position,omitzero"`
	Distance  *float64                   `json:"distance,omitempty"`
	Rotate    *float64                   `json:"rotate,omitempty"`
	Offset    variant.Floats             `json:"offset,omitzero"`
	Formatter variant.StringOrFunction   `json:"formatter,omitempty"`
	Text

	Extra map[string]json.RawMessage `json:"-"`
}

// LabelLine configures the guide line between a label and its item.
type LabelLine struct {
	Show      *bool                `json:"show,omitempty"`
	Length    *float64             `json:"length,omitempty"`
	Length2   *float64             `json:"length2,omitempty"`
	Smooth    variant.NumberOrBool `json:"smooth,omitzero"`
	LineStyle *LineStyle           `json:"lineStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Emphasis configures the highlighted state of an item.
type Emphasis struct {
	Disabled  *bool                `json:"disabled,omitempty"`
	Focus     string               `json:"focus,omitempty"`
	Scale     variant.NumberOrBool `json:"scale,omitzero"`
	Label     *Label               `json:"label,omitempty"`
	ItemStyle *ItemStyle           `json:"itemStyle,omitempty"`
	LineStyle *LineStyle           `json:"lineStyle,omitempty"`
	AreaStyle *AreaStyle           `json:"areaStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// AxisPointer configures the pointer drawn by an axis-triggered tooltip.
type AxisPointer struct {
	Type        string     `json:"type,omitempty"`
	Axis        string     `json:"axis,omitempty"`
	Snap        *bool      `json:"snap,omitempty"`
	Label       *Label     `json:"label,omitempty"`
	LineStyle   *LineStyle `json:"lineStyle,omitempty"`
	CrossStyle  *LineStyle `json:"crossStyle,omitempty"`
	ShadowStyle *AreaStyle `json:"shadowStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Tooltip is the tooltip component, also accepted per series.
type Tooltip struct {
	Show            *bool                    `json:"show,omitempty"`
	Trigger         string                   `json:"trigger,omitempty"`
	TriggerOn       string                   `json:"triggerOn,omitempty"`
	Formatter       variant.StringOrFunction `json:"formatter,omitempty"`
	ValueFormatter  variant.StringOrFunction `json:"valueFormatter,omitempty"`
	AxisPointer     *AxisPointer             `json:"axisPointer,omitempty"`
	Confine         *bool                    `json:"confine,omitempty"`
	BackgroundColor color.Color              `json:"backgroundColor,omitzero"`
	BorderColor     color.Color              `json:"borderColor,omitzero"`
	BorderWidth     *float64                 `json:"borderWidth,omitempty"`
	Padding         *variant.Padding         `json:"padding,omitempty"`
	TextStyle       *TextStyle               `json:"textStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}
