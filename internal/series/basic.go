package series

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Line is a line or area chart.
type Line struct {
	Base
	Cartesian
	Symbols
	ShowSymbol   *bool                `json:"showSymbol,omitempty"`
	Stack        string               `json:"stack,omitempty"`
	Smooth       variant.NumberOrBool `json:"smooth,omitzero"`
	Step         variant.StringOrBool `json:"step,omitzero"`
	ConnectNulls *bool                `json:"connectNulls,omitempty"`
	Sampling     string               `json:"sampling,omitempty"`
	LineStyle    *style.LineStyle     `json:"lineStyle,omitempty"`
	AreaStyle    *style.AreaStyle     `json:"areaStyle,omitempty"`
}

func (*Line) SeriesType() string { return "line" }

// Bar is a bar chart.
type Bar struct {
	Base
	Cartesian
	Stack           string                 `json:"stack,omitempty"`
	BarWidth        variant.StringOrNumber `json:"barWidth,omitzero"`
	BarMaxWidth     variant.StringOrNumber `json:"barMaxWidth,omitzero"`
	BarGap          string                 `json:"barGap,omitempty"`
	BarCategoryGap  string                 `json:"barCategoryGap,omitempty"`
	RoundCap        *bool                  `json:"roundCap,omitempty"`
	ShowBackground  *bool                  `json:"showBackground,omitempty"`
	BackgroundStyle *style.ItemStyle       `json:"backgroundStyle,omitempty"`
}

func (*Bar) SeriesType() string { return "bar" }

// Pie is a pie, doughnut or nightingale chart.
type Pie struct {
	Base
	Center            variant.StringOrNumberList `json:"center,omitzero"`
	Radius            variant.StringOrNumberList `json:"radius,omitzero"`
	RoseType          variant.StringOrBool       `json:"roseType,omitzero"`
	StartAngle        *float64                   `json:"startAngle,omitempty"`
	Clockwise         *bool                      `json:"clockwise,omitempty"`
	MinAngle          *float64                   `json:"minAngle,omitempty"`
	AvoidLabelOverlap *bool                      `json:"avoidLabelOverlap,omitempty"`
	SelectedMode      variant.StringOrBool       `json:"selectedMode,omitzero"`
	LabelLine         *style.LabelLine           `json:"labelLine,omitempty"`
}

func (*Pie) SeriesType() string { return "pie" }

// Scatter is a scatter or bubble chart.
type Scatter struct {
	Base
	Cartesian
	Symbols
	Large          *bool    `json:"large,omitempty"`
	LargeThreshold *float64 `json:"largeThreshold,omitempty"`
}

func (*Scatter) SeriesType() string { return "scatter" }

// RippleEffect animates the ripples of an effect scatter.
type RippleEffect struct {
	Color     color.Color `json:"color,omitzero"`
	Number    *float64    `json:"number,omitempty"`
	Period    *float64    `json:"period,omitempty"`
	Scale     *float64    `json:"scale,omitempty"`
	BrushType string      `json:"brushType,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// EffectScatter is a scatter chart with rippling markers.
type EffectScatter struct {
	Base
	Cartesian
	Symbols
	EffectType   string        `json:"effectType,omitempty"`
	ShowEffectOn string        `json:"showEffectOn,omitempty"`
	RippleEffect *RippleEffect `json:"rippleEffect,omitempty"`
}

func (*EffectScatter) SeriesType() string { return "effectScatter" }

// PictorialBar draws bars with repeated or stretched symbols.
type PictorialBar struct {
	Base
	Cartesian
	Symbols
	SymbolPosition string                 `json:"symbolPosition,omitempty"`
	SymbolMargin   variant.StringOrNumber `json:"symbolMargin,omitzero"`
	SymbolClip     *bool                  `json:"symbolClip,omitempty"`
	BarGap         string                 `json:"barGap,omitempty"`
	BarCategoryGap string                 `json:"barCategoryGap,omitempty"`
}

func (*PictorialBar) SeriesType() string { return "pictorialBar" }
