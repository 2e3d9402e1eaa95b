package series

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Cartesian places a series in a rectangular coordinate system.
type Cartesian struct {
	CoordinateSystem string `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int   `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int   `json:"yAxisIndex,omitempty"`
}

// Symbols configures item markers.
type Symbols struct {
	Symbol           variant.Symbol             `json:"symbol,omitzero"`
	SymbolSize       variant.SymbolSize         `json:"symbolSize,omitzero"`
	SymbolRotate     *float64                   `json:"symbolRotate,omitempty"`
	SymbolKeepAspect *bool                      `json:"symbolKeepAspect,omitempty"`
	SymbolOffset     variant.StringOrNumberList `json:"symbolOffset,omitzero"`
}

// LineEffect animates a trail along lines.
type LineEffect struct {
	Show        *bool                    `json:"show,omitempty"`
	Period      *float64                 `json:"period,omitempty"`
	Delay       variant.StringOrFunction `json:"delay,omitempty"`
	Symbol      variant.Symbol           `json:"symbol,omitzero"`
	SymbolSize  variant.SymbolSize       `json:"symbolSize,omitzero"`
	Color       color.Color              `json:"color,omitzero"`
	TrailLength *float64                 `json:"trailLength,omitempty"`
	TrailWidth  *float64                 `json:"trailWidth,omitempty"`
	Loop        *bool                    `json:"loop,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Level styles one depth of a hierarchical series.
type Level struct {
	ItemStyle       *style.ItemStyle                  `json:"itemStyle,omitempty"`
	Label           *style.Label                      `json:"label,omitempty"`
	Emphasis        *style.Emphasis                   `json:"emphasis,omitempty"`
	LineStyle       *style.LineStyle                  `json:"lineStyle,omitempty"`
	Color           variant.SingleOrMany[color.Color] `json:"color,omitzero"`
	ColorSaturation variant.Floats                    `json:"colorSaturation,omitzero"`
	ColorAlpha      variant.Floats                    `json:"colorAlpha,omitzero"`
	R0              variant.StringOrNumber            `json:"r0,omitzero"`
	R               variant.StringOrNumber            `json:"r,omitzero"`
	Depth           *int                              `json:"depth,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}
