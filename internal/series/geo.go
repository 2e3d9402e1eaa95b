package series

import (
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Map is a choropleth map.
type Map struct {
	Base
	style.Position
	MapType          string               `json:"map,omitempty"`
	GeoIndex         *int                 `json:"geoIndex,omitempty"`
	Roam             variant.StringOrBool `json:"roam,omitzero"`
	Center           variant.Floats       `json:"center,omitzero"`
	Zoom             *float64             `json:"zoom,omitempty"`
	AspectScale      *float64             `json:"aspectScale,omitempty"`
	NameMap          map[string]string    `json:"nameMap,omitempty"`
	SelectedMode     variant.StringOrBool `json:"selectedMode,omitzero"`
	ShowLegendSymbol *bool                `json:"showLegendSymbol,omitempty"`
}

func (*Map) SeriesType() string { return "map" }

// Lines draws routes between coordinates.
type Lines struct {
	Base
	Cartesian
	Symbols
	GeoIndex  *int             `json:"geoIndex,omitempty"`
	Polyline  *bool            `json:"polyline,omitempty"`
	Large     *bool            `json:"large,omitempty"`
	Effect    *LineEffect      `json:"effect,omitempty"`
	LineStyle *style.LineStyle `json:"lineStyle,omitempty"`
}

func (*Lines) SeriesType() string { return "lines" }
