package series

import (
	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Boxplot is a box-and-whisker chart.
type Boxplot struct {
	Base
	Cartesian
	Layout   string                     `json:"layout,omitempty"`
	BoxWidth variant.StringOrNumberList `json:"boxWidth,omitzero"`
}

func (*Boxplot) SeriesType() string { return "boxplot" }

// Candlestick is a K-line chart.
type Candlestick struct {
	Base
	Cartesian
	Layout      string                 `json:"layout,omitempty"`
	BarWidth    variant.StringOrNumber `json:"barWidth,omitzero"`
	BarMinWidth variant.StringOrNumber `json:"barMinWidth,omitzero"`
	BarMaxWidth variant.StringOrNumber `json:"barMaxWidth,omitzero"`
}

func (*Candlestick) SeriesType() string { return "candlestick" }

// Heatmap colors cells of a cartesian grid, a calendar or a map.
type Heatmap struct {
	Base
	Cartesian
	GeoIndex      *int     `json:"geoIndex,omitempty"`
	CalendarIndex *int     `json:"calendarIndex,omitempty"`
	PointSize     *float64 `json:"pointSize,omitempty"`
	BlurSize      *float64 `json:"blurSize,omitempty"`
	MinOpacity    *float64 `json:"minOpacity,omitempty"`
	MaxOpacity    *float64 `json:"maxOpacity,omitempty"`
}

func (*Heatmap) SeriesType() string { return "heatmap" }

// Parallel draws polylines across parallel axes.
type Parallel struct {
	Base
	CoordinateSystem string               `json:"coordinateSystem,omitempty"`
	ParallelIndex    *int                 `json:"parallelIndex,omitempty"`
	Smooth           variant.NumberOrBool `json:"smooth,omitzero"`
	InactiveOpacity  *float64             `json:"inactiveOpacity,omitempty"`
	ActiveOpacity    *float64             `json:"activeOpacity,omitempty"`
	LineStyle        *style.LineStyle     `json:"lineStyle,omitempty"`
}

func (*Parallel) SeriesType() string { return "parallel" }

// ThemeRiver is a streamgraph along a single axis.
type ThemeRiver struct {
	Base
	style.Position
	CoordinateSystem string                     `json:"coordinateSystem,omitempty"`
	SingleAxisIndex  *int                       `json:"singleAxisIndex,omitempty"`
	BoundaryGap      variant.StringOrNumberList `json:"boundaryGap,omitzero"`
}

func (*ThemeRiver) SeriesType() string { return "themeRiver" }

// Funnel is a funnel chart.
type Funnel struct {
	Base
	style.Position
	Min         *float64                 `json:"min,omitempty"`
	Max         *float64                 `json:"max,omitempty"`
	MinSize     variant.StringOrNumber   `json:"minSize,omitzero"`
	MaxSize     variant.StringOrNumber   `json:"maxSize,omitzero"`
	Orient      string                   `json:"orient,omitempty"`
	Sort        variant.StringOrFunction `json:"sort,omitempty"`
	Gap         *float64                 `json:"gap,omitempty"`
	FunnelAlign string                   `json:"funnelAlign,omitempty"`
	LabelLine   *style.LabelLine         `json:"labelLine,omitempty"`
}

func (*Funnel) SeriesType() string { return "funnel" }

// Gauge is a dial chart.
type Gauge struct {
	Base
	Center      variant.StringOrNumberList `json:"center,omitzero"`
	Radius      variant.StringOrNumber     `json:"radius,omitzero"`
	StartAngle  *float64                   `json:"startAngle,omitempty"`
	EndAngle    *float64                   `json:"endAngle,omitempty"`
	Clockwise   *bool                      `json:"clockwise,omitempty"`
	Min         *float64                   `json:"min,omitempty"`
	Max         *float64                   `json:"max,omitempty"`
	SplitNumber *int                       `json:"splitNumber,omitempty"`
	Title       *style.Label               `json:"title,omitempty"`
	Detail      *style.Label               `json:"detail,omitempty"`
}

func (*Gauge) SeriesType() string { return "gauge" }

// Radar draws polygons on a radar coordinate system.
type Radar struct {
	Base
	Symbols
	RadarIndex *int             `json:"radarIndex,omitempty"`
	LineStyle  *style.LineStyle `json:"lineStyle,omitempty"`
	AreaStyle  *style.AreaStyle `json:"areaStyle,omitempty"`
}

func (*Radar) SeriesType() string { return "radar" }
