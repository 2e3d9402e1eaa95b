package series

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Series types rendered by the GL extension.

// Bar3D is a 3D bar chart.
type Bar3D struct {
	Base
	CoordinateSystem string         `json:"coordinateSystem,omitempty"`
	Grid3DIndex      *int           `json:"grid3DIndex,omitempty"`
	GeoIndex         *int           `json:"geo3DIndex,omitempty"`
	GlobeIndex       *int           `json:"globeIndex,omitempty"`
	BarSize          variant.Floats `json:"barSize,omitzero"`
	BevelSize        *float64       `json:"bevelSize,omitempty"`
	Stack            string         `json:"stack,omitempty"`
	Shading          string         `json:"shading,omitempty"`
}

func (*Bar3D) SeriesType() string { return "bar3D" }

// Line3D is a 3D polyline.
type Line3D struct {
	Base
	CoordinateSystem string           `json:"coordinateSystem,omitempty"`
	Grid3DIndex      *int             `json:"grid3DIndex,omitempty"`
	LineStyle        *style.LineStyle `json:"lineStyle,omitempty"`
}

func (*Line3D) SeriesType() string { return "line3D" }

// Scatter3D is a 3D scatter chart.
type Scatter3D struct {
	Base
	Symbols
	CoordinateSystem string `json:"coordinateSystem,omitempty"`
	Grid3DIndex      *int   `json:"grid3DIndex,omitempty"`
	GeoIndex         *int   `json:"geo3DIndex,omitempty"`
	GlobeIndex       *int   `json:"globeIndex,omitempty"`
	BlendMode        string `json:"blendMode,omitempty"`
}

func (*Scatter3D) SeriesType() string { return "scatter3D" }

// Wireframe draws the mesh lines of a surface.
type Wireframe struct {
	Show      *bool            `json:"show,omitempty"`
	LineStyle *style.LineStyle `json:"lineStyle,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Surface is a 3D surface.
type Surface struct {
	Base
	CoordinateSystem string     `json:"coordinateSystem,omitempty"`
	Grid3DIndex      *int       `json:"grid3DIndex,omitempty"`
	Parametric       *bool      `json:"parametric,omitempty"`
	Wireframe        *Wireframe `json:"wireframe,omitempty"`
	Shading          string     `json:"shading,omitempty"`
}

func (*Surface) SeriesType() string { return "surface" }

// Map3D is a 3D map.
type Map3D struct {
	Base
	style.Position
	MapType      string   `json:"map,omitempty"`
	BoxWidth     *float64 `json:"boxWidth,omitempty"`
	BoxHeight    *float64 `json:"boxHeight,omitempty"`
	BoxDepth     *float64 `json:"boxDepth,omitempty"`
	RegionHeight *float64 `json:"regionHeight,omitempty"`
	Shading      string   `json:"shading,omitempty"`
}

func (*Map3D) SeriesType() string { return "map3D" }

// Lines3D draws routes on a globe or 3D geo component.
type Lines3D struct {
	Base
	CoordinateSystem string           `json:"coordinateSystem,omitempty"`
	GeoIndex         *int             `json:"geo3DIndex,omitempty"`
	GlobeIndex       *int             `json:"globeIndex,omitempty"`
	Polyline         *bool            `json:"polyline,omitempty"`
	BlendMode        string           `json:"blendMode,omitempty"`
	Effect           *LineEffect      `json:"effect,omitempty"`
	LineStyle        *style.LineStyle `json:"lineStyle,omitempty"`
}

func (*Lines3D) SeriesType() string { return "lines3D" }

// Polygons3D extrudes polygons in 3D.
type Polygons3D struct {
	Base
	CoordinateSystem string `json:"coordinateSystem,omitempty"`
	Multiple         *bool  `json:"multiple,omitempty"`
	Shading          string `json:"shading,omitempty"`
}

func (*Polygons3D) SeriesType() string { return "polygons3D" }

// ScatterGL is a GPU scatter chart for large data.
type ScatterGL struct {
	Base
	Cartesian
	Symbols
	BlendMode            string   `json:"blendMode,omitempty"`
	LargeThreshold       *float64 `json:"largeThreshold,omitempty"`
	ProgressiveThreshold *float64 `json:"progressiveThreshold,omitempty"`
}

func (*ScatterGL) SeriesType() string { return "scatterGL" }

// ForceAtlas2 configures the GPU graph layout.
type ForceAtlas2 struct {
	GPU                 *bool    `json:"GPU,omitempty"`
	Steps               *int     `json:"steps,omitempty"`
	Gravity             *float64 `json:"gravity,omitempty"`
	ScalingRatio        *float64 `json:"scalingRatio,omitempty"`
	EdgeWeightInfluence *float64 `json:"edgeWeightInfluence,omitempty"`
	PreventOverlap      *bool    `json:"preventOverlap,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// GraphGL is a GPU relation graph.
type GraphGL struct {
	Base
	Symbols
	Layout      string           `json:"layout,omitempty"`
	ForceAtlas2 *ForceAtlas2     `json:"forceAtlas2,omitempty"`
	Nodes       []DataPoint      `json:"nodes,omitempty"`
	Links       []Link           `json:"links,omitempty"`
	LineStyle   *style.LineStyle `json:"lineStyle,omitempty"`
}

func (*GraphGL) SeriesType() string { return "graphGL" }

// FlowGL draws a particle vector field.
type FlowGL struct {
	Base
	Cartesian
	GridWidth       variant.StringOrNumber `json:"gridWidth,omitzero"`
	GridHeight      variant.StringOrNumber `json:"gridHeight,omitzero"`
	ParticleDensity *float64               `json:"particleDensity,omitempty"`
	ParticleSize    *float64               `json:"particleSize,omitempty"`
	ParticleSpeed   *float64               `json:"particleSpeed,omitempty"`
	ParticleTrail   *float64               `json:"particleTrail,omitempty"`
}

func (*FlowGL) SeriesType() string { return "flowGL" }
