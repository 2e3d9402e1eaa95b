package series

import (
	"encoding/json"

	"github.com/mcncl/echartsopt/internal/style"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Tree is a tree diagram.
type Tree struct {
	Base
	style.Position
	Symbols
	Layout            string               `json:"layout,omitempty"`
	Orient            string               `json:"orient,omitempty"`
	EdgeShape         string               `json:"edgeShape,omitempty"`
	Roam              variant.StringOrBool `json:"roam,omitzero"`
	InitialTreeDepth  *int                 `json:"initialTreeDepth,omitempty"`
	ExpandAndCollapse *bool                `json:"expandAndCollapse,omitempty"`
	LineStyle         *style.LineStyle     `json:"lineStyle,omitempty"`
	Leaves            *Level               `json:"leaves,omitempty"`
}

func (*Tree) SeriesType() string { return "tree" }

// Treemap is a treemap.
type Treemap struct {
	Base
	style.Position
	SquareRatio *float64             `json:"squareRatio,omitempty"`
	LeafDepth   *int                 `json:"leafDepth,omitempty"`
	Roam        variant.StringOrBool `json:"roam,omitzero"`
	NodeClick   variant.StringOrBool `json:"nodeClick,omitzero"`
	VisibleMin  *float64             `json:"visibleMin,omitempty"`
	Levels      []Level              `json:"levels,omitempty"`
}

func (*Treemap) SeriesType() string { return "treemap" }

// Sunburst is a multi-level pie.
type Sunburst struct {
	Base
	Center                 variant.StringOrNumberList `json:"center,omitzero"`
	Radius                 variant.StringOrNumberList `json:"radius,omitzero"`
	StartAngle             *float64                   `json:"startAngle,omitempty"`
	NodeClick              variant.StringOrBool       `json:"nodeClick,omitzero"`
	Sort                   variant.StringOrFunction   `json:"sort,omitempty"`
	RenderLabelForZeroData *bool                      `json:"renderLabelForZeroData,omitempty"`
	Levels                 []Level                    `json:"levels,omitempty"`
}

func (*Sunburst) SeriesType() string { return "sunburst" }

// Category groups graph nodes.
type Category struct {
	Name string `json:"name,omitempty"`
	Symbols
	ItemStyle *style.ItemStyle `json:"itemStyle,omitempty"`
	Label     *style.Label     `json:"label,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Force configures the force-directed graph layout.
type Force struct {
	InitLayout      string         `json:"initLayout,omitempty"`
	Repulsion       variant.Floats `json:"repulsion,omitzero"`
	Gravity         *float64       `json:"gravity,omitempty"`
	EdgeLength      variant.Floats `json:"edgeLength,omitzero"`
	LayoutAnimation *bool          `json:"layoutAnimation,omitempty"`
	Friction        *float64       `json:"friction,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Graph is a relation graph.
type Graph struct {
	Base
	Cartesian
	style.Position
	Symbols
	Layout         string               `json:"layout,omitempty"`
	Roam           variant.StringOrBool `json:"roam,omitzero"`
	Draggable      *bool                `json:"draggable,omitempty"`
	Force          *Force               `json:"force,omitempty"`
	EdgeSymbol     variant.Symbol       `json:"edgeSymbol,omitzero"`
	EdgeSymbolSize variant.SymbolSize   `json:"edgeSymbolSize,omitzero"`
	Categories     []Category           `json:"categories,omitempty"`
	Nodes          []DataPoint          `json:"nodes,omitempty"`
	Links          []Link               `json:"links,omitempty"`
	Edges          []Link               `json:"edges,omitempty"`
	LineStyle      *style.LineStyle     `json:"lineStyle,omitempty"`
}

func (*Graph) SeriesType() string { return "graph" }

// Sankey is a flow diagram.
type Sankey struct {
	Base
	style.Position
	NodeWidth *float64         `json:"nodeWidth,omitempty"`
	NodeGap   *float64         `json:"nodeGap,omitempty"`
	NodeAlign string           `json:"nodeAlign,omitempty"`
	Orient    string           `json:"orient,omitempty"`
	Draggable *bool            `json:"draggable,omitempty"`
	Nodes     []DataPoint      `json:"nodes,omitempty"`
	Links     []Link           `json:"links,omitempty"`
	Edges     []Link           `json:"edges,omitempty"`
	Levels    []Level          `json:"levels,omitempty"`
	LineStyle *style.LineStyle `json:"lineStyle,omitempty"`
}

func (*Sankey) SeriesType() string { return "sankey" }
