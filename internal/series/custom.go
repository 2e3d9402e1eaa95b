package series

import "github.com/mcncl/echartsopt/internal/variant"

// Custom renders items through a renderItem callback.
type Custom struct {
	Base
	Cartesian
	RenderItem variant.StringOrFunction `json:"renderItem,omitempty"`
	Dimensions variant.Strings          `json:"dimensions,omitzero"`
	Clip       *bool                    `json:"clip,omitempty"`
}

func (*Custom) SeriesType() string { return "custom" }
