// Package color implements the color union accepted by every color field
// of an option document: a plain CSS color string, a linear or radial
// gradient, or an image texture.
package color

import (
	"encoding/json"
	"fmt"
	imagecolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
	"github.com/mcncl/echartsopt/internal/variant"
)

// Kind identifies the active arm of a Color.
type Kind int

const (
	KindNone Kind = iota
	KindPlain
	KindLinear
	KindRadial
	KindTexture
)

// String returns the name of the arm.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlain:
		return "plain"
	case KindLinear:
		return "linear"
	case KindRadial:
		return "radial"
	case KindTexture:
		return "texture"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Discriminator values of the gradient arms.
const (
	TypeLinear = "linear"
	TypeRadial = "radial"
)

// ColorStop is one stop of a gradient. Offset is a fraction in [0, 1].
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

// Stop returns a ColorStop with a plain color.
func Stop(offset float64, color string) ColorStop {
	return ColorStop{Offset: offset, Color: FromString(color)}
}

// LinearGradient runs from (X, Y) to (X2, Y2). Coordinates are fractions
// of the shape's bounding box unless Global is set, in which case they
// are pixels.
type LinearGradient struct {
	X, Y, X2, Y2 float64
	ColorStops   []ColorStop
	Global       bool
}

// RadialGradient is centred on (X, Y) with radius R.
type RadialGradient struct {
	X, Y, R    float64
	ColorStops []ColorStop
	Global     bool
}

// Texture fills a shape with an image. Repeat is one of "repeat",
// "repeat-x", "repeat-y" or "no-repeat"; empty leaves the default.
type Texture struct {
	Image  string
	Repeat string
}

// Color holds one of the color arms. The zero value has no arm and encodes
// as null. A Color is immutable: copies may share an arm, and the arm
// accessors return copies.
type Color struct {
	v value
}

type value interface {
	kind() Kind
}

type plain string

func (plain) kind() Kind { return KindPlain }

func (*LinearGradient) kind() Kind { return KindLinear }

func (*RadialGradient) kind() Kind { return KindRadial }

func (*Texture) kind() Kind { return KindTexture }

// FromString returns a plain color. Strings containing commas are kept as
// one value; use Parts to read the list.
func FromString(s string) Color {
	return Color{v: plain(s)}
}

// FromStrings joins colors into one comma separated plain color.
func FromStrings(colors ...string) Color {
	return FromString(strings.Join(colors, ","))
}

// FromRGBA converts a Go color: opaque colors become "#rrggbb", others
// "rgba(r,g,b,a)".
func FromRGBA(c imagecolor.Color) Color {
	n := imagecolor.NRGBAModel.Convert(c).(imagecolor.NRGBA)
	if n.A == 0xff {
		return FromString(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
	}
	alpha := math.Round(float64(n.A)/255*1000) / 1000
	return FromString(fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B,
		strconv.FormatFloat(alpha, 'f', -1, 64)))
}

// FromLinear returns a linear gradient color.
func FromLinear(g LinearGradient) Color {
	g.ColorStops = copyStops(g.ColorStops)
	return Color{v: &g}
}

// FromRadial returns a radial gradient color.
func FromRadial(g RadialGradient) Color {
	g.ColorStops = copyStops(g.ColorStops)
	return Color{v: &g}
}

// FromTexture returns a texture fill.
func FromTexture(t Texture) Color {
	return Color{v: &t}
}

// NewLinearGradient returns a gradient color in bounding box coordinates.
func NewLinearGradient(x, y, x2, y2 float64, stops ...ColorStop) Color {
	return FromLinear(LinearGradient{X: x, Y: y, X2: x2, Y2: y2, ColorStops: stops})
}

// NewRadialGradient returns a radial gradient color in bounding box
// coordinates.
func NewRadialGradient(x, y, r float64, stops ...ColorStop) Color {
	return FromRadial(RadialGradient{X: x, Y: y, R: r, ColorStops: stops})
}

// New builds a Color from a string, a []string (joined with commas), an
// image/color value, a gradient or texture record, or a Color. Other
// payloads fail with a construction error.
func New(v interface{}) (Color, error) {
	switch val := v.(type) {
	case Color:
		return val, nil
	case string:
		return FromString(val), nil
	case []string:
		return FromStrings(val...), nil
	case LinearGradient:
		return FromLinear(val), nil
	case *LinearGradient:
		if val != nil {
			return FromLinear(*val), nil
		}
	case RadialGradient:
		return FromRadial(val), nil
	case *RadialGradient:
		if val != nil {
			return FromRadial(*val), nil
		}
	case Texture:
		return FromTexture(val), nil
	case *Texture:
		if val != nil {
			return FromTexture(*val), nil
		}
	case imagecolor.Color:
		return FromRGBA(val), nil
	}
	return Color{}, errors.NewConstructionError("Color", v)
}

// Kind returns the active arm.
func (c Color) Kind() Kind {
	if c.v == nil {
		return KindNone
	}
	return c.v.kind()
}

// IsZero reports whether no arm is set.
func (c Color) IsZero() bool { return c.v == nil }

// Plain returns the plain color string.
func (c Color) Plain() (string, bool) {
	p, ok := c.v.(plain)
	return string(p), ok
}

// Linear returns a copy of the linear gradient arm.
func (c Color) Linear() (LinearGradient, bool) {
	g, ok := c.v.(*LinearGradient)
	if !ok {
		return LinearGradient{}, false
	}
	out := *g
	out.ColorStops = copyStops(g.ColorStops)
	return out, true
}

// Radial returns a copy of the radial gradient arm.
func (c Color) Radial() (RadialGradient, bool) {
	g, ok := c.v.(*RadialGradient)
	if !ok {
		return RadialGradient{}, false
	}
	out := *g
	out.ColorStops = copyStops(g.ColorStops)
	return out, true
}

// Texture returns a copy of the texture arm.
func (c Color) Texture() (Texture, bool) {
	t, ok := c.v.(*Texture)
	if !ok {
		return Texture{}, false
	}
	return *t, true
}

// Stops returns a copy of the stops of a gradient, nil for other arms.
func (c Color) Stops() []ColorStop {
	switch g := c.v.(type) {
	case *LinearGradient:
		return copyStops(g.ColorStops)
	case *RadialGradient:
		return copyStops(g.ColorStops)
	}
	return nil
}

// Parts splits a comma separated plain color into its members. Commas
// inside parentheses, as in "rgba(0,0,0,0.5)", do not split. Other arms
// return nil.
func (c Color) Parts() []string {
	p, ok := c.v.(plain)
	if !ok {
		return nil
	}
	var parts []string
	depth, start := 0, 0
	s := string(p)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// String returns the plain color, or the arm name for gradients and
// textures.
func (c Color) String() string {
	if p, ok := c.v.(plain); ok {
		return string(p)
	}
	return c.Kind().String()
}

type linearWire struct {
	Type       string      `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	X2         float64     `json:"x2"`
	Y2         float64     `json:"y2"`
	ColorStops []ColorStop `json:"colorStops"`
	Global     bool        `json:"global,omitempty"`
}

type radialWire struct {
	Type       string      `json:"type"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	R          float64     `json:"r"`
	ColorStops []ColorStop `json:"colorStops"`
	Global     bool        `json:"global,omitempty"`
}

type textureWire struct {
	Image  string `json:"image"`
	Repeat string `json:"repeat,omitempty"`
}

// MarshalJSON implements json.Marshaler. Gradients are written with "type"
// first and always carry a colorStops array.
func (c Color) MarshalJSON() ([]byte, error) {
	switch v := c.v.(type) {
	case nil:
		return []byte("null"), nil
	case plain:
		return variant.EncodeString(string(v))
	case *LinearGradient:
		return variant.Marshal(linearWire{
			Type: TypeLinear, X: v.X, Y: v.Y, X2: v.X2, Y2: v.Y2,
			ColorStops: nonNilStops(v.ColorStops), Global: v.Global,
		})
	case *RadialGradient:
		return variant.Marshal(radialWire{
			Type: TypeRadial, X: v.X, Y: v.Y, R: v.R,
			ColorStops: nonNilStops(v.ColorStops), Global: v.Global,
		})
	case *Texture:
		return variant.Marshal(textureWire{Image: v.Image, Repeat: v.Repeat})
	}
	return nil, fmt.Errorf("unsupported color arm %T", c.v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch kind {
	case analyzer.Null:
		*c = Color{}
		return nil
	case analyzer.String:
		*c = FromString(variant.DecodeString(val.(string)))
		return nil
	case analyzer.Object:
		decoded, err := decodeObject(val.(models.JSONObject), data)
		if err != nil {
			return err
		}
		*c = decoded
		return nil
	}
	return errors.NewShapeError("Color", kind.String(), "string", "object")
}

func decodeObject(obj models.JSONObject, data []byte) (Color, error) {
	t, hasType := obj["type"]
	if !hasType {
		if _, hasImage := obj["image"]; hasImage {
			return decodeTexture(obj)
		}
		return Color{}, errors.NewMissingDiscriminatorError("color", "type")
	}
	name, ok := t.(string)
	if !ok {
		return Color{}, errors.NewDiscriminatorError("color", "type", analyzer.Classify(t).String(), []string{TypeLinear, TypeRadial})
	}
	switch name {
	case TypeLinear:
		var w linearWire
		if err := json.Unmarshal(data, &w); err != nil {
			return Color{}, err
		}
		return Color{v: &LinearGradient{
			X: w.X, Y: w.Y, X2: w.X2, Y2: w.Y2,
			ColorStops: nonNilStops(w.ColorStops), Global: w.Global,
		}}, nil
	case TypeRadial:
		var w radialWire
		if err := json.Unmarshal(data, &w); err != nil {
			return Color{}, err
		}
		return Color{v: &RadialGradient{
			X: w.X, Y: w.Y, R: w.R,
			ColorStops: nonNilStops(w.ColorStops), Global: w.Global,
		}}, nil
	}
	return Color{}, errors.NewDiscriminatorError("color", "type", name, []string{TypeLinear, TypeRadial})
}

func decodeTexture(obj models.JSONObject) (Color, error) {
	image, ok := obj["image"].(string)
	if !ok {
		return Color{}, errors.NewShapeError("Texture", analyzer.Classify(obj["image"]).String(), "string")
	}
	t := &Texture{Image: variant.DecodeString(image)}
	if r, present := obj["repeat"]; present && r != nil {
		repeat, ok := r.(string)
		if !ok {
			return Color{}, errors.NewShapeError("Texture", analyzer.Classify(r).String(), "string")
		}
		t.Repeat = variant.DecodeString(repeat)
	}
	return Color{v: t}, nil
}

func nonNilStops(stops []ColorStop) []ColorStop {
	if stops == nil {
		return []ColorStop{}
	}
	return stops
}

func copyStops(stops []ColorStop) []ColorStop {
	return append([]ColorStop{}, stops...)
}
