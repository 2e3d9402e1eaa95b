package variant

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/models"
)

// SymbolKind classifies a symbol string.
type SymbolKind int

const (
	SymbolBuiltin SymbolKind = iota
	SymbolNone
	SymbolImage
	SymbolPath
	SymbolFunction
)

const (
	imagePrefix = "image://"
	pathPrefix  = "path://"
	emptyPrefix = "empty"
)

// SymbolDescriptor is the parsed form of one symbol string.
type SymbolDescriptor struct {
	Kind  SymbolKind
	Name  string // builtin shape name, without the "empty" prefix
	Empty bool   // builtin drawn hollow, e.g. "emptyCircle"
	Data  string // image URL or SVG path data
	Raw   string
}

// ParseSymbol parses a symbol string such as "circle", "emptyDiamond",
// "image://http://example.com/a.png", "path://M0,0L1,1" or a callback.
func ParseSymbol(s string) SymbolDescriptor {
	d := SymbolDescriptor{Raw: s}
	switch {
	case IsFunction(s):
		d.Kind = SymbolFunction
	case s == "none":
		d.Kind = SymbolNone
	case strings.HasPrefix(s, imagePrefix):
		d.Kind = SymbolImage
		d.Data = strings.TrimPrefix(s, imagePrefix)
	case strings.HasPrefix(s, pathPrefix):
		d.Kind = SymbolPath
		d.Data = strings.TrimPrefix(s, pathPrefix)
	case strings.HasPrefix(s, emptyPrefix) && len(s) > len(emptyPrefix):
		d.Kind = SymbolBuiltin
		d.Empty = true
		rest := s[len(emptyPrefix):]
		r, size := utf8.DecodeRuneInString(rest)
		d.Name = string(unicode.ToLower(r)) + rest[size:]
	default:
		d.Kind = SymbolBuiltin
		d.Name = s
	}
	return d
}

// Symbol is one symbol string or several (markLine ends take a pair).
// Like ArrayOrSingle it keeps the list form and collapses on encode.
type Symbol []string

// SymbolOf returns a Symbol holding names in order.
func SymbolOf(names ...string) Symbol {
	return append(Symbol{}, names...)
}

// NewSymbol builds a Symbol from a string or []string.
func NewSymbol(v interface{}) (Symbol, error) {
	switch val := v.(type) {
	case string:
		return Symbol{val}, nil
	case []string:
		return SymbolOf(val...), nil
	}
	return nil, errors.NewConstructionError("Symbol", v)
}

// Values returns the symbol strings.
func (s Symbol) Values() []string {
	return []string(s)
}

// Descriptors parses every symbol string.
func (s Symbol) Descriptors() []SymbolDescriptor {
	out := make([]SymbolDescriptor, len(s))
	for i, name := range s {
		out[i] = ParseSymbol(name)
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return ArrayOrSingle[string](s).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	values, err := decodeArrayOrSingle[string]("Symbol", data)
	if err != nil {
		return err
	}
	*s = values
	return nil
}

// SymbolSize is a size in pixels, a [width, height] pair, or a callback.
type SymbolSize struct {
	sizes []float64
	fn    string
	isFn  bool
}

// SymbolSizeOf returns a size from one or more numbers.
func SymbolSizeOf(sizes ...float64) SymbolSize {
	return SymbolSize{sizes: append([]float64{}, sizes...)}
}

// SymbolSizeFromFunction returns a callback size.
func SymbolSizeFromFunction(fn string) SymbolSize {
	return SymbolSize{fn: fn, isFn: true}
}

// NewSymbolSize builds a SymbolSize from a Go number, a numeric slice or a
// function string.
func NewSymbolSize(v interface{}) (SymbolSize, error) {
	if s, ok := v.(string); ok && IsFunction(s) {
		return SymbolSizeFromFunction(s), nil
	}
	if n, ok := toFloat64(v); ok {
		return SymbolSizeOf(n), nil
	}
	if l, ok := toFloat64s(v); ok {
		return SymbolSizeOf(l...), nil
	}
	return SymbolSize{}, errors.NewConstructionError("SymbolSize", v)
}

// IsZero reports whether no arm is set.
func (s SymbolSize) IsZero() bool { return !s.isFn && s.sizes == nil }

// Sizes returns the numeric arm.
func (s SymbolSize) Sizes() ([]float64, bool) {
	return s.sizes, !s.isFn && s.sizes != nil
}

// Function returns the callback arm.
func (s SymbolSize) Function() (string, bool) {
	return s.fn, s.isFn
}

// Dimensions returns width and height: a single size is used for both.
// ok is false for callbacks and for lists of any other length.
func (s SymbolSize) Dimensions() (width, height float64, ok bool) {
	if s.isFn {
		return 0, 0, false
	}
	switch len(s.sizes) {
	case 1:
		return s.sizes[0], s.sizes[0], true
	case 2:
		return s.sizes[0], s.sizes[1], true
	}
	return 0, 0, false
}

// MarshalJSON implements json.Marshaler.
func (s SymbolSize) MarshalJSON() ([]byte, error) {
	switch {
	case s.isFn:
		return EncodeString(s.fn)
	case s.sizes == nil:
		return []byte("null"), nil
	case len(s.sizes) == 1:
		return Marshal(s.sizes[0])
	default:
		return Marshal(s.sizes)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SymbolSize) UnmarshalJSON(data []byte) error {
	val, kind, err := analyzer.Decode(data)
	if err != nil {
		return err
	}
	switch {
	case kind == analyzer.Null:
		*s = SymbolSize{}
	case kind == analyzer.String:
		str, _ := asString(val)
		if !IsFunction(str) {
			return shapeError("SymbolSize", kind, "number", "array of number", "function")
		}
		*s = SymbolSizeFromFunction(str)
	case kind.IsNumber():
		n, _ := asFloat(val)
		*s = SymbolSizeOf(n)
	case kind == analyzer.UniformArray:
		sizes, elKind, ok := asFloats(val.(models.JSONArray))
		if !ok {
			return shapeError("SymbolSize", elKind, "number")
		}
		*s = SymbolSize{sizes: sizes}
	default:
		return shapeError("SymbolSize", kind, "number", "array of number", "function")
	}
	return nil
}
