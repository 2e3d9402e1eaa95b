package formatter

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/variant"
)

// stringLiteral matches one complete JSON string literal. Outside of string
// literals JSON text never contains a double quote, so scanning left to right
// visits every literal exactly once.
var stringLiteral = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)

// markedPrefix is the encoded form of variant.FunctionMarker at the start of
// a string literal.
var markedPrefix = []byte(`"\u001ffn\u001f`)

// Formatter writes option values as JSON wire text.
type Formatter struct {
	// Indent is the per-level indentation. Empty means compact output.
	Indent string
	// EscapeHTML escapes <, > and & inside ordinary strings.
	EscapeHTML bool
	// RawFunctions writes function strings as raw, unquoted tokens. When
	// false they are written as ordinary quoted strings.
	RawFunctions bool
}

// NewFormatter creates a Formatter with two-space indentation and raw
// function pass-through.
func NewFormatter() *Formatter {
	return &Formatter{
		Indent:       "  ",
		RawFunctions: true,
	}
}

// Format encodes v and rewrites every function string it contains.
func (f *Formatter) Format(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(f.EscapeHTML)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, errors.NewOutputError("failed to encode option", err)
	}

	return f.Rewrite(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// Rewrite replaces the marked string literals of already encoded JSON text.
// Unmarked literals and all other tokens are copied unchanged.
func (f *Formatter) Rewrite(data []byte) ([]byte, error) {
	if !bytes.Contains(data, markedPrefix) {
		return data, nil
	}

	var firstErr error
	out := stringLiteral.ReplaceAllFunc(data, func(lit []byte) []byte {
		if !bytes.HasPrefix(lit, markedPrefix) || firstErr != nil {
			return lit
		}

		var s string
		if err := json.Unmarshal(lit, &s); err != nil {
			firstErr = errors.NewOutputError("failed to decode function string", err)
			return lit
		}
		s = variant.DecodeString(s)

		if f.RawFunctions {
			return []byte(s)
		}
		quoted, err := f.quote(s)
		if err != nil {
			firstErr = err
			return lit
		}
		return quoted
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

func (f *Formatter) quote(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(f.EscapeHTML)
	if err := enc.Encode(s); err != nil {
		return nil, errors.NewOutputError("failed to encode function string", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
