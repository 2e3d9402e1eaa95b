// Package variant holds the "either this or that" value types used by
// option fields that accept several JSON shapes, together with their
// converters.
//
// Every type decodes through the analyzer's token classifier and encodes
// back to the most compact shape the charting library accepts: one-element
// lists collapse to a bare scalar, and four-sided boxes collapse to a
// scalar when all sides are equal.
package variant

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// FunctionMarker prefixes function strings in MarshalJSON output. It lets
// encoding/json carry them as ordinary strings until the formatter writes
// them out as raw tokens.
const FunctionMarker = "\x1ffn\x1f"

// IsFunction reports whether s is treated as an inline callback. Any string
// whose trimmed form starts with "function" qualifies, whether or not the
// rest is valid callback syntax.
func IsFunction(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "function")
}

// Marshal encodes v like json.Marshal but leaves <, > and & unescaped.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeString marshals s, marking it when it is a function. Every string
// arm in this module is written through it.
func EncodeString(s string) ([]byte, error) {
	if IsFunction(s) {
		s = FunctionMarker + s
	}
	return Marshal(s)
}

// DecodeString undoes the marking added by EncodeString.
func DecodeString(s string) string {
	return strings.TrimPrefix(s, FunctionMarker)
}

var stringLiteral = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)

// MarkFunctions marks every function string value inside an encoded JSON
// value, leaving object keys alone. raw is returned as is when it holds
// no function strings.
func MarkFunctions(raw json.RawMessage) (json.RawMessage, error) {
	locs := stringLiteral.FindAllIndex(raw, -1)
	var buf bytes.Buffer
	last := 0
	for _, loc := range locs {
		if isKey(raw[loc[1]:]) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw[loc[0]:loc[1]], &s); err != nil {
			return nil, err
		}
		if !IsFunction(s) {
			continue
		}
		enc, err := EncodeString(s)
		if err != nil {
			return nil, err
		}
		buf.Write(raw[last:loc[0]])
		buf.Write(enc)
		last = loc[1]
	}
	if last == 0 {
		return raw, nil
	}
	buf.Write(raw[last:])
	return buf.Bytes(), nil
}

// isKey reports whether the literal just before rest is an object key.
func isKey(rest []byte) bool {
	rest = bytes.TrimLeft(rest, " \t\r\n")
	return len(rest) > 0 && rest[0] == ':'
}
