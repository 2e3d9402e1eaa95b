package color

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mcncl/echartsopt/internal/errors"
)

var (
	constructorRegex = regexp.MustCompile(`(?s)^(?:new\s+)?(?:[\w$]+\.)*(LinearGradient|RadialGradient)\s*\((.*)\)\s*;?$`)
	constructorLike  = regexp.MustCompile(`^new\s|Gradient\s*\(`)
	singleQuoteRegex = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'`)
	bareKeyRegex     = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][\w$]*)\s*:`)
	bareValueRegex   = regexp.MustCompile(`(:\s*)([A-Za-z_$][\w$.]*)(\s*[,}\]])`)
	trailingComma    = regexp.MustCompile(`,(\s*[}\]])`)
)

// ParseExpression reads a color written as script source rather than JSON:
// a gradient constructor call such as
//
//	new echarts.graphic.LinearGradient(0, 0, 0, 1, [{offset: 0, color: '#83bff6'}, {offset: 1, color: '#188df0'}])
//
// an object literal with unquoted keys, or a plain (optionally quoted)
// color string. Parsing is best effort and not used when decoding JSON.
func ParseExpression(expr string) (Color, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Color{}, errors.NewParsingError("empty color expression", errors.ErrEmptyInput)
	}

	if m := constructorRegex.FindStringSubmatch(expr); m != nil {
		params, err := splitParams(m[2])
		if err != nil {
			return Color{}, errors.NewParsingError("invalid "+m[1]+" arguments", err)
		}
		if m[1] == "LinearGradient" {
			return parseLinear(params)
		}
		return parseRadial(params)
	}
	if constructorLike.MatchString(expr) {
		return Color{}, errors.NewParsingError("malformed gradient constructor call", nil)
	}

	if strings.HasPrefix(expr, "{") {
		var c Color
		if err := json.Unmarshal([]byte(NormalizeLiteral(expr)), &c); err != nil {
			return Color{}, errors.NewParsingError("invalid color object literal", err)
		}
		return c, nil
	}

	if s, ok := unquote(expr); ok {
		return FromString(s), nil
	}
	return FromString(expr), nil
}

// NormalizeLiteral rewrites a script object or array literal into JSON:
// keys are quoted, single quoted strings become double quoted, bare
// identifier values become strings and trailing commas are dropped.
func NormalizeLiteral(s string) string {
	s = singleQuoteRegex.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[1 : len(m)-1]
		inner = strings.ReplaceAll(inner, `\'`, `'`)
		b, _ := json.Marshal(inner)
		return string(b)
	})
	s = bareKeyRegex.ReplaceAllString(s, `$1"$2":`)
	s = bareValueRegex.ReplaceAllStringFunc(s, func(m string) string {
		parts := bareValueRegex.FindStringSubmatch(m)
		switch parts[2] {
		case "true", "false", "null":
			return m
		}
		return parts[1] + strconv.Quote(parts[2]) + parts[3]
	})
	return trailingComma.ReplaceAllString(s, "$1")
}

// splitParams splits an argument list on commas that are not nested in
// brackets or quotes.
func splitParams(s string) ([]string, error) {
	var params []string
	var stack []byte
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if quote != 0 {
			switch ch {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
		case '(', '[', '{':
			stack = append(stack, ch)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != opening(ch) {
				return nil, fmt.Errorf("unbalanced %q at offset %d", ch, i)
			}
			stack = stack[:len(stack)-1]
		case ',':
			if len(stack) == 0 {
				params = append(params, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated string")
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed %q", stack[len(stack)-1])
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(params) > 0 {
		params = append(params, last)
	}
	return params, nil
}

func opening(ch byte) byte {
	switch ch {
	case ')':
		return '('
	case ']':
		return '['
	}
	return '{'
}

func parseLinear(params []string) (Color, error) {
	if len(params) < 5 || len(params) > 6 {
		return Color{}, errors.NewParsingError(
			fmt.Sprintf("LinearGradient takes 5 or 6 arguments, got %d", len(params)), errors.ErrInvalidJSON)
	}
	coords, err := parseNumbers(params[:4])
	if err != nil {
		return Color{}, err
	}
	stops, err := parseStops(params[4])
	if err != nil {
		return Color{}, err
	}
	g := LinearGradient{X: coords[0], Y: coords[1], X2: coords[2], Y2: coords[3], ColorStops: stops}
	if len(params) == 6 {
		if g.Global, err = parseBool(params[5]); err != nil {
			return Color{}, err
		}
	}
	return FromLinear(g), nil
}

func parseRadial(params []string) (Color, error) {
	if len(params) < 4 || len(params) > 5 {
		return Color{}, errors.NewParsingError(
			fmt.Sprintf("RadialGradient takes 4 or 5 arguments, got %d", len(params)), errors.ErrInvalidJSON)
	}
	coords, err := parseNumbers(params[:3])
	if err != nil {
		return Color{}, err
	}
	stops, err := parseStops(params[3])
	if err != nil {
		return Color{}, err
	}
	g := RadialGradient{X: coords[0], Y: coords[1], R: coords[2], ColorStops: stops}
	if len(params) == 5 {
		if g.Global, err = parseBool(params[4]); err != nil {
			return Color{}, err
		}
	}
	return FromRadial(g), nil
}

func parseNumbers(params []string) ([]float64, error) {
	out := make([]float64, len(params))
	for i, p := range params {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("gradient coordinate %q is not a number", p), err)
		}
		out[i] = f
	}
	return out, nil
}

func parseStops(param string) ([]ColorStop, error) {
	var stops []ColorStop
	if err := json.Unmarshal([]byte(NormalizeLiteral(param)), &stops); err != nil {
		return nil, errors.NewParsingError("invalid color stops", err)
	}
	return nonNilStops(stops), nil
}

func parseBool(param string) (bool, error) {
	b, err := strconv.ParseBool(param)
	if err != nil {
		return false, errors.NewParsingError(fmt.Sprintf("global flag %q is not a boolean", param), err)
	}
	return b, nil
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	switch {
	case s[0] == '"' && s[len(s)-1] == '"':
		var out string
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return "", false
		}
		return out, true
	case s[0] == '\'' && s[len(s)-1] == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], `\'`, `'`), true
	}
	return "", false
}
