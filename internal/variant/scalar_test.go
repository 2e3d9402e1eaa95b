package variant

import (
	"encoding/json"
	"testing"

	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrNumber_Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringOrNumber
	}{
		{"string", `"center"`, StringOrNumberFromString("center")},
		{"integer", `20`, StringOrNumberFromNumber(20)},
		{"float", `0.5`, StringOrNumberFromNumber(0.5)},
		{"percent", `"50%"`, StringOrNumberFromString("50%")},
		{"null", `null`, StringOrNumber{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v StringOrNumber
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestStringOrNumber_RejectsOtherShapes(t *testing.T) {
	for _, input := range []string{`true`, `[1]`, `{"a": 1}`} {
		var v StringOrNumber
		err := json.Unmarshal([]byte(input), &v)
		assert.ErrorIs(t, err, errors.ErrShape, input)
	}

	var v StringOrNumber
	err := json.Unmarshal([]byte(`true`), &v)
	assert.EqualError(t, err, "cannot decode JSON boolean into StringOrNumber: expected string or number")
}

func TestStringOrNumber_RoundTrip(t *testing.T) {
	values := []StringOrNumber{
		StringOrNumberFromString("center"),
		StringOrNumberFromNumber(12),
		StringOrNumberFromNumber(-3.25),
		StringOrNumberFromString("function (v) { return v.max; }"),
	}

	for _, v := range values {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var decoded StringOrNumber
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, v, decoded)
	}
}

func TestStringOrNumber_Accessors(t *testing.T) {
	n := StringOrNumberFromNumber(12.5)
	f, ok := n.Number()
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)
	_, ok = n.Str()
	assert.False(t, ok)
	assert.Equal(t, "12.5", n.Text())

	s := StringOrNumberFromString("auto")
	str, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "auto", str)
	assert.False(t, s.IsNumber())

	assert.True(t, StringOrNumber{}.IsZero())
	data, err := json.Marshal(StringOrNumber{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestNewStringOrNumber(t *testing.T) {
	v, err := NewStringOrNumber(int64(7))
	require.NoError(t, err)
	assert.Equal(t, StringOrNumberFromNumber(7), v)

	v, err = NewStringOrNumber("top")
	require.NoError(t, err)
	assert.Equal(t, StringOrNumberFromString("top"), v)

	_, err = NewStringOrNumber(true)
	assert.ErrorIs(t, err, errors.ErrConstruction)
	_, err = NewStringOrNumber([]int{1})
	assert.ErrorIs(t, err, errors.ErrConstruction)
}

func TestStringOrBool(t *testing.T) {
	var v StringOrBool
	require.NoError(t, json.Unmarshal([]byte(`"scale"`), &v))
	s, ok := v.Str()
	assert.True(t, ok)
	assert.Equal(t, "scale", s)

	require.NoError(t, json.Unmarshal([]byte(`true`), &v))
	b, ok := v.Bool()
	assert.True(t, ok)
	assert.True(t, b)
	assert.Equal(t, "true", v.Text())

	data, err := json.Marshal(StringOrBoolFromBool(false))
	require.NoError(t, err)
	assert.Equal(t, "false", string(data))

	err = json.Unmarshal([]byte(`1`), &v)
	assert.ErrorIs(t, err, errors.ErrShape)

	_, err = NewStringOrBool(1)
	assert.ErrorIs(t, err, errors.ErrConstruction)
}

func TestNumberOrBool(t *testing.T) {
	var v NumberOrBool
	require.NoError(t, json.Unmarshal([]byte(`0.3`), &v))
	n, ok := v.Number()
	assert.True(t, ok)
	assert.Equal(t, 0.3, n)

	require.NoError(t, json.Unmarshal([]byte(`true`), &v))
	assert.Equal(t, float64(1), v.Float())

	data, err := json.Marshal(NumberOrBoolFromNumber(0.5))
	require.NoError(t, err)
	assert.Equal(t, "0.5", string(data))

	err = json.Unmarshal([]byte(`"yes"`), &v)
	assert.ErrorIs(t, err, errors.ErrShape)

	built, err := NewNumberOrBool(false)
	require.NoError(t, err)
	assert.Equal(t, NumberOrBoolFromBool(false), built)
	_, err = NewNumberOrBool("0.5")
	assert.ErrorIs(t, err, errors.ErrConstruction)
}

func TestStringOrFunction(t *testing.T) {
	template := StringOrFunction("{b}: {c}")
	assert.False(t, template.IsFunction())
	data, err := json.Marshal(template)
	require.NoError(t, err)
	assert.Equal(t, `"{b}: {c}"`, string(data))

	fn := StringOrFunction("function (p) { return p.name; }")
	assert.True(t, fn.IsFunction())
	data, err = json.Marshal(fn)
	require.NoError(t, err)

	var decoded StringOrFunction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, fn, decoded)

	err = json.Unmarshal([]byte(`12`), &decoded)
	assert.ErrorIs(t, err, errors.ErrShape)
}
