package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFunction(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"function (params) { return params.value; }", true},
		{"  function(){}", true},
		{"\nfunction", true},
		// Anything that merely starts with the word passes through verbatim.
		{"functionality is not a callback", true},
		{"(params) => params.value", false},
		{"Function () {}", false},
		{"{b}: {c}", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFunction(tt.input))
		})
	}
}

func TestEncodeString(t *testing.T) {
	data, err := EncodeString("a<b & c>d")
	require.NoError(t, err)
	assert.Equal(t, `"a<b & c>d"`, string(data))

	data, err = EncodeString("function () {}")
	require.NoError(t, err)
	assert.Equal(t, `"\u001ffn\u001ffunction () {}"`, string(data))
}

func TestDecodeString(t *testing.T) {
	assert.Equal(t, "function () {}", DecodeString(FunctionMarker+"function () {}"))
	assert.Equal(t, "plain", DecodeString("plain"))
}

func TestMarkFunctions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain values untouched",
			input:    `{"a":"x","b":[1,"y"]}`,
			expected: `{"a":"x","b":[1,"y"]}`,
		},
		{
			name:     "bare string",
			input:    `"function () {}"`,
			expected: `"\u001ffn\u001ffunction () {}"`,
		},
		{
			name:     "nested values",
			input:    `{"feature":{"my":{"onclick": "function () { alert(1); }"}},"list":["function (a) {}", "b"]}`,
			expected: `{"feature":{"my":{"onclick": "\u001ffn\u001ffunction () { alert(1); }"}},"list":["\u001ffn\u001ffunction (a) {}", "b"]}`,
		},
		{
			name:     "keys left alone",
			input:    `{"function x" : "function () {}"}`,
			expected: `{"function x" : "\u001ffn\u001ffunction () {}"}`,
		},
		{
			name:     "escaped quotes",
			input:    `["say \"hi\"", "function () { return \"x\"; }"]`,
			expected: `["say \"hi\"", "\u001ffn\u001ffunction () { return \"x\"; }"]`,
		},
		{
			name:     "null",
			input:    `null`,
			expected: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := MarkFunctions([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}

	out, err := MarkFunctions(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}
