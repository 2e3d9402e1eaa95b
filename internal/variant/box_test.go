package variant

import (
	"encoding/json"
	"testing"

	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadding_Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Padding
	}{
		{"number", `3`, Padding{Top: 3, Right: 3, Bottom: 3, Left: 3}},
		{"one element", `[3]`, Padding{Top: 3, Right: 3, Bottom: 3, Left: 3}},
		{"two elements", `[5, 10]`, Padding{Top: 5, Right: 10, Bottom: 5, Left: 10}},
		{"four elements", `[1, 2, 3, 4]`, Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"fractional", `[0.5, 1.5]`, Padding{Top: 0.5, Right: 1.5, Bottom: 0.5, Left: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Padding
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPadding_DecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		message  string
	}{
		{"three elements", `[1, 2, 3]`, errors.ErrArity, "cannot decode Padding: array must contain exactly 1, 2 or 4 elements, got 3"},
		{"empty", `[]`, errors.ErrArity, "cannot decode Padding: array must contain exactly 1, 2 or 4 elements, got 0"},
		{"five elements", `[1, 2, 3, 4, 5]`, errors.ErrArity, "cannot decode Padding: array must contain exactly 1, 2 or 4 elements, got 5"},
		{"string", `"5px"`, errors.ErrShape, "cannot decode JSON string into Padding: expected number or array of number"},
		{"string element", `["5", "5"]`, errors.ErrShape, "cannot decode JSON string into Padding: expected number"},
		{"nested", `[[1]]`, errors.ErrShape, "cannot decode JSON nested array into Padding: expected number or array of number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Padding
			err := json.Unmarshal([]byte(tt.input), &p)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestPadding_DecodeNullKeepsValue(t *testing.T) {
	p := UniformPadding(4)
	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	assert.Equal(t, UniformPadding(4), p)
}

func TestPadding_Encode(t *testing.T) {
	tests := []struct {
		name     string
		value    Padding
		expected string
	}{
		{"uniform collapses", UniformPadding(3), `3`},
		{"zero collapses", Padding{}, `0`},
		{"distinct", Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}, `[1,2,3,4]`},
		{"pair expands", Padding{Top: 5, Right: 10, Bottom: 5, Left: 10}, `[5,10,5,10]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestPadding_Construct(t *testing.T) {
	p, err := PaddingOf(5, 10)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{5, 10, 5, 10}, p.Values())
	assert.False(t, p.IsUniform())

	_, err = PaddingOf(1, 2, 3)
	assert.ErrorIs(t, err, errors.ErrArity)

	p, err = NewPadding(8)
	require.NoError(t, err)
	assert.True(t, p.IsUniform())

	p, err = NewPadding([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}, p)

	_, err = NewPadding("8")
	assert.ErrorIs(t, err, errors.ErrConstruction)
}

func TestBorderRadius(t *testing.T) {
	t.Run("corner order", func(t *testing.T) {
		var r BorderRadius
		require.NoError(t, json.Unmarshal([]byte(`[1, 2, 3, 4]`), &r))
		assert.Equal(t, BorderRadius{TopLeft: 1, TopRight: 2, BottomRight: 3, BottomLeft: 4}, r)
		assert.Equal(t, [4]float64{1, 2, 3, 4}, r.Values())
	})

	t.Run("broadcast", func(t *testing.T) {
		var a, b BorderRadius
		require.NoError(t, json.Unmarshal([]byte(`[6]`), &a))
		require.NoError(t, json.Unmarshal([]byte(`6`), &b))
		assert.Equal(t, a, b)
		assert.Equal(t, UniformBorderRadius(6), a)
	})

	t.Run("pair", func(t *testing.T) {
		var r BorderRadius
		require.NoError(t, json.Unmarshal([]byte(`[4, 0]`), &r))
		assert.Equal(t, BorderRadius{TopLeft: 4, TopRight: 0, BottomRight: 4, BottomLeft: 0}, r)
	})

	t.Run("arity", func(t *testing.T) {
		var r BorderRadius
		err := json.Unmarshal([]byte(`[1, 2, 3]`), &r)
		assert.ErrorIs(t, err, errors.ErrArity)
		assert.EqualError(t, err, "cannot decode BorderRadius: array must contain exactly 1, 2 or 4 elements, got 3")
	})

	t.Run("encode", func(t *testing.T) {
		data, err := json.Marshal(UniformBorderRadius(5))
		require.NoError(t, err)
		assert.Equal(t, `5`, string(data))

		data, err = json.Marshal(BorderRadius{TopLeft: 5, TopRight: 5})
		require.NoError(t, err)
		assert.Equal(t, `[5,5,0,0]`, string(data))
	})

	t.Run("construct", func(t *testing.T) {
		r, err := BorderRadiusOf(2, 4)
		require.NoError(t, err)
		assert.Equal(t, BorderRadius{TopLeft: 2, TopRight: 4, BottomRight: 2, BottomLeft: 4}, r)

		_, err = NewBorderRadius(true)
		assert.ErrorIs(t, err, errors.ErrConstruction)
	})
}
