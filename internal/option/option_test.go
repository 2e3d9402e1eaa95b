package option

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/formatter"
	"github.com/mcncl/echartsopt/internal/series"
	"github.com/mcncl/echartsopt/internal/variant"
)

func loadSample(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "options", name))
	require.NoError(t, err)
	return data
}

func TestDecode_Samples(t *testing.T) {
	tests := []struct {
		file  string
		check func(t *testing.T, o *Option)
	}{
		{
			file: "line.json",
			check: func(t *testing.T, o *Option) {
				require.Len(t, o.Title, 1)
				assert.Equal(t, "Weekly sales", o.Title[0].Text)
				assert.Equal(t, "center", o.Title[0].Left.Text())

				require.Len(t, o.Legend, 1)
				items := o.Legend[0].Data
				require.Len(t, items, 2)
				assert.Equal(t, LegendItem{Name: "Email"}, items[0])
				assert.Equal(t, "circle", items[1].Icon)

				require.Len(t, o.XAxis, 1)
				assert.Equal(t, "category", o.XAxis[0].Type)
				assert.Len(t, o.XAxis[0].Data, 5)
				require.Len(t, o.YAxis, 1)

				require.NotNil(t, o.Tooltip)
				assert.Equal(t, "axis", o.Tooltip.Trigger)
				assert.Contains(t, o.Extra, "toolbox")

				assert.Equal(t, []string{"line", "line"}, o.Series.Types())
				direct := o.Series[1].(*series.Line)
				assert.Equal(t, "Direct", direct.Name)
				assert.Contains(t, direct.Extra, "markPoint")
			},
		},
		{
			file: "gradient_bar.json",
			check: func(t *testing.T, o *Option) {
				plain, ok := o.BackgroundColor.Plain()
				require.True(t, ok)
				assert.Equal(t, "#0f375f", plain)
				require.Len(t, o.Color, 1)

				require.Len(t, o.Series, 1)
				bar := o.Series[0].(*series.Bar)
				assert.Equal(t, "60%", bar.BarWidth.Text())
				require.NotNil(t, bar.ItemStyle)
				assert.Equal(t, color.KindLinear, bar.ItemStyle.Color.Kind())
				assert.Len(t, bar.ItemStyle.Color.Stops(), 2)
				require.NotNil(t, bar.ItemStyle.BorderRadius)
			},
		},
		{
			file: "pie_formatter.json",
			check: func(t *testing.T, o *Option) {
				require.NotNil(t, o.Tooltip)
				assert.True(t, o.Tooltip.Formatter.IsFunction())

				require.Len(t, o.Title, 1)
				require.NotNil(t, o.Title[0].Padding)

				pie := o.Series[0].(*series.Pie)
				assert.Equal(t, variant.StringOrFunction("{b}: {d}%"), pie.Label.Formatter)
				require.Len(t, pie.Data, 3)
				point, ok := pie.Data[0].Point()
				require.True(t, ok)
				assert.Equal(t, "Search", point.Name)
			},
		},
		{
			file: "graph.json",
			check: func(t *testing.T, o *Option) {
				assert.Equal(t, []string{"graph", "scatterGL"}, o.Series.Types())

				graph := o.Series[0].(*series.Graph)
				assert.Equal(t, "force", graph.Layout)
				require.Len(t, graph.Links, 1)
				assert.Equal(t, "analyzer", graph.Links[0].Target.Text())
				require.Len(t, graph.Categories, 2)

				gl := o.Series[1].(*series.ScatterGL)
				assert.Equal(t, "1e6", string(gl.Extra["progressive"]))
				xy, ok := gl.Data[0].Floats()
				require.True(t, ok)
				assert.Equal(t, []float64{1.5, 2.25}, xy)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			o, err := Decode(loadSample(t, tt.file))
			require.NoError(t, err)
			tt.check(t, o)
		})
	}
}

func TestEncode_StableAcrossRoundTrips(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "testdata", "options", "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)

			first, err := Decode(data)
			require.NoError(t, err)
			encoded, err := Encode(first)
			require.NoError(t, err)

			second, err := Decode(encoded)
			require.NoError(t, err)
			again, err := Encode(second)
			require.NoError(t, err)

			assert.Equal(t, string(encoded), string(again))
		})
	}
}

func TestEncode_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single title collapses to object",
			input:    `{"title":[{"text":"A"}]}`,
			expected: `{"title":{"text":"A"}}`,
		},
		{
			name:     "several titles stay an array",
			input:    `{"title":[{"text":"A"},{"text":"B"}]}`,
			expected: `{"title":[{"text":"A"},{"text":"B"}]}`,
		},
		{
			name:     "bare series object becomes an array",
			input:    `{"series":{"type":"bar","data":[1,2]}}`,
			expected: `{"series":[{"type":"bar","data":[1,2]}]}`,
		},
		{
			name:     "series type is written first",
			input:    `{"series":[{"name":"s","type":"line"}]}`,
			expected: `{"series":[{"type":"line","name":"s"}]}`,
		},
		{
			name:     "unknown members are kept after declared ones",
			input:    `{"toolbox":{"show":true},"title":{"zz":1,"text":"A"},"animation":false}`,
			expected: `{"title":{"text":"A","zz":1},"animation":false,"toolbox":{"show":true}}`,
		},
		{
			name:     "name-only legend items are strings",
			input:    `{"legend":{"data":[{"name":"a"},"b"]}}`,
			expected: `{"legend":{"data":["a","b"]}}`,
		},
		{
			name:     "empty document",
			input:    `{}`,
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Decode([]byte(tt.input))
			require.NoError(t, err)

			out, err := Encode(o)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestDecodeWith_StrictSeries(t *testing.T) {
	input := []byte(`{"series":{"type":"line"}}`)

	_, err := DecodeWith(input, DecodeOptions{AllowSingleSeries: false})
	require.Error(t, err)
	assert.EqualError(t, err, "cannot decode JSON object into series: expected array")
	assert.True(t, stderrors.Is(err, errors.ErrShape))

	o, err := DecodeWith([]byte(`{"series":[{"type":"line"}]}`), DecodeOptions{})
	require.NoError(t, err)
	assert.Len(t, o.Series, 1)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		sentinel error
	}{
		{
			name:     "array root",
			input:    `[{"series":[]}]`,
			contains: "cannot decode JSON array into Option: expected object",
			sentinel: errors.ErrShape,
		},
		{
			name:     "string root",
			input:    `"chart"`,
			contains: "cannot decode JSON string into Option: expected object",
			sentinel: errors.ErrShape,
		},
		{
			name:     "unknown series type",
			input:    `{"series":[{"type":"line"},{"type":"donut"}]}`,
			contains: `series[1]: cannot decode series: unknown series type "donut"`,
			sentinel: errors.ErrDiscriminator,
		},
		{
			name:     "missing series type",
			input:    `{"series":[{"name":"x"}]}`,
			contains: `series[0]: cannot decode series: missing "type" discriminator`,
			sentinel: errors.ErrDiscriminator,
		},
		{
			name:     "bad padding arity",
			input:    `{"title":{"padding":[1,2,3]}}`,
			contains: "array must contain exactly 1, 2 or 4 elements, got 3",
			sentinel: errors.ErrArity,
		},
		{
			name:     "bad color gradient",
			input:    `{"backgroundColor":{"type":"conic"}}`,
			contains: `unknown color type "conic"`,
			sentinel: errors.ErrDiscriminator,
		},
		{
			name:     "series as number",
			input:    `{"series":3}`,
			contains: "cannot decode JSON integer into series: expected array or object",
			sentinel: errors.ErrShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.True(t, stderrors.Is(err, tt.sentinel), "unexpected error chain: %v", err)
		})
	}
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode([]byte(`{"title":`))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidJSON))

	_, err = Decode([]byte("  "))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyInput))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, stderrors.New("boom")
}

func TestDecodeReader(t *testing.T) {
	o, err := DecodeReader(strings.NewReader(`{"title":{"text":"A"}}`), DefaultDecodeOptions())
	require.NoError(t, err)
	assert.Equal(t, "A", o.Title[0].Text)

	_, err = DecodeReader(failingReader{}, DefaultDecodeOptions())
	assert.EqualError(t, err, "input: failed to read option document: boom")
}

func TestEncode_FunctionsThroughFormatter(t *testing.T) {
	o, err := Decode(loadSample(t, "pie_formatter.json"))
	require.NoError(t, err)

	f := &formatter.Formatter{RawFunctions: true}
	out, err := f.Format(o)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, `"formatter":function (params) { return params.name + '<br/>' + params.percent + '%'; }`)
	assert.Contains(t, text, `"formatter":"{b}: {d}%"`)
	assert.NotContains(t, text, `\u001f`)
}

func TestEncode_FunctionsInSeriesTooltipAndExtras(t *testing.T) {
	input := `{
		"series": [{"type": "bar", "tooltip": {"formatter": "function (p) { return p.name; }"}}],
		"toolbox": {"feature": {"myTool": {"show": true, "onclick": "function () { alert(1); }"}}}
	}`

	o, err := Decode([]byte(input))
	require.NoError(t, err)
	bar := o.Series[0].(*series.Bar)
	require.NotNil(t, bar.Tooltip)
	assert.True(t, bar.Tooltip.Formatter.IsFunction())

	tests := []struct {
		name     string
		f        *formatter.Formatter
		expected string
	}{
		{
			name:     "raw",
			f:        &formatter.Formatter{RawFunctions: true},
			expected: `{"series":[{"type":"bar","tooltip":{"formatter":function (p) { return p.name; }}}],"toolbox":{"feature":{"myTool":{"show":true,"onclick":function () { alert(1); }}}}}`,
		},
		{
			name:     "quoted",
			f:        &formatter.Formatter{},
			expected: `{"series":[{"type":"bar","tooltip":{"formatter":"function (p) { return p.name; }"}}],"toolbox":{"feature":{"myTool":{"show":true,"onclick":"function () { alert(1); }"}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.f.Format(o)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestEncode_NestedBlocksKeepUndeclaredMembers(t *testing.T) {
	input := `{"xAxis":{"axisTick":{"alignWithLabel":true},"axisLabel":{"interval":0}},"series":[{"type":"line","lineStyle":{"width":2,"someNew":5}}]}`

	o, err := Decode([]byte(input))
	require.NoError(t, err)

	out, err := Encode(o)
	require.NoError(t, err)
	assert.Equal(t,
		`{"xAxis":{"axisLabel":{"interval":0},"axisTick":{"alignWithLabel":true}},"series":[{"type":"line","lineStyle":{"width":2,"someNew":5}}]}`,
		string(out))

	again, err := Decode(out)
	require.NoError(t, err)
	second, err := Encode(again)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(second))
}

func TestOption_Build(t *testing.T) {
	o := &Option{
		Title: variant.One(Title{Text: "Built"}),
		Series: series.List{
			&series.Bar{Base: series.Base{Name: "b", Data: series.DataOf(1, 2.5)}},
		},
	}

	out, err := Encode(o)
	require.NoError(t, err)
	assert.Equal(t, `{"title":{"text":"Built"},"series":[{"type":"bar","name":"b","data":[1,2.5]}]}`, string(out))
}
