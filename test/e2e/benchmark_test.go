package e2e_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcncl/echartsopt/internal/formatter"
	"github.com/mcncl/echartsopt/internal/option"
	"github.com/mcncl/echartsopt/internal/series"
)

// generateLineOption builds an option with seriesCount line series of
// pointCount values each
func generateLineOption(seriesCount, pointCount int) map[string]interface{} {
	rng := rand.New(rand.NewSource(42))

	categories := make([]string, pointCount)
	for i := range categories {
		categories[i] = fmt.Sprintf("day %d", i+1)
	}

	list := make([]map[string]interface{}, seriesCount)
	for s := range list {
		data := make([]float64, pointCount)
		for i := range data {
			data[i] = float64(rng.Intn(1000)) / 10
		}
		list[s] = map[string]interface{}{
			"type":       "line",
			"name":       fmt.Sprintf("series %d", s),
			"smooth":     s%2 == 0,
			"symbolSize": []int{6},
			"label": map[string]interface{}{
				"show":      true,
				"formatter": "function (p) { return p.value.toFixed(1); }",
			},
			"data": data,
		}
	}

	return map[string]interface{}{
		"title":  []map[string]interface{}{{"text": "generated", "padding": []int{5, 10}}},
		"xAxis":  map[string]interface{}{"type": "category", "data": categories},
		"yAxis":  map[string]interface{}{"type": "value"},
		"series": list,
	}
}

// generateGraphOption builds a graph series with nodeCount points and links
// between neighbours
func generateGraphOption(nodeCount int) map[string]interface{} {
	nodes := make([]map[string]interface{}, nodeCount)
	links := make([]map[string]interface{}, 0, nodeCount)
	for i := range nodes {
		nodes[i] = map[string]interface{}{
			"name":       fmt.Sprintf("n%d", i),
			"value":      []float64{float64(i), float64(i * 2)},
			"symbolSize": i%20 + 1,
			"itemStyle":  map[string]interface{}{"color": "#5470c6", "borderRadius": []int{2}},
		}
		if i > 0 {
			links = append(links, map[string]interface{}{"source": fmt.Sprintf("n%d", i-1), "target": fmt.Sprintf("n%d", i)})
		}
	}

	return map[string]interface{}{
		"series": map[string]interface{}{
			"type":   "graph",
			"layout": "force",
			"data":   nodes,
			"links":  links,
		},
	}
}

// BenchmarkDecode benchmarks decoding option documents of different sizes
func BenchmarkDecode(b *testing.B) {
	sizes := []struct {
		name string
		doc  map[string]interface{}
	}{
		{"Lines10x100", generateLineOption(10, 100)},
		{"Lines50x1000", generateLineOption(50, 1000)},
		{"Graph1000", generateGraphOption(1000)},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			data, err := json.Marshal(size.doc)
			require.NoError(b, err)

			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := option.Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEncode benchmarks writing decoded documents to the wire form
func BenchmarkEncode(b *testing.B) {
	formatters := []struct {
		name string
		f    *formatter.Formatter
	}{
		{"Compact", &formatter.Formatter{RawFunctions: true}},
		{"Indented", formatter.NewFormatter()},
		{"StrictJSON", &formatter.Formatter{}},
	}

	data, err := json.Marshal(generateLineOption(20, 500))
	require.NoError(b, err)
	doc, err := option.Decode(data)
	require.NoError(b, err)

	for _, tc := range formatters {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tc.f.Format(doc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSeriesDispatch benchmarks selecting series records by type
func BenchmarkSeriesDispatch(b *testing.B) {
	payloads := make([][]byte, 0, len(series.Types()))
	for _, t := range series.Types() {
		payloads = append(payloads, []byte(fmt.Sprintf(`{"type":%q,"name":"bench","data":[1,2,3]}`, t)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := series.Decode(payloads[i%len(payloads)]); err != nil {
			b.Fatal(err)
		}
	}
}
