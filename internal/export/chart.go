package export

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

// WriteChart renders the per-generation population and vitality series as a
// PNG line chart. At least two samples are required to draw anything useful.
func WriteChart(path string, metrics []life.Metrics) error {
	if len(metrics) < 2 {
		return fmt.Errorf("export: need at least 2 samples to chart, got %d", len(metrics))
	}

	xs := make([]float64, len(metrics))
	pops := make([]float64, len(metrics))
	vits := make([]float64, len(metrics))
	for i, m := range metrics {
		xs[i] = float64(m.Generation)
		pops[i] = float64(m.Population)
		vits[i] = m.Vitality
	}

	graph := chart.Chart{
		Title: "population over time",
		XAxis: chart.XAxis{Name: "generation"},
		YAxis: chart.YAxis{Name: "cells"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "population", XValues: xs, YValues: pops},
			chart.ContinuousSeries{Name: "vitality sum", XValues: xs, YValues: vits},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("export: render chart: %w", err)
	}
	return nil
}
