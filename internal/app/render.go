package app

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"chartcursor/internal/config"
	"chartcursor/internal/hover"
	"chartcursor/internal/storage"
)

// Render draws the series as a PNG preview. When a cursor is given, a
// crosshair and the hovered value of every series are annotated.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	if opts.PNGPath == "" {
		return errors.New("--png must be provided")
	}

	f, err := a.resolveFormatting()
	if err != nil {
		return err
	}

	data, err := a.loadSeries(opts.Input)
	if err != nil {
		return err
	}

	var result *hover.Result
	if opts.At != nil {
		res, err := inspect(data, *opts.At, f)
		if err != nil {
			return err
		}
		result = &res
	}

	graph, err := buildChart(a.Config.Render, data, result, opts.At, f)
	if err != nil {
		return err
	}

	if err := ensureDir(opts.PNGPath); err != nil {
		return err
	}
	file, err := os.Create(opts.PNGPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return err
	}

	a.Logger.Info().Str("png", opts.PNGPath).Int("series", len(data)).Msg("chart rendered")
	return nil
}

func buildChart(cfg config.RenderConfig, data []storage.SeriesData, result *hover.Result, cursor *time.Time, f formatting) (*chart.Chart, error) {
	min, max, ok := storage.Bounds(data)
	if !ok {
		return nil, storage.ErrNoSeries
	}

	_, labels := buildTicks(min, max, cfg.Ticks, f)
	ticks := make([]chart.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = chart.Tick{Value: chartX(l.At), Label: l.Label}
	}

	colors := map[int]string{}
	if result != nil {
		for _, rec := range result.Records {
			colors[rec.SeriesIndex] = rec.Color
		}
	}

	series := make([]chart.Series, 0, len(data)+2)
	for i, d := range data {
		x := make([]time.Time, len(d.Times))
		for j, ts := range d.Times {
			x[j] = fromMillis(ts)
		}
		series = append(series, chart.TimeSeries{
			Name:    d.Name,
			XValues: x,
			YValues: d.Values,
			Style:   chart.Style{StrokeColor: seriesColor(colors[i], i), StrokeWidth: 2},
		})
	}

	title := cfg.Title
	if result != nil && cursor != nil {
		series = append(series, crosshair(data, result, *cursor)...)
		if result.HasTime {
			title = strings.TrimSpace(title + " @ " + result.Time)
		}
	}

	graph := &chart.Chart{
		Title:  title,
		Width:  cfg.Width,
		Height: cfg.Height,
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}
	return graph, nil
}

func crosshair(data []storage.SeriesData, result *hover.Result, cursor time.Time) []chart.Series {
	low, high := math.Inf(1), math.Inf(-1)
	for _, d := range data {
		for _, v := range d.Values {
			if math.IsNaN(v) {
				continue
			}
			low = math.Min(low, v)
			high = math.Max(high, v)
		}
	}
	if math.IsInf(low, 1) {
		return nil
	}

	x := chartX(toMillis(cursor))
	line := chart.ContinuousSeries{
		Name:    "cursor",
		XValues: []float64{x, x},
		YValues: []float64{low, high},
		Style: chart.Style{
			StrokeColor:     drawing.ColorBlack,
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 4},
		},
	}

	annotations := make([]chart.Value2, 0, len(result.Records))
	for _, rec := range result.Records {
		annotations = append(annotations, chart.Value2{
			XValue: chartX(rec.Timestamp),
			YValue: data[rec.SeriesIndex].Values[rec.DatapointIndex],
			Label:  rec.Label + ": " + rec.Value,
		})
	}

	return []chart.Series{line, chart.AnnotationSeries{Annotations: annotations}}
}

// chartX converts epoch milliseconds to go-chart's time axis units.
func chartX(ms float64) float64 {
	return chart.TimeToFloat64(fromMillis(ms))
}

func seriesColor(hex string, index int) drawing.Color {
	if hex = strings.TrimPrefix(hex, "#"); hex != "" {
		return drawing.ColorFromHex(hex)
	}
	return chart.GetDefaultColor(index)
}
