package storage

import (
	"time"

	"chartcursor/internal/display"
	"chartcursor/internal/hover"
)

// Point represents a single observation read from an input file.
type Point struct {
	Series string
	Time   time.Time
	Value  float64
	Unit   string
}

// SeriesData holds one series with its index-aligned timestamps (epoch ms),
// ordered by time.
type SeriesData struct {
	Name   string
	Unit   string
	Times  []float64
	Values []float64
}

// Span returns the first and last timestamp of the series.
func (s SeriesData) Span() (float64, float64) {
	if len(s.Times) == 0 {
		return 0, 0
	}
	return s.Times[0], s.Times[len(s.Times)-1]
}

// Dimensions converts loaded series into hover inputs. base is applied to
// every series; the unit read from the file overrides base.Unit when set.
func Dimensions(data []SeriesData, base display.FieldConfig, timeDisplay display.Processor) ([]hover.Series, []hover.TimeDimension) {
	series := make([]hover.Series, 0, len(data))
	times := make([]hover.TimeDimension, 0, len(data))
	for _, d := range data {
		cfg := base
		if d.Unit != "" {
			cfg.Unit = d.Unit
		}
		series = append(series, hover.Series{Name: d.Name, Values: d.Values, Config: cfg})
		times = append(times, hover.TimeDimension{Values: d.Times, Display: timeDisplay})
	}
	return series, times
}

// Bounds returns the earliest and latest timestamp across all series.
func Bounds(data []SeriesData) (float64, float64, bool) {
	var min, max float64
	found := false
	for _, d := range data {
		if len(d.Times) == 0 {
			continue
		}
		first, last := d.Span()
		if !found || first < min {
			min = first
		}
		if !found || last > max {
			max = last
		}
		found = true
	}
	return min, max, found
}
