package hover

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"chartcursor/internal/display"
)

var (
	// ErrDimensionMismatch indicates the value and time dimension lists differ in length.
	ErrDimensionMismatch = errors.New("hover: series and time dimensions differ in count")
	// ErrEmptyDimension indicates a time dimension without points.
	ErrEmptyDimension = errors.New("hover: time dimension is empty")
	// ErrLengthMismatch indicates a series is not index-aligned with its time dimension.
	ErrLengthMismatch = errors.New("hover: series and time dimension lengths differ")
)

// Series is one plotted line.
type Series struct {
	Name    string
	Values  []float64
	Display display.Processor
	Config  display.FieldConfig
}

// TimeDimension holds the epoch millisecond timestamps paired with a series.
type TimeDimension struct {
	Values  []float64
	Display display.Processor
}

// Record describes the hovered point of one series.
type Record struct {
	Value          string
	Time           string
	Timestamp      float64
	DatapointIndex int
	SeriesIndex    int
	Label          string
	Color          string
}

// Result is the outcome of Aggregate.
type Result struct {
	Records []Record
	// Time is the formatted closest time across all series. Only valid when HasTime is set.
	Time      string
	Timestamp float64
	HasTime   bool
}

// Options tune default formatting.
type Options struct {
	Location *time.Location
}

// Locate returns the index of the last element of the ascending times that
// is <= x. It returns 0 when x precedes every element or times is empty.
func Locate(times []float64, x float64) int {
	idx := sort.Search(len(times), func(i int) bool {
		return times[i] > x
	})
	if idx == 0 {
		return 0
	}
	return idx - 1
}

// Aggregate locates the hovered point of every series at cursor position x
// and picks the closest time overall. A point at or before the cursor is
// preferred; the closest point after the cursor wins only when no series has
// one before it.
func Aggregate(series []Series, times []TimeDimension, x float64, opts Options) (Result, error) {
	if len(series) != len(times) {
		return Result{}, fmt.Errorf("%w: %d series, %d time dimensions", ErrDimensionMismatch, len(series), len(times))
	}

	result := Result{Records: make([]Record, 0, len(series))}
	var minDistance float64

	for i, s := range series {
		dim := times[i]
		if len(dim.Values) == 0 {
			return Result{}, fmt.Errorf("series %d: %w", i, ErrEmptyDimension)
		}
		if len(s.Values) != len(dim.Values) {
			return Result{}, fmt.Errorf("series %d: %w (%d values, %d timestamps)", i, ErrLengthMismatch, len(s.Values), len(dim.Values))
		}

		idx := Locate(dim.Values, x)
		pointTime := dim.Values[idx]
		distance := x - pointTime
		formattedTime := formatTime(dim, pointTime)

		if !result.HasTime ||
			(distance >= 0 && (distance < minDistance || minDistance < 0)) ||
			(distance < 0 && distance > minDistance) {
			minDistance = distance
			result.Time = formattedTime
			result.Timestamp = pointTime
			result.HasTime = true
		}

		proc := s.Display
		if proc == nil {
			proc = display.NewProcessor(s.Config, opts.Location)
		}
		disp := proc(s.Values[idx])

		result.Records = append(result.Records, Record{
			Value:          display.ToString(disp),
			Time:           formattedTime,
			Timestamp:      pointTime,
			DatapointIndex: idx,
			SeriesIndex:    i,
			Label:          s.Name,
			Color:          disp.Color,
		})
	}

	return result, nil
}

func formatTime(dim TimeDimension, ts float64) string {
	if dim.Display != nil {
		return display.ToString(dim.Display(ts))
	}
	return strconv.FormatFloat(ts, 'f', -1, 64)
}
