package hover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartcursor/internal/display"
)

func TestLocate(t *testing.T) {
	times := []float64{10, 20, 30}

	cases := []struct {
		name string
		x    float64
		want int
	}{
		{name: "exact match", x: 20, want: 1},
		{name: "between points", x: 25, want: 1},
		{name: "before all", x: 5, want: 0},
		{name: "after all", x: 100, want: 2},
		{name: "first point", x: 10, want: 0},
		{name: "last point", x: 30, want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Locate(times, tc.x))
		})
	}
}

func TestLocateEmpty(t *testing.T) {
	assert.Equal(t, 0, Locate(nil, 42))
	assert.Equal(t, 0, Locate([]float64{}, -1))
}

func TestLocateBracketsQuery(t *testing.T) {
	times := []float64{0, 3, 3, 3, 8, 13, 21, 34, 34, 55}
	for x := -5.0; x <= 60; x += 0.5 {
		i := Locate(times, x)
		if x < times[0] {
			require.Equal(t, 0, i, "x=%v", x)
			continue
		}
		require.LessOrEqual(t, times[i], x, "x=%v", x)
		if i+1 < len(times) {
			require.Less(t, x, times[i+1], "x=%v", x)
		}
	}
}

func plainSeries(name string, n int) Series {
	return Series{Name: name, Values: make([]float64, n)}
}

func TestAggregatePrefersClosestBeforeCursor(t *testing.T) {
	series := []Series{plainSeries("a", 2), plainSeries("b", 2)}
	times := []TimeDimension{
		{Values: []float64{10, 18}},
		{Values: []float64{25, 30}},
	}

	res, err := Aggregate(series, times, 20, Options{})
	require.NoError(t, err)
	require.True(t, res.HasTime)
	assert.Equal(t, "18", res.Time)
	assert.Equal(t, 18.0, res.Timestamp)

	// Order of the series must not change the winner.
	res, err = Aggregate([]Series{series[1], series[0]}, []TimeDimension{times[1], times[0]}, 20, Options{})
	require.NoError(t, err)
	assert.Equal(t, "18", res.Time)
}

func TestAggregateAllAfterCursor(t *testing.T) {
	series := []Series{plainSeries("far", 2), plainSeries("near", 2)}
	times := []TimeDimension{
		{Values: []float64{27, 50}},
		{Values: []float64{23, 40}},
	}

	res, err := Aggregate(series, times, 20, Options{})
	require.NoError(t, err)
	assert.Equal(t, "23", res.Time)

	res, err = Aggregate([]Series{series[1], series[0]}, []TimeDimension{times[1], times[0]}, 20, Options{})
	require.NoError(t, err)
	assert.Equal(t, "23", res.Time)
}

func TestAggregateExactHitBeatsEarlierPoint(t *testing.T) {
	series := []Series{plainSeries("a", 1), plainSeries("b", 1)}
	times := []TimeDimension{
		{Values: []float64{15}},
		{Values: []float64{20}},
	}

	res, err := Aggregate(series, times, 20, Options{})
	require.NoError(t, err)
	assert.Equal(t, "20", res.Time)
}

func TestAggregateRecords(t *testing.T) {
	timeFmt := func(raw float64) display.Value {
		return display.Value{Text: "t", Suffix: "@"}
	}
	series := []Series{
		{
			Name:   "cpu",
			Values: []float64{1.234, 5.678},
			Config: display.FieldConfig{Unit: display.UnitPercent, Thresholds: []display.Threshold{{Value: 0, Color: "#73BF69"}}},
		},
		{
			Name:   "mem",
			Values: []float64{100, 200},
			Display: func(raw float64) display.Value {
				return display.Value{Prefix: "~", Text: "custom", Color: "red"}
			},
		},
	}
	times := []TimeDimension{
		{Values: []float64{1000, 2000}},
		{Values: []float64{1500, 2500}, Display: timeFmt},
	}

	res, err := Aggregate(series, times, 2100, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	assert.Equal(t, Record{
		Value:          "5.68%",
		Time:           "2000",
		Timestamp:      2000,
		DatapointIndex: 1,
		SeriesIndex:    0,
		Label:          "cpu",
		Color:          "#73BF69",
	}, res.Records[0])

	assert.Equal(t, Record{
		Value:          "~custom",
		Time:           "t@",
		Timestamp:      1500,
		DatapointIndex: 0,
		SeriesIndex:    1,
		Label:          "mem",
		Color:          "red",
	}, res.Records[1])

	assert.Equal(t, "2000", res.Time)
}

func TestAggregateEmpty(t *testing.T) {
	res, err := Aggregate(nil, nil, 10, Options{})
	require.NoError(t, err)
	assert.False(t, res.HasTime)
	assert.Empty(t, res.Records)
}

func TestAggregateRejectsMalformedInput(t *testing.T) {
	_, err := Aggregate([]Series{plainSeries("a", 1)}, nil, 0, Options{})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Aggregate([]Series{plainSeries("a", 0)}, []TimeDimension{{}}, 0, Options{})
	assert.ErrorIs(t, err, ErrEmptyDimension)

	_, err = Aggregate([]Series{plainSeries("a", 1)}, []TimeDimension{{Values: []float64{1, 2}}}, 0, Options{})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
