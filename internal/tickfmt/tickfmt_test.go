package tickfmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const hour = 3600 * 1000

type stubFormatter struct {
	calls []FieldSet
}

func (s *stubFormatter) FormatToParts(fields FieldSet) []Part {
	s.calls = append(s.calls, fields)
	var parts []Part
	if fields.Day {
		parts = append(parts, Part{Type: "day", Value: "15"}, Part{Type: "literal", Value: "."}, Part{Type: "month", Value: "10"}, Part{Type: "literal", Value: ". "})
	}
	if fields.Hour {
		parts = append(parts, Part{Type: "hour", Value: "14"}, Part{Type: "literal", Value: ":"}, Part{Type: "minute", Value: "30"})
	}
	return parts
}

func TestSelectFallbackPatterns(t *testing.T) {
	start := float64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())

	cases := []struct {
		name       string
		ticks      float64
		min, max   float64
		wantLayout string
	}{
		{name: "half second per tick", ticks: 100, min: 0, max: 50 * 1000, wantLayout: PatternSeconds},
		{name: "null inputs", ticks: 0, min: 0, max: 0, wantLayout: PatternMinutes},
		{name: "no ticks", ticks: 0, min: start, max: start + hour, wantLayout: PatternMinutes},
		{name: "45 seconds boundary", ticks: 10, min: start, max: start + 450*1000, wantLayout: PatternSeconds},
		{name: "two hours per tick", ticks: 6, min: start, max: start + 12*hour, wantLayout: PatternMinutes},
		{name: "day range with margin", ticks: 2, min: start, max: start + 86400010, wantLayout: PatternMinutes},
		{name: "just over a day", ticks: 2, min: start, max: start + 86400011, wantLayout: PatternDayMinutes},
		{name: "week", ticks: 7, min: start, max: start + 7*24*hour, wantLayout: PatternDays},
		{name: "year range", ticks: 2, min: start, max: start + 31536000000, wantLayout: PatternDays},
		{name: "multi year", ticks: 4, min: start, max: start + 3*31536000000, wantLayout: PatternMonths},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantLayout, Select(tc.ticks, tc.min, tc.max, nil))
		})
	}
}

func TestSelectUsesPartsFormatter(t *testing.T) {
	f := &stubFormatter{}

	got := Select(10, 1000, 1000+12*hour, f)
	assert.Equal(t, "HH:mm", got)
	assert.Equal(t, []FieldSet{fieldsMinutes}, f.calls)

	got = Select(2, 1000, 1000+36*hour, f)
	assert.Equal(t, "DD.MM. HH:mm", got)
}

func TestSelectEmptyPartsFallsBack(t *testing.T) {
	f := &stubFormatter{}
	assert.Equal(t, PatternMonths, Select(4, 1000, 1000+3*31536000000, f))
}

func TestLayout(t *testing.T) {
	assert.Equal(t, "15:04:05", Layout(PatternSeconds))
	assert.Equal(t, "01/02 15:04", Layout(PatternDayMinutes))
	assert.Equal(t, "2006-01", Layout(PatternMonths))
	assert.Equal(t, "02.01.", Layout("DD.MM."))
}

func TestFormatTick(t *testing.T) {
	ts := float64(time.Date(2024, 10, 15, 14, 30, 5, 0, time.UTC).UnixMilli())

	assert.Equal(t, "14:30:05", FormatTick(ts, PatternSeconds, nil))
	assert.Equal(t, "10/15 16:30", FormatTick(ts, PatternDayMinutes, time.FixedZone("CEST", 2*3600)))
	assert.Equal(t, "2024-10", FormatTick(ts, PatternMonths, time.UTC))
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, Ticks(0, 100, 5))
	assert.Equal(t, []float64{10}, Ticks(10, 10, 5))
	assert.Equal(t, []float64{3}, Ticks(3, 9, 1))
}
