package tickfmt

import (
	"strings"
	"time"
)

var layoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"ddd", "Mon",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
	"A", "PM",
	"Z", "MST",
	"N", "",
)

// Layout converts a tick pattern (YYYY, MM, DD, HH, mm, ss ...) into a Go
// reference layout.
func Layout(pattern string) string {
	return layoutReplacer.Replace(pattern)
}

// FormatTick renders the epoch millisecond timestamp with pattern in loc.
func FormatTick(epochMs float64, pattern string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(int64(epochMs)).In(loc).Format(Layout(pattern))
}

// Ticks returns count evenly spaced positions spanning [min, max].
func Ticks(min, max float64, count int) []float64 {
	if count <= 1 || max <= min {
		return []float64{min}
	}
	step := (max - min) / float64(count-1)
	out := make([]float64, count)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	out[count-1] = max
	return out
}
