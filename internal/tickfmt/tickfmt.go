package tickfmt

import "strings"

const (
	// oneDay carries a 10ms margin: a "last 24 hours" range can evaluate
	// to slightly more than 86400000 around DST changes.
	oneDay  = 86400010
	oneYear = 31536000000
)

// Fallback patterns used when no PartsFormatter is available.
const (
	PatternSeconds    = "HH:mm:ss"
	PatternMinutes    = "HH:mm"
	PatternDayMinutes = "MM/DD HH:mm"
	PatternDays       = "MM/DD"
	PatternMonths     = "YYYY-MM"
)

// Part is one typed piece of a formatted date, e.g. {Type: "month", Value: "10"}.
// Literal separators use Type "literal".
type Part struct {
	Type  string
	Value string
}

// FieldSet selects the date/time fields a pattern should contain.
type FieldSet struct {
	Year   bool
	Month  bool
	Day    bool
	Hour   bool
	Minute bool
	Second bool
}

// PartsFormatter decomposes a date into ordered parts for a locale.
type PartsFormatter interface {
	FormatToParts(fields FieldSet) []Part
}

var (
	fieldsSeconds    = FieldSet{Hour: true, Minute: true, Second: true}
	fieldsMinutes    = FieldSet{Hour: true, Minute: true}
	fieldsDayMinutes = FieldSet{Month: true, Day: true, Hour: true, Minute: true}
	fieldsDays       = FieldSet{Month: true, Day: true}
	fieldsMonths     = FieldSet{Year: true, Month: true}
)

var partTokens = map[string]string{
	"year":         "YYYY",
	"month":        "MM",
	"day":          "DD",
	"hour":         "HH",
	"minute":       "mm",
	"second":       "ss",
	"weekday":      "ddd",
	"era":          "N",
	"dayPeriod":    "A",
	"timeZoneName": "Z",
}

// Select picks a tick label pattern whose granularity matches the time
// covered by each tick. Unset input (no ticks, or an empty range as with
// all-zero bounds) yields the minute pattern. A zero min is a valid epoch.
func Select(ticks, min, max float64, f PartsFormatter) string {
	if !(ticks > 0) || !(max > min) {
		return localPattern(f, fieldsMinutes, PatternMinutes)
	}

	rng := max - min
	secPerTick := rng / ticks / 1000

	switch {
	case secPerTick <= 45:
		return localPattern(f, fieldsSeconds, PatternSeconds)
	case secPerTick <= 7200 || rng <= oneDay:
		return localPattern(f, fieldsMinutes, PatternMinutes)
	case secPerTick <= 80000:
		return localPattern(f, fieldsDayMinutes, PatternDayMinutes)
	case secPerTick <= 2419200 || rng <= oneYear:
		return localPattern(f, fieldsDays, PatternDays)
	default:
		return localPattern(f, fieldsMonths, PatternMonths)
	}
}

func localPattern(f PartsFormatter, fields FieldSet, fallback string) string {
	if f == nil {
		return fallback
	}
	parts := f.FormatToParts(fields)
	if len(parts) == 0 {
		return fallback
	}

	var b strings.Builder
	for _, p := range parts {
		if token, ok := partTokens[p.Type]; ok {
			b.WriteString(token)
			continue
		}
		b.WriteString(p.Value)
	}
	return b.String()
}
