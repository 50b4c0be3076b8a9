package display

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FieldType declares how raw values of a field are interpreted.
type FieldType string

const (
	TypeNumber  FieldType = "number"
	TypeTime    FieldType = "time"
	TypeString  FieldType = "string"
	TypeBoolean FieldType = "boolean"
)

// Supported units for number fields.
const (
	UnitNone    = "none"
	UnitPercent = "percent"
	UnitMillis  = "ms"
	UnitSeconds = "s"
	UnitBytes   = "bytes"
	UnitShort   = "short"
)

// TimeLayout is used for time fields without a custom processor.
const TimeLayout = "2006-01-02 15:04:05"

const autoDecimals = 2

// Value is a formatted value split into its display parts.
type Value struct {
	Prefix string
	Text   string
	Suffix string
	Color  string
}

// ToString joins the parts of a formatted value.
func ToString(v Value) string {
	return v.Prefix + v.Text + v.Suffix
}

// Processor turns a raw value into its display form.
type Processor func(raw float64) Value

// Threshold assigns Color to values at or above Value.
type Threshold struct {
	Value float64 `mapstructure:"value"`
	Color string  `mapstructure:"color"`
}

// FieldConfig describes the declared semantics of a field.
type FieldConfig struct {
	Type       FieldType   `mapstructure:"type"`
	Unit       string      `mapstructure:"unit"`
	Decimals   *int32      `mapstructure:"decimals"`
	Thresholds []Threshold `mapstructure:"thresholds"`
	Color      string      `mapstructure:"color"`
}

// NewProcessor derives a default processor from the field config. Time
// fields are rendered in loc, or UTC when loc is nil.
func NewProcessor(cfg FieldConfig, loc *time.Location) Processor {
	if loc == nil {
		loc = time.UTC
	}

	return func(raw float64) Value {
		v := Value{Color: colorFor(cfg, raw)}
		switch cfg.Type {
		case TypeTime:
			v.Text = time.UnixMilli(int64(raw)).In(loc).Format(TimeLayout)
		case TypeBoolean:
			v.Text = strconv.FormatBool(raw != 0)
		case TypeString:
			v.Text = strconv.FormatFloat(raw, 'f', -1, 64)
		default:
			v.Text, v.Suffix = formatNumber(raw, cfg)
		}
		return v
	}
}

func formatNumber(raw float64, cfg FieldConfig) (string, string) {
	switch {
	case math.IsNaN(raw):
		return "NaN", ""
	case math.IsInf(raw, 1):
		return "+Inf", ""
	case math.IsInf(raw, -1):
		return "-Inf", ""
	}

	decimals := int32(autoDecimals)
	if cfg.Decimals != nil {
		decimals = *cfg.Decimals
	}

	switch cfg.Unit {
	case UnitBytes:
		if raw < 0 {
			return "-" + humanize.Bytes(uint64(-raw)), ""
		}
		return humanize.Bytes(uint64(raw)), ""
	case UnitShort:
		return strings.TrimSpace(humanize.SIWithDigits(raw, int(decimals), "")), ""
	}

	d := decimal.NewFromFloat(raw)
	text := d.Round(decimals).String()
	if cfg.Decimals != nil {
		text = d.StringFixed(decimals)
	}

	return text, unitSuffix(cfg.Unit)
}

func unitSuffix(unit string) string {
	switch unit {
	case UnitPercent:
		return "%"
	case UnitMillis:
		return " ms"
	case UnitSeconds:
		return " s"
	default:
		return ""
	}
}

func colorFor(cfg FieldConfig, raw float64) string {
	color := cfg.Color
	best := math.Inf(-1)
	for _, t := range cfg.Thresholds {
		if t.Value <= raw && t.Value >= best {
			best = t.Value
			color = t.Color
		}
	}
	return color
}
