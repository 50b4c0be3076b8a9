package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"chartcursor/internal/config"
	"chartcursor/internal/display"
	"chartcursor/internal/hover"
	"chartcursor/internal/locale"
	"chartcursor/internal/logging"
	"chartcursor/internal/storage"
	"chartcursor/internal/tickfmt"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logging.Component(logger, "app"), Out: os.Stdout}
}

// formatting bundles the collaborators resolved from display settings.
type formatting struct {
	loc   *time.Location
	parts tickfmt.PartsFormatter
	field display.FieldConfig
}

func (a *App) resolveFormatting() (formatting, error) {
	loc, err := a.Config.ResolveLocation()
	if err != nil {
		return formatting{}, err
	}
	parts, err := locale.New(a.Config.Display.Locale)
	if err != nil {
		return formatting{}, fmt.Errorf("display.locale: %w", err)
	}
	return formatting{loc: loc, parts: parts, field: a.Config.FieldConfig()}, nil
}

func (a *App) loadSeries(path string) ([]storage.SeriesData, error) {
	if path == "" {
		return nil, fmt.Errorf("--input is required")
	}
	data, err := storage.OpenSeriesFile(path)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug().Str("input", path).Int("series", len(data)).Msg("series loaded")
	return data, nil
}

// inspect runs the hover aggregation for cursor over the loaded series.
func inspect(data []storage.SeriesData, cursor time.Time, f formatting) (hover.Result, error) {
	timeDisplay := display.NewProcessor(display.FieldConfig{Type: display.TypeTime}, f.loc)
	series, times := storage.Dimensions(data, f.field, timeDisplay)
	return hover.Aggregate(series, times, toMillis(cursor), hover.Options{Location: f.loc})
}

func toMillis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func fromMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// HoverOptions configure the hover command.
type HoverOptions struct {
	Input   string
	At      time.Time
	CSVPath string
}

// TicksOptions configure the ticks command.
type TicksOptions struct {
	From  time.Time
	To    time.Time
	Ticks int
}

// SweepOptions configure the sweep command.
type SweepOptions struct {
	Input    string
	From     *time.Time
	To       *time.Time
	Interval time.Duration
}

// RenderOptions configure the PNG preview.
type RenderOptions struct {
	Input   string
	PNGPath string
	At      *time.Time
}
