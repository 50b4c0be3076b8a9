package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"chartcursor/internal/hover"
)

// Hover prints the hovered point of every series at the requested cursor.
func (a *App) Hover(ctx context.Context, opts HoverOptions) error {
	f, err := a.resolveFormatting()
	if err != nil {
		return err
	}

	data, err := a.loadSeries(opts.Input)
	if err != nil {
		return err
	}

	result, err := inspect(data, opts.At, f)
	if err != nil {
		return err
	}

	a.Logger.Info().
		Time("cursor", opts.At).
		Int("series", len(result.Records)).
		Str("closest", result.Time).
		Msg("hover inspected")

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Series\tTime\tValue\tIndex\tColor")
	for _, rec := range result.Records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n", rec.Label, rec.Time, rec.Value, rec.DatapointIndex, rec.Color)
	}
	writer.Flush()

	if result.HasTime {
		fmt.Fprintf(a.Out, "closest time: %s\n", result.Time)
	}

	if opts.CSVPath != "" {
		if err := writeRecordsCSV(opts.CSVPath, opts.At, result.Records); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordsCSV(path string, cursor time.Time, records []hover.Record) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"cursor_ts", "series_index", "series", "datapoint_index", "point_ts", "time", "value", "color"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			cursor.UTC().Format(time.RFC3339),
			strconv.Itoa(rec.SeriesIndex),
			rec.Label,
			strconv.Itoa(rec.DatapointIndex),
			fromMillis(rec.Timestamp).Format(time.RFC3339),
			rec.Time,
			rec.Value,
			rec.Color,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
