package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"chartcursor/internal/storage"
	"chartcursor/internal/sweep"
)

// Sweep steps the cursor across the data range and prints the closest
// time and hovered values for each position.
func (a *App) Sweep(ctx context.Context, opts SweepOptions) error {
	f, err := a.resolveFormatting()
	if err != nil {
		return err
	}

	data, err := a.loadSeries(opts.Input)
	if err != nil {
		return err
	}

	min, max, ok := storage.Bounds(data)
	if !ok {
		return storage.ErrNoSeries
	}
	from, to := fromMillis(min), fromMillis(max)
	if opts.From != nil {
		from = opts.From.UTC()
	}
	if opts.To != nil {
		to = opts.To.UTC()
	}
	if to.Before(from) {
		return errors.New("from must not be after to")
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = a.Config.Sweep.Interval
	}

	sweeper := sweep.New(sweep.Options{
		Interval:     interval,
		AlignToStart: a.Config.Sweep.AlignToBucket,
	}, a.Logger)

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Cursor (UTC)\tClosest\tValues")

	steps, err := sweeper.Run(ctx, from, to, func(ctx context.Context, cursor time.Time) error {
		result, err := inspect(data, cursor, f)
		if err != nil {
			return err
		}
		values := make([]string, 0, len(result.Records))
		for _, rec := range result.Records {
			values = append(values, rec.Label+"="+rec.Value)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", cursor.Format(time.RFC3339), result.Time, strings.Join(values, " "))
		return nil
	})
	writer.Flush()
	if err != nil {
		return err
	}

	a.Logger.Info().Int("steps", steps).Dur("interval", interval).Msg("sweep finished")
	return nil
}
