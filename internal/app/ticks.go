package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"chartcursor/internal/tickfmt"
)

// tickLabel pairs a tick position (epoch ms) with its label.
type tickLabel struct {
	At    float64
	Label string
}

func buildTicks(min, max float64, count int, f formatting) (string, []tickLabel) {
	pattern := tickfmt.Select(float64(count), min, max, f.parts)
	positions := tickfmt.Ticks(min, max, count)

	labels := make([]tickLabel, len(positions))
	for i, p := range positions {
		labels[i] = tickLabel{At: p, Label: tickfmt.FormatTick(p, pattern, f.loc)}
	}
	return pattern, labels
}

// Ticks prints the tick pattern selected for a range and the resulting labels.
func (a *App) Ticks(ctx context.Context, opts TicksOptions) error {
	if !opts.From.Before(opts.To) {
		return errors.New("from must be before to")
	}
	count := opts.Ticks
	if count <= 0 {
		count = a.Config.Render.Ticks
	}

	f, err := a.resolveFormatting()
	if err != nil {
		return err
	}

	pattern, labels := buildTicks(toMillis(opts.From), toMillis(opts.To), count, f)
	a.Logger.Debug().Str("pattern", pattern).Int("ticks", count).Msg("tick format selected")

	fmt.Fprintf(a.Out, "pattern: %s\nlayout: %s\n", pattern, tickfmt.Layout(pattern))
	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Tick (UTC)\tLabel")
	for _, l := range labels {
		fmt.Fprintf(writer, "%s\t%s\n", fromMillis(l.At).Format(time.RFC3339), l.Label)
	}
	return writer.Flush()
}
