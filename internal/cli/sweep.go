package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chartcursor/internal/app"
	"chartcursor/internal/storage"
)

var (
	sweepInput    string
	sweepFrom     string
	sweepTo       string
	sweepInterval time.Duration
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Move the cursor across the data range and print the closest points",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.SweepOptions{
			Input:    sweepInput,
			Interval: sweepInterval,
		}

		if sweepFrom != "" {
			from, err := storage.ParseTimestamp(sweepFrom)
			if err != nil {
				return fmt.Errorf("invalid --from value: %w", err)
			}
			opts.From = &from
		}

		if sweepTo != "" {
			to, err := storage.ParseTimestamp(sweepTo)
			if err != nil {
				return fmt.Errorf("invalid --to value: %w", err)
			}
			opts.To = &to
		}

		return getApp().Sweep(cmd.Context(), opts)
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepInput, "input", "", "CSV file with series,timestamp,value[,unit] rows")
	sweepCmd.Flags().StringVar(&sweepFrom, "from", "", "First cursor (defaults to the earliest point)")
	sweepCmd.Flags().StringVar(&sweepTo, "to", "", "Last cursor (defaults to the latest point)")
	sweepCmd.Flags().DurationVar(&sweepInterval, "interval", 0, "Cursor step (defaults to config)")
}
