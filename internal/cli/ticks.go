package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartcursor/internal/app"
	"chartcursor/internal/storage"
)

var (
	ticksFrom  string
	ticksTo    string
	ticksCount int
)

var ticksCmd = &cobra.Command{
	Use:   "ticks",
	Short: "Select the tick label pattern for a time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ticksFrom == "" || ticksTo == "" {
			return fmt.Errorf("--from and --to must be provided")
		}

		from, err := storage.ParseTimestamp(ticksFrom)
		if err != nil {
			return fmt.Errorf("invalid --from value: %w", err)
		}
		to, err := storage.ParseTimestamp(ticksTo)
		if err != nil {
			return fmt.Errorf("invalid --to value: %w", err)
		}

		opts := app.TicksOptions{
			From:  from,
			To:    to,
			Ticks: ticksCount,
		}
		return getApp().Ticks(cmd.Context(), opts)
	},
}

func init() {
	ticksCmd.Flags().StringVar(&ticksFrom, "from", "", "Range start (RFC3339 or epoch milliseconds)")
	ticksCmd.Flags().StringVar(&ticksTo, "to", "", "Range end (RFC3339 or epoch milliseconds)")
	ticksCmd.Flags().IntVar(&ticksCount, "ticks", 0, "Number of ticks (defaults to config)")
}
