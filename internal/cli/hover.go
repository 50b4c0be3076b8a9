package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartcursor/internal/app"
	"chartcursor/internal/storage"
)

var (
	hoverInput string
	hoverAt    string
	hoverCSV   string
)

var hoverCmd = &cobra.Command{
	Use:   "hover",
	Short: "Show the hovered point of every series at a cursor position",
	RunE: func(cmd *cobra.Command, args []string) error {
		if hoverAt == "" {
			return fmt.Errorf("--at must be provided")
		}
		at, err := storage.ParseTimestamp(hoverAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}

		opts := app.HoverOptions{
			Input:   hoverInput,
			At:      at,
			CSVPath: hoverCSV,
		}
		return getApp().Hover(cmd.Context(), opts)
	},
}

func init() {
	hoverCmd.Flags().StringVar(&hoverInput, "input", "", "CSV file with series,timestamp,value[,unit] rows")
	hoverCmd.Flags().StringVar(&hoverAt, "at", "", "Cursor position (RFC3339 or epoch milliseconds)")
	hoverCmd.Flags().StringVar(&hoverCSV, "csv", "", "Path to write hover records as CSV")
}
