package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartcursor/internal/app"
	"chartcursor/internal/storage"
)

var (
	renderInput string
	renderPNG   string
	renderAt    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render series as a PNG chart with an optional crosshair",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.RenderOptions{
			Input:   renderInput,
			PNGPath: renderPNG,
		}

		if renderAt != "" {
			at, err := storage.ParseTimestamp(renderAt)
			if err != nil {
				return fmt.Errorf("invalid --at value: %w", err)
			}
			opts.At = &at
		}

		return getApp().Render(cmd.Context(), opts)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "CSV file with series,timestamp,value[,unit] rows")
	renderCmd.Flags().StringVar(&renderPNG, "png", "", "Path to write PNG chart")
	renderCmd.Flags().StringVar(&renderAt, "at", "", "Cursor position for the crosshair (RFC3339 or epoch milliseconds)")
}
