package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teflaherty67/PlanQuery/internal/cli/formatter"
)

func newExtractCmd(app *App) *cobra.Command {
	var snapshotPath, reportPath string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Build and display the plan record without touching the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := app.loadModel(snapshotPath, reportPath)
			if err != nil {
				return err
			}

			record := app.Extract.Extract(model)
			app.Logger.Debug().
				Str("plan", record.PlanName).
				Int("missing_fields", len(record.MissingFields())).
				Msg("record extracted")

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecord(record))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Model snapshot file (overrides config)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Spreadsheet whose worksheets supplement the snapshot reports")

	return cmd
}
