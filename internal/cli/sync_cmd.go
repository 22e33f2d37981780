package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/teflaherty67/PlanQuery/internal/cli/formatter"
	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/repository"
	"github.com/teflaherty67/PlanQuery/internal/service"
)

func newSyncCmd(app *App) *cobra.Command {
	var yes, dryRun bool
	var snapshotPath, reportPath string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Extract the plan record and synchronize it with the plan catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			model, err := app.loadModel(snapshotPath, reportPath)
			if err != nil {
				return err
			}

			record := app.Extract.Extract(model)
			if missing := record.MissingFields(); len(missing) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMissingFields(missing))
				return ErrCancelled
			}

			store, err := app.OpenStore()
			if err != nil {
				return err
			}
			defer store.Close()

			syncSvc := service.NewSyncService(store)

			if dryRun {
				res, err := syncSvc.Preview(ctx, record)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSyncResult(res, record.Key()))
				return nil
			}

			stopSpinner := func() {}
			if app.IsInteractive {
				stopSpinner = formatter.StartSpinner(cmd.ErrOrStderr(), "syncing with plan catalog")
			}
			defer stopSpinner()

			res, err := syncSvc.Synchronize(ctx, record, app.confirmUpdate(cmd, yes, stopSpinner))
			stopSpinner()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSyncResult(res, record.Key()))
			if res.Action == service.ActionCancelled {
				return ErrCancelled
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Update an existing row without asking")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what sync would do without writing")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Model snapshot file (overrides config)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Spreadsheet whose worksheets supplement the snapshot reports")

	return cmd
}

// confirmUpdate builds the ConfirmFunc the sync service calls before
// overwriting an existing row. stopSpinner clears any in-flight spinner
// before the prompt draws.
func (a *App) confirmUpdate(cmd *cobra.Command, assumeYes bool, stopSpinner func()) service.ConfirmFunc {
	return func(key domain.NaturalKey, existing *repository.StoredPlan) (bool, error) {
		if assumeYes {
			return true, nil
		}
		if !a.IsInteractive {
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("A matching row exists; pass --yes to update it without prompting."))
			return false, nil
		}

		stopSpinner()
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecord(&existing.Record))

		var accepted bool
		form := confirmForm("A matching plan already exists in the catalog. Update it?", &accepted)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return false, err
		}
		return accepted, nil
	}
}
