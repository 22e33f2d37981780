package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/teflaherty67/PlanQuery/internal/cli/formatter"
)

func newAttributesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "Manage the project attributes the extractor reads",
	}

	cmd.AddCommand(
		newAttributesAddCmd(app),
		newAttributesEditCmd(app),
	)

	return cmd
}

func newAttributesAddCmd(app *App) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create any managed project attributes missing from the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := app.loadModel(snapshotPath, "")
			if err != nil {
				return err
			}

			added, err := app.Attributes.Ensure(model)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAddedAttributes(added))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Model snapshot file (overrides config)")

	return cmd
}

func newAttributesEditCmd(app *App) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the managed project attributes in an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return fmt.Errorf("attributes edit needs an interactive terminal")
			}

			model, err := app.loadModel(snapshotPath, "")
			if err != nil {
				return err
			}

			values := app.Attributes.Values(model)
			form, formValues := newAttributesForm(values, app.Config.Options)
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Edit cancelled; model unchanged."))
					return ErrCancelled
				}
				return err
			}

			if err := app.Attributes.Apply(model, formValues.asMap()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAttributes(app.Attributes.Values(model)))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Model snapshot file (overrides config)")

	return cmd
}
