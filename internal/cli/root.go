package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/teflaherty67/PlanQuery/internal/config"
	"github.com/teflaherty67/PlanQuery/internal/db"
	"github.com/teflaherty67/PlanQuery/internal/hostmodel"
	"github.com/teflaherty67/PlanQuery/internal/logging"
	"github.com/teflaherty67/PlanQuery/internal/repository"
	"github.com/teflaherty67/PlanQuery/internal/service"
)

// ErrCancelled marks a run that ended without touching the store: the
// user declined an update, aborted a form, or required information was
// missing. The command has already printed its notification when this
// comes back.
var ErrCancelled = errors.New("cancelled")

// App holds the configuration and collaborators CLI commands run
// against. The root command's PersistentPreRunE wires up anything left
// nil, so tests can pre-wire pieces and mark the App configured.
type App struct {
	Config        *config.Config
	Logger        zerolog.Logger
	IsInteractive bool

	Extract    service.ExtractService
	Attributes service.AttributesService

	// OpenModel loads the model snapshot at the given path.
	OpenModel func(path string) (*hostmodel.Snapshot, error)
	// OpenStore dials the configured store backend. Callers close it.
	OpenStore func() (repository.PlanStore, error)

	configured bool
}

// NewRootCmd creates the top-level "planquery" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var cfgFile string
	var verbose, quiet bool

	root := &cobra.Command{
		Use:           "planquery",
		Short:         "Extract plan data from a model snapshot and sync it to the plan catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cfgFile, verbose, quiet)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./planquery.yaml or ~/.planquery/planquery.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Warnings and errors only")

	root.AddCommand(
		newExtractCmd(app),
		newSyncCmd(app),
		newAttributesCmd(app),
	)

	return root
}

// init resolves configuration and fills in default collaborators.
// Fields the caller has already populated are left alone.
func (a *App) init(cfgFile string, verbose, quiet bool) error {
	if a.configured {
		return nil
	}

	if a.Config == nil {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		a.Config = cfg
	}
	if verbose {
		a.Config.LogLevel = "debug"
	}
	if quiet {
		a.Config.LogLevel = "warn"
	}

	a.Logger = logging.New(logging.Config{Level: a.Config.LogLevel})

	if a.Extract == nil {
		a.Extract = service.NewExtractService()
	}
	if a.Attributes == nil {
		a.Attributes = service.NewAttributesService()
	}
	if a.OpenModel == nil {
		a.OpenModel = hostmodel.Load
	}
	if a.OpenStore == nil {
		a.OpenStore = a.openConfiguredStore
	}

	a.configured = true
	return nil
}

// openConfiguredStore dials the store backend named by the config.
func (a *App) openConfiguredStore() (repository.PlanStore, error) {
	if err := a.Config.ValidateStore(); err != nil {
		return nil, err
	}

	observer := repository.NewZerologObserver(a.Logger)
	store := a.Config.Store

	switch store.Backend {
	case config.BackendREST:
		return repository.NewRESTPlanStore(store.REST.BaseURL, store.REST.Table, store.REST.Token, observer), nil
	default:
		database, err := db.OpenDB(store.SQL.Driver, store.SQL.DSN)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLPlanStore(database, store.SQL.Driver, observer), nil
	}
}

// loadModel opens the snapshot, preferring the flag path over the config
// default, and merges in reports from a separately exported spreadsheet
// when one is named.
func (a *App) loadModel(snapshotPath, reportPath string) (*hostmodel.Snapshot, error) {
	path := snapshotPath
	if path == "" {
		path = a.Config.SnapshotPath
	}

	model, err := a.OpenModel(path)
	if err != nil {
		return nil, err
	}

	if reportPath != "" {
		reports, err := hostmodel.LoadReportsXLSX(reportPath)
		if err != nil {
			return nil, err
		}
		model.AddReports(reports...)
	}

	return model, nil
}
