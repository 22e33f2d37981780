// Package config loads planquery settings from flags, environment
// variables, .env files, and an optional YAML config file, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends and SQL drivers accepted in configuration.
const (
	BackendSQL  = "sql"
	BackendREST = "rest"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLConfig selects the database/sql driver and its DSN.
type SQLConfig struct {
	Driver string
	DSN    string
}

// RESTConfig points at a hosted-table API.
type RESTConfig struct {
	BaseURL string
	Table   string
	Token   string
}

// StoreConfig selects and configures the remote plan store.
type StoreConfig struct {
	Backend string
	SQL     SQLConfig
	REST    RESTConfig
}

// Options holds the selection lists offered by the attributes form.
// Empty lists fall back to free-text input.
type Options struct {
	SpecLevels    []string
	ClientNames   []string
	Divisions     []string
	GarageLoading []string
}

// Config is the resolved application configuration.
type Config struct {
	Store        StoreConfig
	SnapshotPath string
	LogLevel     string
	Options      Options

	// ConfigFile is the file actually read, if any.
	ConfigFile string
}

// Load resolves configuration. file, when non-empty, names an explicit
// config file and must exist; otherwise ./planquery.yaml and
// ~/.planquery/planquery.yaml are tried and silently skipped when absent.
func Load(file string) (*Config, error) {
	// .env before viper env binding, missing file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PLANQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// The short token variable is the documented one; the prefixed long
	// form works too.
	_ = v.BindEnv("store.rest.token", "PLANQUERY_REST_TOKEN", "PLANQUERY_STORE_REST_TOKEN")

	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	} else {
		v.SetConfigName("planquery")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".planquery"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Store: StoreConfig{
			Backend: v.GetString("store.backend"),
			SQL: SQLConfig{
				Driver: v.GetString("store.sql.driver"),
				DSN:    v.GetString("store.sql.dsn"),
			},
			REST: RESTConfig{
				BaseURL: v.GetString("store.rest.base_url"),
				Table:   v.GetString("store.rest.table"),
				Token:   v.GetString("store.rest.token"),
			},
		},
		SnapshotPath: v.GetString("snapshot.path"),
		LogLevel:     v.GetString("log.level"),
		Options: Options{
			SpecLevels:    v.GetStringSlice("options.spec_levels"),
			ClientNames:   v.GetStringSlice("options.client_names"),
			Divisions:     v.GetStringSlice("options.divisions"),
			GarageLoading: v.GetStringSlice("options.garage_loading"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", BackendSQL)
	v.SetDefault("store.sql.driver", DriverSQLite)
	v.SetDefault("store.sql.dsn", defaultDSN())
	v.SetDefault("store.rest.table", "Plans")
	v.SetDefault("snapshot.path", "model_snapshot.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("options.spec_levels", []string{"Base", "Premium", "Elite"})
	v.SetDefault("options.garage_loading", []string{"Front", "Side", "Rear"})
}

// defaultDSN places the default SQLite database under ~/.planquery,
// next to the config file.
func defaultDSN() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".planquery", "plans.db")
	}
	return filepath.Join(home, ".planquery", "plans.db")
}

// ValidateStore reports whether the configured backend can be opened.
// Called before sync; extract-only commands never need a store.
func (c *Config) ValidateStore() error {
	switch c.Store.Backend {
	case BackendSQL:
		switch c.Store.SQL.Driver {
		case DriverSQLite, DriverPostgres:
		default:
			return fmt.Errorf("unknown sql driver %q (want %s or %s)",
				c.Store.SQL.Driver, DriverSQLite, DriverPostgres)
		}
		if c.Store.SQL.DSN == "" {
			return errors.New("store.sql.dsn is required for the sql backend")
		}
	case BackendREST:
		if c.Store.REST.BaseURL == "" {
			return errors.New("store.rest.base_url is required for the rest backend")
		}
		if c.Store.REST.Table == "" {
			return errors.New("store.rest.table is required for the rest backend")
		}
		if c.Store.REST.Token == "" {
			return errors.New("store.rest.token is required for the rest backend (set PLANQUERY_REST_TOKEN)")
		}
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)",
			c.Store.Backend, BackendSQL, BackendREST)
	}
	return nil
}
