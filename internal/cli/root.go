package cli

import (
	"github.com/spf13/cobra"

	"ttb/internal/config"
	"ttb/internal/domain"
	"ttb/internal/repository/sqlite"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(store sqlite.Store, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(store, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "ttb",
		Short: "A desktop time tracking and billing utility",
		Long: `Time Tracker Billing (ttb) tracks time spent on projects and converts it
into a billable amount at a per-8-hour-day rate.

FEATURES:
  • Start and stop a timer against a project and rate from an interactive screen
  • Automatic stop after five minutes without keyboard or mouse input
  • Append-only session log; every completed session is kept
  • Cumulative project time and billable amount in EUR, USD, GBP, JPY or CNY
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  ttb track                                # Open the interactive tracking screen
  ttb totals "Website" 400                 # Time and amount for a project at rate 400/day
  ttb totals "Website" 400 --currency JPY  # Same, billed in yen
  ttb projects list                        # Show the project catalog
  ttb rates list                           # Show the rate catalog
  ttb sessions list                        # Dump the raw session log

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TTB_DB_DIR                             Database directory (default: ~/.ttb)
    TTB_DB_FILENAME                        Database filename (default: ttb.db)
    TTB_DB_QUERY_TIMEOUT                   Query timeout (default: 10s)
    TTB_DB_WRITE_TIMEOUT                   Write timeout (default: 5s)

  Tracker Configuration:
    TTB_TICK_INTERVAL                      Display tick interval (default: 1s)
    TTB_POLL_INTERVAL                      Inactivity poll interval (default: 1s)
    TTB_IDLE_THRESHOLD                     Inactivity auto-stop threshold (default: 5m0s)

  Display Configuration:
    TTB_DISPLAY_CURRENCY                   Default billing currency (default: EUR)
    TTB_DISPLAY_DATE_FORMAT                Date format (default: 2006-01-02)

GETTING HELP:
  ttb [command] --help                     # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.applyFlagOverrides()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TTB_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TTB_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TTB_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TTB_DB_WRITE_TIMEOUT)")
	flags.Duration("tick-interval", 0, "Display tick interval (overrides TTB_TICK_INTERVAL)")
	flags.Duration("poll-interval", 0, "Inactivity poll interval (overrides TTB_POLL_INTERVAL)")
	flags.Duration("idle-threshold", 0, "Inactivity auto-stop threshold (overrides TTB_IDLE_THRESHOLD)")
	flags.String("currency", "", "Default billing currency (overrides TTB_DISPLAY_CURRENCY)")
}

// applyFlagOverrides applies command-line overrides to the configuration
func (r *RootCommand) applyFlagOverrides() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("db-dir") {
		if dir, err := flags.GetString("db-dir"); err == nil {
			r.config.Database.Dir = dir
		}
	}
	if flags.Changed("db-filename") {
		if filename, err := flags.GetString("db-filename"); err == nil {
			r.config.Database.Filename = filename
		}
	}
	if flags.Changed("db-query-timeout") {
		if d, err := flags.GetDuration("db-query-timeout"); err == nil && d > 0 {
			r.config.Database.QueryTimeout = d
		}
	}
	if flags.Changed("db-write-timeout") {
		if d, err := flags.GetDuration("db-write-timeout"); err == nil && d > 0 {
			r.config.Database.WriteTimeout = d
		}
	}
	if flags.Changed("tick-interval") {
		if d, err := flags.GetDuration("tick-interval"); err == nil && d > 0 {
			r.config.Tracker.TickInterval = d
		}
	}
	if flags.Changed("poll-interval") {
		if d, err := flags.GetDuration("poll-interval"); err == nil && d > 0 {
			r.config.Tracker.PollInterval = d
		}
	}
	if flags.Changed("idle-threshold") {
		if d, err := flags.GetDuration("idle-threshold"); err == nil && d > 0 {
			r.config.Tracker.IdleThreshold = d
		}
	}
	if flags.Changed("currency") {
		if code, err := flags.GetString("currency"); err == nil {
			if currency := domain.Currency(code); currency.IsValid() {
				r.config.Display.DefaultCurrency = currency
			}
		}
	}

	return r.config.Validate()
}

// addSubcommands registers all subcommands on the root
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.newTrackCommand())
	r.cmd.AddCommand(r.newTotalsCommand())
	r.cmd.AddCommand(r.newProjectsCommand())
	r.cmd.AddCommand(r.newRatesCommand())
	r.cmd.AddCommand(r.newSessionsCommand())
}
