package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	rootCmd := newRootCmd(version, commit, date)
	return rootCmd.Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sluice",
		Short: "Resolve database configuration and open connections",
		Long: `Sluice validates a raw database configuration file against a bundled
defaults document, fills in every omitted field, and constructs a connected
database client for the configured dialect.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newConnectCmd())
	cmd.AddCommand(newDefaultsCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

// newLogger builds the CLI logger; library packages return errors and never
// log themselves.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
