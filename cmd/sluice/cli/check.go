package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sluicedb/sluice/internal/config"
)

func newCheckCmd() *cobra.Command {
	var (
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a configuration file and print the resolved options",
		Long: `Validate a raw configuration file against the bundled defaults document.
Every omitted field is filled in from the defaults; the fully resolved
options are printed on success.`,
		Example: `  sluice check -f sluice.yaml
  sluice check -f sluice.json --json
  sluice check  # resolve the bundled defaults alone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, file, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Raw configuration file (JSON or YAML)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output resolved options as JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, file string, jsonOutput bool) error {
	raw, err := loadRawConfig(file)
	if err != nil {
		return err
	}

	cfg, err := config.ModelFrom(raw)
	if err != nil {
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) && cfgErr.Kind == config.KindDefaultConfigInvalid {
			return fmt.Errorf("bundled defaults are corrupt, reinstall sluice: %w", err)
		}
		return err
	}

	return printOptions(cmd.OutOrStdout(), redactPassword(cfg.Options()), jsonOutput)
}
