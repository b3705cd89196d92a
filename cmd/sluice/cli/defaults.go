package cli

import (
	"github.com/spf13/cobra"

	"github.com/sluicedb/sluice/internal/config"
)

func newDefaultsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the bundled defaults document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.LoadDefaults()
			if err != nil {
				return err
			}
			return printOptions(cmd.OutOrStdout(), doc, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the document as JSON")

	return cmd
}
