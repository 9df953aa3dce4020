package cli

import (
	"fmt"

	"github.com/commitgate/commitgate/internal/adapters/outbound/config"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate .commitgate.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK (%d hooks)\n", len(cfg.Hooks))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Working tree whose configuration to validate")

	return cmd
}
