package cli

import (
	"encoding/json"
	"fmt"

	"github.com/commitgate/commitgate/internal/adapters/outbound/config"
	"github.com/commitgate/commitgate/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(path)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHookList(cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Working tree whose configuration to list")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
