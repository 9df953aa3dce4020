package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/commitgate/commitgate/internal/adapters/outbound/config"
	"github.com/commitgate/commitgate/internal/adapters/outbound/gitinfo"
	"github.com/commitgate/commitgate/internal/adapters/outbound/logging"
	"github.com/commitgate/commitgate/internal/adapters/outbound/rewrite"
	"github.com/commitgate/commitgate/internal/adapters/outbound/scanner"
	"github.com/commitgate/commitgate/internal/adapters/outbound/tui"
	"github.com/commitgate/commitgate/internal/application"
	"github.com/commitgate/commitgate/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		path       string
		files      []string
		all        bool
		jsonOutput bool
		jobs       int
		timeout    time.Duration
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all configured hooks over the file set",
		Long: "Execute every configured hook over the target file set (default: all files under " +
			"version control) and exit non-zero if any hook fails, fixes files, or errors.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			runSvc := application.NewRunService(config.New(), rewrite.New(), logger)
			fileSvc := application.NewFileSetService(gitinfo.New(), scanner.New())

			fileSet, err := fileSvc.Resolve(path, files, all)
			if err != nil {
				return err
			}

			cfg, err := config.New().Load(path)
			if err != nil {
				return err
			}
			if jobs > 0 {
				cfg.Settings.Jobs = jobs
			}
			if timeout > 0 {
				cfg.Settings.HookTimeout = timeout
			}

			result, err := runSvc.RunWithConfig(cmd.Context(), path, fileSet, cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderRunJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunResult(result))
			}

			if result.Failed() {
				return fmt.Errorf("gate failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Working tree to run the gate in")
	cmd.Flags().StringSliceVar(&files, "files", nil, "Explicit file subset instead of the default file set")
	cmd.Flags().BoolVar(&all, "all", false, "Walk the tree instead of asking version control for the file set")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Concurrent checker workers (overrides config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-hook timeout (overrides config)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Debug logging on stderr")

	return cmd
}

func renderRunJSON(cmd *cobra.Command, result *domain.RunResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
