package cli

import (
	"fmt"
	"time"

	"github.com/commitgate/commitgate/internal/adapters/outbound/config"
	"github.com/commitgate/commitgate/internal/adapters/outbound/gitinfo"
	"github.com/commitgate/commitgate/internal/adapters/outbound/logging"
	"github.com/commitgate/commitgate/internal/adapters/outbound/rewrite"
	"github.com/commitgate/commitgate/internal/adapters/outbound/scanner"
	"github.com/commitgate/commitgate/internal/adapters/outbound/tui"
	"github.com/commitgate/commitgate/internal/adapters/outbound/watcher"
	"github.com/commitgate/commitgate/internal/application"
	"github.com/commitgate/commitgate/internal/domain"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		path     string
		debounce time.Duration
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rerun the gate whenever the working tree changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			runSvc := application.NewRunService(config.New(), rewrite.New(), logger)
			fileSvc := application.NewFileSetService(gitinfo.New(), scanner.New())
			watchSvc := application.NewWatchService(runSvc, fileSvc, watcher.New(), logger)

			return watchSvc.Watch(cmd.Context(), path, debounce, func(result *domain.RunResult) {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunResult(result))
				fmt.Fprintln(cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Working tree to watch")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Quiet period before a rerun")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Debug logging on stderr")

	return cmd
}
