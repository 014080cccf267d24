package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/service/worker"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdDaemon() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)

	return &cli.Command{
		Name:  "daemon",
		Usage: "Run the sync loop until interrupted",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := syncCfg.Validate(); err != nil {
				return err
			}

			repo, uc, err := setup(ctx, &repoCfg, &slackCfg, &syncCfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Warn("failed to close repository", "error", err)
				}
			}()

			logging.Default().Info("daemon starting", "slack", slackCfg, "sync", syncCfg)

			poller := worker.NewPoller(uc, syncCfg.Interval(), syncCfg.PollerOptions()...)
			if err := poller.Start(ctx); err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logging.Default().Info("signal received, shutting down", "signal", sig.String())

			poller.Stop()
			return nil
		},
	}
}
