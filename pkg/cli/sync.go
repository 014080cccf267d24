package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdSync() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)

	return &cli.Command{
		Name:  "sync",
		Usage: "Run one discovery and message sync pass, then exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, uc, err := setup(ctx, &repoCfg, &slackCfg, &syncCfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Warn("failed to close repository", "error", err)
				}
			}()

			channels, err := uc.Sync.SyncChannels(ctx)
			if err != nil {
				return err
			}

			stats, err := uc.Sync.SyncAllMessages(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("synced %d channels: %d messages, %d thread replies, %d reaction changes, %d errors\n",
				channels, stats.Messages, stats.ThreadReplies, stats.ReactionChanges, stats.Errors)
			return nil
		},
	}
}
