package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdEmbed() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync
	var batch int

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:        "batch",
			Usage:       "Maximum number of messages to embed in one run",
			Value:       100,
			Destination: &batch,
		},
	)

	return &cli.Command{
		Name:  "embed",
		Usage: "Backfill embedding vectors and report coverage",
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

			done, err := uc.Embedding.Backfill(ctx, batch)
			if errors.Is(err, interfaces.ErrEmbeddingUnavailable) {
				fmt.Println("embedding generation is not configured, skipping backfill")
			} else if err != nil {
				return err
			} else {
				fmt.Printf("embedded %d messages\n", done)
			}

			stats, err := uc.Embedding.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("coverage: %d/%d messages (%.1f%%)\n",
				stats.EmbeddedMessages, stats.TotalMessages, stats.Coverage())
			return nil
		},
	}
}
