package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdContext() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync
	var limit int

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of related messages",
			Value:       10,
			Destination: &limit,
		},
	)

	return &cli.Command{
		Name:      "context",
		Usage:     "Find synced messages related to a message link",
		ArgsUsage: "<permalink>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			link := c.Args().First()
			if link == "" {
				return goerr.New("message link is required")
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

			results, err := uc.Search.FindContext(ctx, link, limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("message not synced yet or no related messages")
				return nil
			}

			renderResults(results)
			return nil
		},
	}
}
