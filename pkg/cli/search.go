package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdSearch() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync
	var limit int
	var localOnly bool

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of results",
			Value:       10,
			Destination: &limit,
		},
		&cli.BoolFlag{
			Name:        "local",
			Usage:       "Search only the local database, skip the Slack search API",
			Destination: &localOnly,
		},
	)

	return &cli.Command{
		Name:      "search",
		Usage:     "Search synced messages across all sources",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			if query == "" {
				return goerr.New("search query is required")
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

			sources := usecase.AllSearchSources()
			if localOnly {
				sources = []types.SearchSource{
					types.SearchSourceVector,
					types.SearchSourceText,
				}
			}

			results, err := uc.Search.Search(ctx, query, limit, sources)
			if err != nil {
				return err
			}

			renderResults(results)
			return nil
		},
	}
}

func renderResults(results []*model.SearchResult) {
	if len(results) == 0 {
		fmt.Println("no results")
		return
	}

	scoreColor := color.New(color.FgGreen)
	metaColor := color.New(color.FgHiBlack)

	for i, res := range results {
		scoreColor.Printf("%2d. [%.3f]", i+1, res.Score)
		fmt.Printf(" #%s %s: %s\n", res.ChannelName, res.UserName, res.Message.Text)
		metaColor.Printf("    %s (%s)\n", res.Link, res.Source)
	}
}
