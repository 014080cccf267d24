package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

var tierColors = map[types.Priority]*color.Color{
	types.PriorityCritical: color.New(color.FgRed, color.Bold),
	types.PriorityHigh:     color.New(color.FgYellow),
	types.PriorityMedium:   color.New(color.FgCyan),
	types.PriorityLow:      color.New(color.FgWhite),
}

func cmdStatus() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync
	var hours int
	var perTier int

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:        "hours",
			Usage:       "Lookback window in hours",
			Value:       24,
			Destination: &hours,
		},
		&cli.IntFlag{
			Name:        "per-tier",
			Usage:       "Maximum items printed per priority tier",
			Value:       10,
			Destination: &perTier,
		},
	)

	return &cli.Command{
		Name:  "status",
		Usage: "Show what needs attention, grouped by priority",
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

			report, err := uc.Status.BuildReport(ctx, time.Duration(hours)*time.Hour)
			if err != nil {
				return err
			}

			renderReport(report, perTier)
			return nil
		},
	}
}

func renderReport(report *model.Report, perTier int) {
	byTier := report.ByPriority()
	total := 0

	for _, priority := range types.AllPriorities() {
		items := byTier[priority]
		if len(items) == 0 {
			continue
		}
		total += len(items)

		tierColors[priority].Printf("== %s (%d) ==\n", priority, len(items))
		shown := items
		if len(shown) > perTier {
			shown = shown[:perTier]
		}
		for _, item := range shown {
			fmt.Printf("  [#%s] %s (%s): %s\n",
				item.ChannelName, item.UserName,
				item.Timestamp.Format("Jan 2 15:04"), item.TextPreview)
			fmt.Printf("      %s\n", item.Link)
		}
		if len(items) > perTier {
			fmt.Printf("  ... and %d more\n", len(items)-perTier)
		}
		fmt.Println()
	}

	if total == 0 {
		color.New(color.FgGreen).Println("All clear, nothing needs attention.")
	}

	if len(report.Reminders) > 0 {
		color.New(color.FgMagenta).Printf("== Later (%d reminders) ==\n", len(report.Reminders))
		for _, r := range report.Reminders {
			due := "no due time"
			if !r.DueAt.IsZero() {
				due = r.DueAt.Format("Jan 2 15:04")
			}
			fmt.Printf("  - %s (%s)\n", r.Text, due)
		}
	}
}
