package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdReminders() *cli.Command {
	var repoCfg config.Repository
	var slackCfg config.Slack
	var syncCfg config.Sync

	flags := repoCfg.Flags()
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)

	return &cli.Command{
		Name:  "reminders",
		Usage: "Refresh the reminder cache and list pending reminders",
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

			pending, err := uc.Reminder.Refresh(ctx)
			if err != nil {
				return err
			}

			if len(pending) == 0 {
				fmt.Println("no pending reminders")
				return nil
			}
			for _, r := range pending {
				due := "no due time"
				if !r.DueAt.IsZero() {
					due = r.DueAt.Format("Jan 2 15:04")
				}
				marker := ""
				if r.Recurring {
					marker = " (recurring)"
				}
				fmt.Printf("- %s (%s)%s\n", r.Text, due, marker)
			}
			return nil
		},
	}
}
