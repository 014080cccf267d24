package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	// a missing .env file is fine; explicit env vars win either way
	_ = godotenv.Load()

	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "slack-assistant",
		Usage:   "Incremental Slack sync with status, search and reminders",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting slack-assistant", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdDaemon(),
			cmdSync(),
			cmdStatus(),
			cmdSearch(),
			cmdContext(),
			cmdReminders(),
			cmdEmbed(),
			cmdMigrate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
