package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the PostgreSQL schema",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.ConfigurePostgres(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Warn("failed to close repository", "error", err)
				}
			}()

			if err := repo.Migrate(ctx); err != nil {
				return err
			}

			fmt.Println("schema is up to date")
			return nil
		},
	}
}
