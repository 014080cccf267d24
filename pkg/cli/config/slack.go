package config

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
)

// Slack holds CLI flags for Slack API configuration
type Slack struct {
	token string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-user-token",
			Usage:       "Slack User OAuth Token (xoxp-...)",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_ASSISTANT_SLACK_USER_TOKEN", "SLACK_USER_TOKEN"),
			Destination: &x.token,
		},
	}
}

// LogValue keeps the token itself out of the logs
func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
	)
}

// Validate checks the token looks like a user token. The sync engine
// reads DMs and reminders, which bot tokens cannot do.
func (x *Slack) Validate() error {
	if x.token == "" {
		return goerr.New("slack-user-token is required")
	}
	if !strings.HasPrefix(x.token, "xoxp-") {
		return goerr.New("slack-user-token must be a user token (xoxp-...)")
	}
	return nil
}

// Configure creates the Slack service from the configured token
func (x *Slack) Configure() (slacksvc.Service, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return slacksvc.New(x.token)
}
