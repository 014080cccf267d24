package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/cli/config"
	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/service/embedding"
	"github.com/cybergrind/slack-assistant/pkg/service/notify"
	"github.com/cybergrind/slack-assistant/pkg/usecase"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

// setup builds the repository, the authenticated Slack service and the
// usecases. The returned repository must be closed by the caller.
func setup(ctx context.Context, repoCfg *config.Repository, slackCfg *config.Slack, syncCfg *config.Sync) (interfaces.Repository, *usecase.UseCases, error) {
	if err := syncCfg.Load(); err != nil {
		return nil, nil, err
	}

	repo, err := repoCfg.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}

	slackService, err := slackCfg.Configure()
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	identity, err := slackService.Authenticate(ctx)
	if err != nil {
		_ = repo.Close()
		return nil, nil, goerr.Wrap(err, "Slack authentication failed")
	}
	logging.Default().Info("authenticated",
		"user", identity.UserName,
		"user_id", identity.UserID,
		"team_id", identity.TeamID)

	opts := []usecase.Option{
		usecase.WithEmbedder(embedding.NewStub()),
		usecase.WithNotifier(notify.NewLogNotifier()),
	}
	opts = append(opts, syncCfg.UseCaseOptions()...)

	return repo, usecase.New(repo, slackService, opts...), nil
}
