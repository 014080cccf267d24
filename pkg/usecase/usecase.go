package usecase

import (
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
)

const (
	// DefaultFetchLimit caps how many history messages one channel sync
	// cycle pulls from the API
	DefaultFetchLimit = 200

	// DefaultChannelPause is the pause between channels during a sync
	// cycle, to stay under the Web API rate limits
	DefaultChannelPause = 200 * time.Millisecond

	// DefaultStatusLimit caps how many messages each status tier considers
	DefaultStatusLimit = 50
)

type UseCases struct {
	repo     interfaces.Repository
	slack    slacksvc.Service
	embedder interfaces.Embedder
	notifier interfaces.ReactionNotifier

	fetchLimit   int
	channelPause time.Duration
	statusLimit  int

	Sync      *SyncUseCase
	Status    *StatusUseCase
	Search    *SearchUseCase
	Reminder  *ReminderUseCase
	Embedding *EmbeddingUseCase
}

type Option func(*UseCases)

// WithEmbedder sets the embedding generator used by the search and
// backfill usecases
func WithEmbedder(embedder interfaces.Embedder) Option {
	return func(uc *UseCases) {
		uc.embedder = embedder
	}
}

// WithNotifier sets the collaborator invoked on reaction changes
func WithNotifier(notifier interfaces.ReactionNotifier) Option {
	return func(uc *UseCases) {
		uc.notifier = notifier
	}
}

// WithFetchLimit overrides the per-channel history cap per sync cycle
func WithFetchLimit(limit int) Option {
	return func(uc *UseCases) {
		uc.fetchLimit = limit
	}
}

// WithChannelPause overrides the pause between channels during sync
func WithChannelPause(pause time.Duration) Option {
	return func(uc *UseCases) {
		uc.channelPause = pause
	}
}

// WithStatusLimit overrides the per-tier message cap of status reports
func WithStatusLimit(limit int) Option {
	return func(uc *UseCases) {
		uc.statusLimit = limit
	}
}

func New(repo interfaces.Repository, slackService slacksvc.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:         repo,
		slack:        slackService,
		fetchLimit:   DefaultFetchLimit,
		channelPause: DefaultChannelPause,
		statusLimit:  DefaultStatusLimit,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Sync = newSyncUseCase(uc)
	uc.Status = newStatusUseCase(uc)
	uc.Search = newSearchUseCase(uc)
	uc.Reminder = newReminderUseCase(uc)
	uc.Embedding = newEmbeddingUseCase(uc)

	return uc
}
