package memory

import (
	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository backend used by tests and for
// running the assistant without a database
type Memory struct {
	channels   *channelRepository
	users      *userRepository
	messages   *messageRepository
	syncStates *syncStateRepository
	reminders  *reminderRepository
	embeddings *embeddingRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	channelRepo := newChannelRepository()
	messageRepo := newMessageRepository(channelRepo)

	return &Memory{
		channels:   channelRepo,
		users:      newUserRepository(),
		messages:   messageRepo,
		syncStates: newSyncStateRepository(),
		reminders:  newReminderRepository(),
		embeddings: newEmbeddingRepository(messageRepo),
	}
}

func (m *Memory) Channel() interfaces.ChannelRepository {
	return m.channels
}

func (m *Memory) User() interfaces.UserRepository {
	return m.users
}

func (m *Memory) Message() interfaces.MessageRepository {
	return m.messages
}

func (m *Memory) Reaction() interfaces.ReactionRepository {
	return m.messages.reactions()
}

func (m *Memory) SyncState() interfaces.SyncStateRepository {
	return m.syncStates
}

func (m *Memory) Reminder() interfaces.ReminderRepository {
	return m.reminders
}

func (m *Memory) Embedding() interfaces.EmbeddingRepository {
	return m.embeddings
}

func (m *Memory) Close() error {
	return nil
}
