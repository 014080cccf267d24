package interfaces

// Repository defines the interface for data persistence.
//
// Lookup convention: single-row getters return (nil, nil) when the row
// does not exist. Absence is a normal condition for this domain (cursor
// not yet created, user not yet cached) and is not an error.
type Repository interface {
	Channel() ChannelRepository
	User() UserRepository
	Message() MessageRepository
	Reaction() ReactionRepository
	SyncState() SyncStateRepository
	Reminder() ReminderRepository
	Embedding() EmbeddingRepository

	Close() error
}
