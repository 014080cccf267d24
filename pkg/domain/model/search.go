package model

import (
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// SearchResult is one scored hit from a search source. Score is in
// [0, 1] with source-specific semantics; scores from different sources
// are not directly comparable.
type SearchResult struct {
	Message     *Message
	ChannelName string
	UserName    string
	Score       float64
	Link        string
	Source      types.SearchSource
}

// ScoredMessage pairs a stored message with a storage-computed relevance
// value (e.g. vector similarity)
type ScoredMessage struct {
	Message *Message
	Score   float64
}
