package model

// EmbeddingStats reports embedding coverage over the message corpus
type EmbeddingStats struct {
	TotalMessages    int64
	EmbeddedMessages int64
}

// Coverage returns the embedded fraction in percent
func (s *EmbeddingStats) Coverage() float64 {
	if s.TotalMessages == 0 {
		return 0
	}
	return float64(s.EmbeddedMessages) / float64(s.TotalMessages) * 100
}
