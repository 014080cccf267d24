package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/cybergrind/slack-assistant/pkg/domain/model"
)

type storedEmbedding struct {
	vector []float32
	model  string
}

type embeddingRepository struct {
	mu       sync.RWMutex
	messages *messageRepository
	vectors  map[int64]storedEmbedding
}

func newEmbeddingRepository(messages *messageRepository) *embeddingRepository {
	return &embeddingRepository{
		messages: messages,
		vectors:  make(map[int64]storedEmbedding),
	}
}

func (r *embeddingRepository) Upsert(ctx context.Context, messageID int64, vector []float32, embeddingModel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vecCopy := make([]float32, len(vector))
	copy(vecCopy, vector)
	r.vectors[messageID] = storedEmbedding{vector: vecCopy, model: embeddingModel}
	return nil
}

func (r *embeddingRepository) SearchSimilar(ctx context.Context, vector []float32, limit int) ([]*model.ScoredMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.ScoredMessage
	for id, stored := range r.vectors {
		msg, err := r.messages.GetByID(ctx, id)
		if err != nil || msg == nil {
			continue
		}
		out = append(out, &model.ScoredMessage{
			Message: msg,
			Score:   cosineSimilarity(vector, stored.vector),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *embeddingRepository) ListMissing(ctx context.Context, limit int) ([]*model.Message, error) {
	r.mu.RLock()
	embedded := make(map[int64]bool, len(r.vectors))
	for id := range r.vectors {
		embedded[id] = true
	}
	r.mu.RUnlock()

	return r.messages.collect(limit, func(m *model.Message) bool {
		return m.Text != "" && !embedded[m.ID]
	}), nil
}

func (r *embeddingRepository) Stats(ctx context.Context) (*model.EmbeddingStats, error) {
	r.messages.mu.RLock()
	total := int64(len(r.messages.byID))
	r.messages.mu.RUnlock()

	r.mu.RLock()
	embedded := int64(len(r.vectors))
	r.mu.RUnlock()

	return &model.EmbeddingStats{
		TotalMessages:    total,
		EmbeddedMessages: embedded,
	}, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
