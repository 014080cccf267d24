package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cybergrind/slack-assistant/pkg/domain/interfaces"
	"github.com/cybergrind/slack-assistant/pkg/domain/model"
	"github.com/cybergrind/slack-assistant/pkg/domain/types"
	slacksvc "github.com/cybergrind/slack-assistant/pkg/service/slack"
	"github.com/cybergrind/slack-assistant/pkg/utils/logging"
)

// SearchUseCase aggregates results from the vector, local text and
// remote Slack search sources. A failing source degrades the result
// set; it never fails the whole search.
type SearchUseCase struct {
	repo     interfaces.Repository
	slack    slacksvc.Service
	embedder interfaces.Embedder
}

func newSearchUseCase(uc *UseCases) *SearchUseCase {
	return &SearchUseCase{
		repo:     uc.repo,
		slack:    uc.slack,
		embedder: uc.embedder,
	}
}

// AllSearchSources is the default source set, in merge precedence order
func AllSearchSources() []types.SearchSource {
	return []types.SearchSource{
		types.SearchSourceVector,
		types.SearchSourceText,
		types.SearchSourceSlack,
	}
}

// Search queries the given sources, merges by score and deduplicates by
// message identity, keeping the earliest (highest precedence) hit
func (u *SearchUseCase) Search(ctx context.Context, query string, limit int, sources []types.SearchSource) ([]*model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, goerr.New("search query is empty")
	}

	var merged []*model.SearchResult
	for _, source := range sources {
		switch source {
		case types.SearchSourceVector:
			merged = append(merged, u.searchVector(ctx, query, limit)...)
		case types.SearchSourceText:
			merged = append(merged, u.searchText(ctx, query, limit)...)
		case types.SearchSourceSlack:
			merged = append(merged, u.searchRemote(ctx, query, limit)...)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	seen := map[string]struct{}{}
	var out []*model.SearchResult
	for _, res := range merged {
		key := res.Message.ChannelID.String() + ":" + res.Message.TS.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, res)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// FindContext resolves a permalink to a locally synced message and
// searches for related messages using its text. The remote source is
// excluded so the result reflects the local corpus. An unknown link or
// unsynced message yields an empty result, not an error.
func (u *SearchUseCase) FindContext(ctx context.Context, link string, limit int) ([]*model.SearchResult, error) {
	channelID, ts, ok := slacksvc.ParseMessageLink(link)
	if !ok {
		return nil, goerr.New("unrecognized message link", goerr.V("link", link))
	}

	msg, err := u.repo.Message().Get(ctx, channelID, ts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up linked message")
	}
	if msg == nil || strings.TrimSpace(msg.Text) == "" {
		return nil, nil
	}

	return u.Search(ctx, msg.Text, limit, []types.SearchSource{
		types.SearchSourceVector,
		types.SearchSourceText,
	})
}

func (u *SearchUseCase) searchVector(ctx context.Context, query string, limit int) []*model.SearchResult {
	if u.embedder == nil {
		return nil
	}
	logger := logging.From(ctx)

	vector, err := u.embedder.Embed(ctx, query)
	if err != nil {
		if !errors.Is(err, interfaces.ErrEmbeddingUnavailable) {
			logger.Warn("query embedding failed", "error", err)
		}
		return nil
	}

	scored, err := u.repo.Embedding().SearchSimilar(ctx, vector, limit)
	if err != nil {
		logger.Warn("vector search failed", "error", err)
		return nil
	}

	var out []*model.SearchResult
	for _, sm := range scored {
		out = append(out, u.buildResult(ctx, sm.Message, sm.Score, types.SearchSourceVector))
	}
	return out
}

func (u *SearchUseCase) searchText(ctx context.Context, query string, limit int) []*model.SearchResult {
	msgs, err := u.repo.Message().SearchText(ctx, query, limit)
	if err != nil {
		logging.From(ctx).Warn("text search failed", "error", err)
		return nil
	}

	var out []*model.SearchResult
	for _, msg := range msgs {
		out = append(out, u.buildResult(ctx, msg, textScore(msg.Text, query), types.SearchSourceText))
	}
	return out
}

func (u *SearchUseCase) searchRemote(ctx context.Context, query string, limit int) []*model.SearchResult {
	results, err := u.slack.SearchMessages(ctx, query, limit)
	if err != nil {
		logging.From(ctx).Warn("remote search failed", "error", err)
		return nil
	}
	return results
}

func (u *SearchUseCase) buildResult(ctx context.Context, msg *model.Message, score float64, source types.SearchSource) *model.SearchResult {
	res := &model.SearchResult{
		Message:     msg,
		ChannelName: msg.ChannelID.String(),
		UserName:    msg.UserID.String(),
		Score:       score,
		Link:        u.slack.MessageLink(msg.ChannelID, msg.TS, msg.ThreadTS),
		Source:      source,
	}

	if ch, err := u.repo.Channel().Get(ctx, msg.ChannelID); err == nil && ch != nil {
		res.ChannelName = ch.DisplayName()
	}
	if msg.UserID != "" {
		if user, err := u.repo.User().Get(ctx, msg.UserID); err == nil && user != nil {
			res.UserName = user.BestName()
		}
	}
	return res
}

// textScore ranks a substring hit by how early it appears: a match at
// the start of the text scores 1.0, later matches score lower, and a
// hit without a resolvable position gets the 0.5 floor
func textScore(text, query string) float64 {
	if len(text) == 0 {
		return 0.5
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(query))
	if idx < 0 {
		return 0.5
	}
	return 1.0 - float64(idx)/float64(len(text))
}
