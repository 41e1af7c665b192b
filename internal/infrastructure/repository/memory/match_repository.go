package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchboard/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items []match.Match
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	return &MatchRepository{items: cloneMatches(items)}
}

func (r *MatchRepository) ListLive(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if item.IsLive {
			out = append(out, item.Clone())
		}
	}
	match.SortLive(out)
	return out, nil
}

func (r *MatchRepository) ListByKickoff(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := cloneMatches(r.items)
	match.SortByKickoff(out)
	return out, nil
}

func (r *MatchRepository) ReplaceAll(_ context.Context, items []match.Match) error {
	copied := cloneMatches(items)

	r.mu.Lock()
	r.items = copied
	r.mu.Unlock()
	return nil
}

func (r *MatchRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *MatchRepository) CountLive(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, item := range r.items {
		if item.IsLive {
			count++
		}
	}
	return count, nil
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
