package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
)

type LineupRepository struct {
	mu        sync.RWMutex
	byFixture map[int64][]lineup.Lineup
}

func NewLineupRepository(items []lineup.Lineup) *LineupRepository {
	r := &LineupRepository{}
	r.byFixture = groupLineups(items)
	return r
}

func (r *LineupRepository) ListByFixture(_ context.Context, fixtureID int64) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byFixture[fixtureID]
	out := make([]lineup.Lineup, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (r *LineupRepository) ReplaceAll(_ context.Context, items []lineup.Lineup) error {
	grouped := groupLineups(items)

	r.mu.Lock()
	r.byFixture = grouped
	r.mu.Unlock()
	return nil
}

func (r *LineupRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, items := range r.byFixture {
		total += len(items)
	}
	return total, nil
}

func groupLineups(items []lineup.Lineup) map[int64][]lineup.Lineup {
	out := make(map[int64][]lineup.Lineup)
	for _, item := range items {
		out[item.FixtureID] = append(out[item.FixtureID], item.Clone())
	}
	return out
}
