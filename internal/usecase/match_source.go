package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
)

// MatchSource supplies the matches and lineups a refresh stores.
type MatchSource interface {
	// Name is the human label used in refresh messages.
	Name() string
	CacheType() string
	FetchMatches(ctx context.Context) ([]match.Match, error)
	// FetchLineups returns no lineups and no error when the fixture has none yet.
	FetchLineups(ctx context.Context, fixtureID int64) ([]lineup.Lineup, error)
}

// apiCallCounter is implemented by sources that spend provider quota.
type apiCallCounter interface {
	APICalls() int64
}

// StaticMatchSource serves a fixed data set and makes no outbound calls.
type StaticMatchSource struct {
	matches   []match.Match
	byFixture map[int64][]lineup.Lineup
}

func NewStaticMatchSource(matches []match.Match, lineups []lineup.Lineup) *StaticMatchSource {
	byFixture := make(map[int64][]lineup.Lineup)
	for _, item := range lineups {
		byFixture[item.FixtureID] = append(byFixture[item.FixtureID], item.Clone())
	}

	copied := make([]match.Match, 0, len(matches))
	for _, item := range matches {
		copied = append(copied, item.Clone())
	}
	sort.SliceStable(copied, func(i, j int) bool { return copied[i].FixtureID < copied[j].FixtureID })

	return &StaticMatchSource{matches: copied, byFixture: byFixture}
}

func (s *StaticMatchSource) Name() string {
	return "static data"
}

func (s *StaticMatchSource) CacheType() string {
	return cachestatus.TypeStaticRefresh
}

func (s *StaticMatchSource) FetchMatches(_ context.Context) ([]match.Match, error) {
	out := make([]match.Match, 0, len(s.matches))
	for _, item := range s.matches {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (s *StaticMatchSource) FetchLineups(_ context.Context, fixtureID int64) ([]lineup.Lineup, error) {
	items := s.byFixture[fixtureID]
	out := make([]lineup.Lineup, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out, nil
}
