package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/memory"
	lineupmock "github.com/riskibarqy/matchboard/internal/mocks/domain/lineup"
	matchmock "github.com/riskibarqy/matchboard/internal/mocks/domain/match"
	basecache "github.com/riskibarqy/matchboard/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CachesUntilReplaceAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	first := []match.Match{{FixtureID: 2, IsLive: true}}
	next.On("ListLive", mock.Anything).Return(first, nil).Once()

	got, err := repo.ListLive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = repo.ListLive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	next.On("ReplaceAll", mock.Anything, []match.Match(nil)).Return(nil).Once()
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	next.On("ListLive", mock.Anything).Return([]match.Match{}, nil).Once()
	got, err = repo.ListLive(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	home := 1
	inner := memory.NewMatchRepository([]match.Match{{FixtureID: 1, HomeScore: &home}})
	repo := NewMatchRepository(inner, basecache.NewStore(time.Minute))

	got, err := repo.ListByKickoff(ctx)
	require.NoError(t, err)
	*got[0].HomeScore = 9
	got[0].HomeTeam = "mutated"

	again, err := repo.ListByKickoff(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *again[0].HomeScore)
	assert.Empty(t, again[0].HomeTeam)
}

func TestMatchRepository_CountsAreCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := matchmock.NewRepository(t)
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	next.On("Count", mock.Anything).Return(5, nil).Once()
	next.On("CountLive", mock.Anything).Return(3, nil).Once()

	for i := 0; i < 3; i++ {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		live, err := repo.CountLive(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, live)
	}
}

func TestLineupRepository_InvalidatesOnReplaceAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := lineupmock.NewRepository(t)
	repo := NewLineupRepository(next, basecache.NewStore(time.Minute))

	stored := []lineup.Lineup{{FixtureID: 1, TeamName: "Real Madrid"}}
	next.On("ListByFixture", mock.Anything, int64(1)).Return(stored, nil).Twice()
	next.On("ReplaceAll", mock.Anything, stored).Return(nil).Once()

	_, err := repo.ListByFixture(ctx, 1)
	require.NoError(t, err)
	_, err = repo.ListByFixture(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceAll(ctx, stored))

	got, err := repo.ListByFixture(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCacheStatusRepository_UpsertInvalidatesLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCacheStatusRepository(memory.NewCacheStatusRepository(), basecache.NewStore(time.Minute))

	_, exists, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	now := time.Date(2025, 7, 2, 21, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, cachestatus.Status{CacheType: cachestatus.TypeStaticRefresh, LastUpdated: now, TotalMatches: 5}))

	got, exists, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, 5, got.TotalMatches)
}
