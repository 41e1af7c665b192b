package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/match"
	matchmock "github.com/riskibarqy/matchboard/internal/mocks/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatchService_ListLive_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo)

	want := []match.Match{
		{FixtureID: 2, HomeTeam: "Manchester City", AwayTeam: "Liverpool", IsLive: true},
	}
	repo.On("ListLive", mock.Anything).Return(want, nil).Once()

	got, err := service.ListLive(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMatchService_ListToday_WrapsRepositoryError(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo)
	boom := errors.New("db down")

	repo.On("ListByKickoff", mock.Anything).Return(nil, boom).Once()

	_, err := service.ListToday(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list matches by kickoff")
}

func TestMatchService_ListToday_PassesThroughOrder(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo)
	base := time.Date(2025, 7, 2, 19, 45, 0, 0, time.UTC)

	want := []match.Match{
		{FixtureID: 5, KickoffAt: base},
		{FixtureID: 1, KickoffAt: base.Add(15 * time.Minute)},
	}
	repo.On("ListByKickoff", mock.Anything).Return(want, nil).Once()

	got, err := service.ListToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 1}, []int64{got[0].FixtureID, got[1].FixtureID})
}
