package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchboard/internal/domain/formation"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/infrastructure/repository/memory"
	lineupmock "github.com/riskibarqy/matchboard/internal/mocks/domain/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLineupService_GetByFixture(t *testing.T) {
	t.Parallel()

	service := NewLineupService(memory.NewLineupRepository(memory.SeedLineups()))

	items, err := service.GetByFixture(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Real Madrid", items[0].TeamName)
	assert.Equal(t, "Barcelona", items[1].TeamName)
}

func TestLineupService_GetByFixture_Unavailable(t *testing.T) {
	t.Parallel()

	service := NewLineupService(memory.NewLineupRepository(memory.SeedLineups()))

	_, err := service.GetByFixture(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "lineup not available for this match")

	_, err = service.GetByFixture(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLineupService_GetByFixture_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := lineupmock.NewRepository(t)
	boom := errors.New("db down")
	repo.On("ListByFixture", mock.Anything, int64(9)).Return(nil, boom).Once()

	_, err := NewLineupService(repo).GetByFixture(context.Background(), 9)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLineupService_LayoutByFixture_FormationMode(t *testing.T) {
	t.Parallel()

	service := NewLineupService(memory.NewLineupRepository(memory.SeedLineups()))

	got, err := service.LayoutByFixture(context.Background(), 1, formation.ModeFormation)
	require.NoError(t, err)
	require.Len(t, got, 2)

	home := got[0]
	assert.Equal(t, "Real Madrid", home.TeamName)
	assert.Equal(t, formation.Name433, home.Result.ResolvedFormation)
	require.Len(t, home.Result.Placements, 11)
	assert.Equal(t, "Thibaut Courtois", home.Result.Placements[0].Player.Name)
	assert.Equal(t, formation.Coordinate{X: 50, Y: 10}, home.Result.Placements[0].Coordinate)
	assert.Equal(t, "Rodrygo", home.Result.Placements[10].Player.Name)
	assert.Equal(t, formation.Coordinate{X: 80, Y: 80}, home.Result.Placements[10].Coordinate)

	away := got[1]
	assert.Equal(t, formation.Name4231, away.Result.ResolvedFormation)
	assert.Equal(t, "Memphis Depay", away.Result.Placements[10].Player.Name)
	assert.Equal(t, formation.Coordinate{X: 50, Y: 85}, away.Result.Placements[10].Coordinate)
}

func TestLineupService_LayoutByFixture_GridMode(t *testing.T) {
	t.Parallel()

	service := NewLineupService(memory.NewLineupRepository(memory.SeedLineups()))

	got, err := service.LayoutByFixture(context.Background(), 2, formation.ModeGrid)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, team := range got {
		assert.Equal(t, formation.ModeGrid, team.Result.Mode)
		require.Len(t, team.Result.Placements, 11)
		assert.Empty(t, team.Result.Unplaced)
		assert.Equal(t, formation.Coordinate{X: 10, Y: 10}, team.Result.Placements[0].Coordinate)
	}
}

func TestLineupService_LayoutLineups(t *testing.T) {
	t.Parallel()

	service := NewLineupService(memory.NewLineupRepository(nil))

	got, err := service.LayoutLineups(context.Background(), []lineup.Lineup{
		{TeamName: "Sunday League", Formation: "2-2-6", Players: []lineup.Player{{Number: 1, Name: "Keeper"}}},
	}, formation.ModeFormation)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, formation.NameDefault, got[0].Result.ResolvedFormation)
	assert.Equal(t, formation.DefaultTemplate()[0], got[0].Result.Placements[0].Coordinate)

	_, err = service.LayoutLineups(context.Background(), nil, formation.ModeFormation)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.LayoutLineups(context.Background(), []lineup.Lineup{{TeamName: " "}}, formation.ModeFormation)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
