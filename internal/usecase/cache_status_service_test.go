package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	cachestatusmock "github.com/riskibarqy/matchboard/internal/mocks/domain/cachestatus"
	matchmock "github.com/riskibarqy/matchboard/internal/mocks/domain/match"
	"github.com/riskibarqy/matchboard/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCacheStatusService_Get_NeverRefreshed(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	statusRepo := cachestatusmock.NewRepository(t)
	statusRepo.On("Latest", mock.Anything).Return(cachestatus.Status{}, false, nil).Once()
	matchRepo.On("CountLive", mock.Anything).Return(0, nil).Once()
	matchRepo.On("Count", mock.Anything).Return(0, nil).Once()

	got, err := NewCacheStatusService(matchRepo, statusRepo, nil).Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.LastUpdated)
	assert.Nil(t, got.Cache)
	assert.Empty(t, got.CacheType)
}

func TestCacheStatusService_Get_AfterRefresh(t *testing.T) {
	t.Parallel()

	last := time.Date(2025, 7, 2, 21, 30, 0, 0, time.UTC)
	matchRepo := matchmock.NewRepository(t)
	statusRepo := cachestatusmock.NewRepository(t)
	statusRepo.On("Latest", mock.Anything).Return(cachestatus.Status{
		CacheType:    cachestatus.TypeAPIFootballRefresh,
		LastUpdated:  last,
		TotalMatches: 5,
		APICallsMade: 6,
	}, true, nil).Once()
	matchRepo.On("CountLive", mock.Anything).Return(3, nil).Once()
	matchRepo.On("Count", mock.Anything).Return(5, nil).Once()

	store := cache.NewStore(time.Minute)
	got, err := NewCacheStatusService(matchRepo, statusRepo, store).Get(context.Background())
	require.NoError(t, err)

	require.NotNil(t, got.LastUpdated)
	assert.Equal(t, last, *got.LastUpdated)
	assert.Equal(t, 3, got.LiveMatches)
	assert.Equal(t, 5, got.TotalMatches)
	assert.Equal(t, 6, got.APICalls)
	assert.Equal(t, cachestatus.TypeAPIFootballRefresh, got.CacheType)
	require.NotNil(t, got.Cache)
}

func TestCacheStatusService_Get_CountError(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	statusRepo := cachestatusmock.NewRepository(t)
	boom := errors.New("db down")
	statusRepo.On("Latest", mock.Anything).Return(cachestatus.Status{}, false, nil).Once()
	matchRepo.On("CountLive", mock.Anything).Return(0, boom).Once()

	_, err := NewCacheStatusService(matchRepo, statusRepo, nil).Get(context.Background())
	assert.ErrorIs(t, err, boom)
}
