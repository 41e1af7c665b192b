package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/platform/cache"
)

// CacheStatusView reports what the last refresh stored. LastUpdated is nil before the
// first refresh.
type CacheStatusView struct {
	CacheType    string
	LastUpdated  *time.Time
	LiveMatches  int
	TotalMatches int
	APICalls     int
	Cache        *cache.Stats
}

type CacheStatusService struct {
	matchRepo  match.Repository
	statusRepo cachestatus.Repository
	store      *cache.Store
}

// NewCacheStatusService accepts a nil store when read caching is disabled.
func NewCacheStatusService(matchRepo match.Repository, statusRepo cachestatus.Repository, store *cache.Store) *CacheStatusService {
	return &CacheStatusService{
		matchRepo:  matchRepo,
		statusRepo: statusRepo,
		store:      store,
	}
}

func (s *CacheStatusService) Get(ctx context.Context) (CacheStatusView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CacheStatusService.Get")
	defer span.End()

	status, exists, err := s.statusRepo.Latest(ctx)
	if err != nil {
		recordSpanError(span, err)
		return CacheStatusView{}, fmt.Errorf("get latest cache status: %w", err)
	}
	live, err := s.matchRepo.CountLive(ctx)
	if err != nil {
		recordSpanError(span, err)
		return CacheStatusView{}, fmt.Errorf("count live matches: %w", err)
	}
	total, err := s.matchRepo.Count(ctx)
	if err != nil {
		recordSpanError(span, err)
		return CacheStatusView{}, fmt.Errorf("count matches: %w", err)
	}

	view := CacheStatusView{
		LiveMatches:  live,
		TotalMatches: total,
	}
	if exists {
		lastUpdated := status.LastUpdated
		view.CacheType = status.CacheType
		view.LastUpdated = &lastUpdated
		view.APICalls = status.APICallsMade
	}
	if s.store != nil {
		stats := s.store.Stats()
		view.Cache = &stats
	}
	return view, nil
}
