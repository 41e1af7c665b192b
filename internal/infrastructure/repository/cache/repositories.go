package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	basecache "github.com/riskibarqy/matchboard/internal/platform/cache"
)

const (
	matchKeyPrefix       = "match:"
	matchLiveKey         = "match:live"
	matchKickoffKey      = "match:kickoff"
	matchCountKey        = "match:count"
	matchCountLiveKey    = "match:count:live"
	lineupKeyPrefix      = "lineup:"
	lineupCountKey       = "lineup:count"
	cacheStatusLatestKey = "cache-status:latest"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListLive(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, matchLiveKey, r.next.ListLive)
}

func (r *MatchRepository) ListByKickoff(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, matchKickoffKey, r.next.ListByKickoff)
}

func (r *MatchRepository) ReplaceAll(ctx context.Context, items []match.Match) error {
	if err := r.next.ReplaceAll(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, matchKeyPrefix)
	return nil
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	return loadCount(ctx, r.cache, matchCountKey, r.next.Count)
}

func (r *MatchRepository) CountLive(ctx context.Context) (int, error) {
	return loadCount(ctx, r.cache, matchCountLiveKey, r.next.CountLive)
}

func (r *MatchRepository) list(ctx context.Context, key string, load func(context.Context) ([]match.Match, error)) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

type LineupRepository struct {
	next  lineup.Repository
	cache *basecache.Store
}

func NewLineupRepository(next lineup.Repository, cache *basecache.Store) *LineupRepository {
	return &LineupRepository{next: next, cache: cache}
}

func (r *LineupRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]lineup.Lineup, error) {
	key := lineupKeyPrefix + "fixture:" + strconv.FormatInt(fixtureID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByFixture(ctx, fixtureID)
		if err != nil {
			return nil, err
		}
		return cloneLineups(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]lineup.Lineup)
	return cloneLineups(items), nil
}

func (r *LineupRepository) ReplaceAll(ctx context.Context, items []lineup.Lineup) error {
	if err := r.next.ReplaceAll(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, lineupKeyPrefix)
	return nil
}

func (r *LineupRepository) Count(ctx context.Context) (int, error) {
	return loadCount(ctx, r.cache, lineupCountKey, r.next.Count)
}

type CacheStatusRepository struct {
	next  cachestatus.Repository
	cache *basecache.Store
}

func NewCacheStatusRepository(next cachestatus.Repository, cache *basecache.Store) *CacheStatusRepository {
	return &CacheStatusRepository{next: next, cache: cache}
}

func (r *CacheStatusRepository) Latest(ctx context.Context) (cachestatus.Status, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, cacheStatusLatestKey, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Latest(ctx)
		if err != nil {
			return nil, err
		}
		return cachedStatus{value: item, exists: exists}, nil
	})
	if err != nil {
		return cachestatus.Status{}, false, err
	}

	cached, _ := v.(cachedStatus)
	return cached.value, cached.exists, nil
}

func (r *CacheStatusRepository) Upsert(ctx context.Context, status cachestatus.Status) error {
	if err := r.next.Upsert(ctx, status); err != nil {
		return err
	}
	r.cache.Delete(ctx, cacheStatusLatestKey)
	return nil
}

type cachedStatus struct {
	value  cachestatus.Status
	exists bool
}

func loadCount(ctx context.Context, store *basecache.Store, key string, load func(context.Context) (int, error)) (int, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

func cloneLineups(items []lineup.Lineup) []lineup.Lineup {
	out := make([]lineup.Lineup, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
