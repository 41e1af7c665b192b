package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
)

type CacheStatusRepository struct {
	mu     sync.RWMutex
	byType map[string]cachestatus.Status
}

func NewCacheStatusRepository() *CacheStatusRepository {
	return &CacheStatusRepository{byType: make(map[string]cachestatus.Status)}
}

func (r *CacheStatusRepository) Latest(_ context.Context) (cachestatus.Status, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest cachestatus.Status
		found  bool
	)
	for _, item := range r.byType {
		if !found || item.LastUpdated.After(latest.LastUpdated) {
			latest = item
			found = true
		}
	}
	return latest, found, nil
}

func (r *CacheStatusRepository) Upsert(_ context.Context, status cachestatus.Status) error {
	status.CacheType = strings.TrimSpace(status.CacheType)

	r.mu.Lock()
	r.byType[status.CacheType] = status
	r.mu.Unlock()
	return nil
}
