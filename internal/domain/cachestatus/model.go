package cachestatus

import (
	"context"
	"time"
)

const (
	TypeStaticRefresh      = "static_refresh"
	TypeAPIFootballRefresh = "apifootball_refresh"
)

// Status records the outcome of the latest refresh for one source.
type Status struct {
	CacheType    string
	LastUpdated  time.Time
	TotalMatches int
	APICallsMade int
}

// Repository persists refresh bookkeeping.
type Repository interface {
	// Latest returns the most recently updated status across all cache types.
	Latest(ctx context.Context) (Status, bool, error)
	Upsert(ctx context.Context, status Status) error
}
