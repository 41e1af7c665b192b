package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchboard/internal/domain/cachestatus"
	qb "github.com/riskibarqy/matchboard/internal/platform/querybuilder"
)

type cacheStatusTableModel struct {
	CacheType    string    `db:"cache_type"`
	LastUpdated  time.Time `db:"last_updated"`
	TotalMatches int       `db:"total_matches"`
	APICallsMade int       `db:"api_calls_made"`
}

type CacheStatusRepository struct {
	db *sqlx.DB
}

func NewCacheStatusRepository(db *sqlx.DB) *CacheStatusRepository {
	return &CacheStatusRepository{db: db}
}

func (r *CacheStatusRepository) Latest(ctx context.Context) (cachestatus.Status, bool, error) {
	query, args, err := qb.Select("cache_type", "last_updated", "total_matches", "api_calls_made").
		From("cache_status").
		OrderBy("last_updated DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return cachestatus.Status{}, false, fmt.Errorf("build select latest cache status query: %w", err)
	}

	var row cacheStatusTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cachestatus.Status{}, false, nil
		}
		return cachestatus.Status{}, false, fmt.Errorf("select latest cache status: %w", err)
	}

	return cachestatus.Status{
		CacheType:    row.CacheType,
		LastUpdated:  row.LastUpdated.UTC(),
		TotalMatches: row.TotalMatches,
		APICallsMade: row.APICallsMade,
	}, true, nil
}

func (r *CacheStatusRepository) Upsert(ctx context.Context, status cachestatus.Status) error {
	query, args, err := qb.InsertModel("cache_status", cacheStatusTableModel{
		CacheType:    status.CacheType,
		LastUpdated:  status.LastUpdated.UTC(),
		TotalMatches: status.TotalMatches,
		APICallsMade: status.APICallsMade,
	}, `ON CONFLICT (cache_type) DO UPDATE SET
		last_updated = EXCLUDED.last_updated,
		total_matches = EXCLUDED.total_matches,
		api_calls_made = EXCLUDED.api_calls_made`)
	if err != nil {
		return fmt.Errorf("build upsert cache status query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert cache status type=%s: %w", status.CacheType, err)
	}
	return nil
}
