package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	qb "github.com/riskibarqy/matchboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListLive(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("is_live", true)).
		OrderBy("updated_at DESC", "fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select live matches query: %w", err)
	}

	return r.selectMatches(ctx, "select live matches", query, args)
}

func (r *MatchRepository) ListByKickoff(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		OrderBy("kickoff_at", "fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by kickoff query: %w", err)
	}

	return r.selectMatches(ctx, "select matches by kickoff", query, args)
}

func (r *MatchRepository) ReplaceAll(ctx context.Context, items []match.Match) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace matches tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := qb.DeleteFrom("matches").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matches query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}

	models := make([]matchInsertModel, 0, len(items))
	for _, item := range items {
		models = append(models, newMatchInsertModel(item))
	}
	for _, batch := range chunk(models, insertChunkSize) {
		query, args, err = qb.InsertModels("matches", batch, "")
		if err != nil {
			return fmt.Errorf("build insert matches query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert matches: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace matches tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("matches").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	count, err := countRows(ctx, r.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) CountLive(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(qb.Eq("is_live", true)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count live matches query: %w", err)
	}

	count, err := countRows(ctx, r.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count live matches: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, op, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
