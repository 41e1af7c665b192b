package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	qb "github.com/riskibarqy/matchboard/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]lineup.Lineup, error) {
	query, args, err := qb.Select("id", "fixture_id", "team_order", "team_name", "team_logo", "formation", "coach", "players::text AS players", "created_at").
		From("lineups").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("team_order", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select lineups by fixture query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lineups by fixture: %w", err)
	}

	out := make([]lineup.Lineup, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *LineupRepository) ReplaceAll(ctx context.Context, items []lineup.Lineup) (err error) {
	models, err := newLineupInsertModels(items)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace lineups tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := qb.DeleteFrom("lineups").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete lineups query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete lineups: %w", err)
	}

	for _, batch := range chunk(models, insertChunkSize) {
		query, args, err = qb.InsertModels("lineups", batch, "")
		if err != nil {
			return fmt.Errorf("build insert lineups query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert lineups: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace lineups tx: %w", err)
	}
	return nil
}

func (r *LineupRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("lineups").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count lineups query: %w", err)
	}

	count, err := countRows(ctx, r.db, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count lineups: %w", err)
	}
	return count, nil
}
