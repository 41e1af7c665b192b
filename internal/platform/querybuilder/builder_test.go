package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("fixture_id", "home_team").
		From("matches").
		Where(Eq("is_live", true), IsNull("deleted_at")).
		OrderBy("updated_at DESC").
		Limit(10).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT fixture_id, home_team FROM matches WHERE is_live = $1 AND deleted_at IS NULL ORDER BY updated_at DESC LIMIT 10", query)
	assert.Equal(t, []any{true}, args)
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Select("COUNT(*)").
		From("lineups").
		Where(In("fixture_id", []any{int64(1), int64(2)}), Expr("updated_at > ?", "2025-07-02")).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM lineups WHERE fixture_id IN ($1, $2) AND updated_at > $3", query)
	assert.Equal(t, []any{int64(1), int64(2), "2025-07-02"}, args)
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matches").Where(In("fixture_id", nil)).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM matches WHERE 1=0", query)
	assert.Empty(t, args)
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("cache_status").
		Columns("cache_type", "total_matches").
		Values("static_refresh", 5).
		Suffix("RETURNING cache_type").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO cache_status (cache_type, total_matches) VALUES ($1, $2) RETURNING cache_type", query)
	assert.Equal(t, []any{"static_refresh", 5}, args)
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("matches").Columns("a", "b").Values(1).ToSQL()
	assert.Error(t, err)
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("lineups").Where(Eq("fixture_id", int64(3))).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM lineups WHERE fixture_id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)

	query, _, err = DeleteFrom("matches").ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM matches", query)

	_, _, err = DeleteFrom(" ").ToSQL()
	assert.Error(t, err)
}

type rowModel struct {
	FixtureID int64  `db:"fixture_id"`
	TeamName  string `db:"team_name"`
	Ignored   string `db:"-"`
	internal  string
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	query, args, err := InsertModel("lineups", rowModel{FixtureID: 1, TeamName: "Real Madrid", internal: "x"}, "")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO lineups (fixture_id, team_name) VALUES ($1, $2)", query)
	assert.Equal(t, []any{int64(1), "Real Madrid"}, args)

	_, _, err = InsertModel("lineups", (*rowModel)(nil), "")
	assert.Error(t, err)
}

func TestInsertModels(t *testing.T) {
	t.Parallel()

	query, args, err := InsertModels("lineups", []rowModel{
		{FixtureID: 1, TeamName: "Real Madrid"},
		{FixtureID: 1, TeamName: "Barcelona"},
	}, "ON CONFLICT DO NOTHING")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO lineups (fixture_id, team_name) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING", query)
	assert.Len(t, args, 4)

	_, _, err = InsertModels[rowModel]("lineups", nil, "")
	assert.Error(t, err)
}
