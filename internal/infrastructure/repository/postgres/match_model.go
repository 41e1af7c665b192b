package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/match"
)

type matchTableModel struct {
	FixtureID  int64         `db:"fixture_id"`
	HomeTeam   string        `db:"home_team"`
	AwayTeam   string        `db:"away_team"`
	HomeLogo   string        `db:"home_logo"`
	AwayLogo   string        `db:"away_logo"`
	HomeScore  sql.NullInt32 `db:"home_score"`
	AwayScore  sql.NullInt32 `db:"away_score"`
	Status     string        `db:"status"`
	Elapsed    sql.NullInt32 `db:"elapsed"`
	KickoffAt  time.Time     `db:"kickoff_at"`
	League     string        `db:"league"`
	LeagueLogo string        `db:"league_logo"`
	Venue      string        `db:"venue"`
	IsLive     bool          `db:"is_live"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	FixtureID  int64         `db:"fixture_id"`
	HomeTeam   string        `db:"home_team"`
	AwayTeam   string        `db:"away_team"`
	HomeLogo   string        `db:"home_logo"`
	AwayLogo   string        `db:"away_logo"`
	HomeScore  sql.NullInt32 `db:"home_score"`
	AwayScore  sql.NullInt32 `db:"away_score"`
	Status     string        `db:"status"`
	Elapsed    sql.NullInt32 `db:"elapsed"`
	KickoffAt  time.Time     `db:"kickoff_at"`
	League     string        `db:"league"`
	LeagueLogo string        `db:"league_logo"`
	Venue      string        `db:"venue"`
	IsLive     bool          `db:"is_live"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

var matchColumns = []string{
	"fixture_id", "home_team", "away_team", "home_logo", "away_logo",
	"home_score", "away_score", "status", "elapsed", "kickoff_at",
	"league", "league_logo", "venue", "is_live", "created_at", "updated_at",
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		FixtureID:  m.FixtureID,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeLogo:   m.HomeLogo,
		AwayLogo:   m.AwayLogo,
		HomeScore:  intFromNull(m.HomeScore),
		AwayScore:  intFromNull(m.AwayScore),
		Status:     m.Status,
		Elapsed:    intFromNull(m.Elapsed),
		KickoffAt:  m.KickoffAt.UTC(),
		League:     m.League,
		LeagueLogo: m.LeagueLogo,
		Venue:      m.Venue,
		IsLive:     m.IsLive,
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func newMatchInsertModel(item match.Match) matchInsertModel {
	return matchInsertModel{
		FixtureID:  item.FixtureID,
		HomeTeam:   item.HomeTeam,
		AwayTeam:   item.AwayTeam,
		HomeLogo:   item.HomeLogo,
		AwayLogo:   item.AwayLogo,
		HomeScore:  nullInt(item.HomeScore),
		AwayScore:  nullInt(item.AwayScore),
		Status:     item.Status,
		Elapsed:    nullInt(item.Elapsed),
		KickoffAt:  item.KickoffAt.UTC(),
		League:     item.League,
		LeagueLogo: item.LeagueLogo,
		Venue:      item.Venue,
		IsLive:     item.IsLive,
		UpdatedAt:  item.UpdatedAt.UTC(),
	}
}
