package httpapi

import (
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/formation"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/usecase"
)

const neverRefreshed = "Never"

type matchDTO struct {
	FixtureID  int64  `json:"fixture_id"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeLogo   string `json:"home_logo"`
	AwayLogo   string `json:"away_logo"`
	HomeScore  *int   `json:"home_score"`
	AwayScore  *int   `json:"away_score"`
	Status     string `json:"status"`
	Elapsed    *int   `json:"elapsed"`
	KickoffAt  string `json:"kickoff_at"`
	League     string `json:"league"`
	LeagueLogo string `json:"league_logo"`
	Venue      string `json:"venue"`
	IsLive     bool   `json:"is_live"`
	UpdatedAt  string `json:"updated_at"`
}

type lineupDTO struct {
	FixtureID int64             `json:"fixture_id"`
	TeamName  string            `json:"team_name"`
	TeamLogo  string            `json:"team_logo"`
	Formation string            `json:"formation"`
	Coach     string            `json:"coach"`
	Players   []lineupPlayerDTO `json:"players"`
}

type lineupPlayerDTO struct {
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Grid     *string `json:"grid"`
}

type teamLayoutDTO struct {
	FixtureID         int64             `json:"fixture_id,omitempty"`
	TeamName          string            `json:"team_name"`
	TeamLogo          string            `json:"team_logo"`
	Coach             string            `json:"coach"`
	Formation         string            `json:"formation"`
	ResolvedFormation string            `json:"resolved_formation"`
	Mode              string            `json:"mode"`
	Placements        []placementDTO    `json:"placements"`
	Unplaced          []lineupPlayerDTO `json:"unplaced"`
}

// placementDTO coordinates are the center of the player marker.
type placementDTO struct {
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Grid     *string `json:"grid"`
	XPercent float64 `json:"x_percent"`
	YPercent float64 `json:"y_percent"`
}

type formationListDTO struct {
	Formations []formationDTO `json:"formations"`
	Default    formationDTO   `json:"default"`
}

type formationDTO struct {
	Name  string    `json:"name"`
	Slots []slotDTO `json:"slots"`
}

type slotDTO struct {
	XPercent float64 `json:"x_percent"`
	YPercent float64 `json:"y_percent"`
}

type refreshResultDTO struct {
	RunID         string `json:"run_id"`
	CacheType     string `json:"cache_type"`
	MatchesCount  int    `json:"matches_count"`
	LineupsCount  int    `json:"lineups_count"`
	FailedLineups int    `json:"failed_lineups"`
	APICallsMade  int    `json:"api_calls_made"`
	LastUpdated   string `json:"last_updated"`
	Message       string `json:"message"`
	Shared        bool   `json:"shared"`
}

type cacheStatusDTO struct {
	CacheType    string         `json:"cache_type,omitempty"`
	LastUpdated  string         `json:"last_updated"`
	LiveMatches  int            `json:"live_matches"`
	TotalMatches int            `json:"total_matches"`
	APICalls     int            `json:"api_calls"`
	Cache        *cacheStatsDTO `json:"cache,omitempty"`
}

type cacheStatsDTO struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		FixtureID:  v.FixtureID,
		HomeTeam:   v.HomeTeam,
		AwayTeam:   v.AwayTeam,
		HomeLogo:   v.HomeLogo,
		AwayLogo:   v.AwayLogo,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Status:     v.Status,
		Elapsed:    v.Elapsed,
		KickoffAt:  formatTime(v.KickoffAt),
		League:     v.League,
		LeagueLogo: v.LeagueLogo,
		Venue:      v.Venue,
		IsLive:     v.IsLive,
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func lineupToDTO(item lineup.Lineup) lineupDTO {
	return lineupDTO{
		FixtureID: item.FixtureID,
		TeamName:  item.TeamName,
		TeamLogo:  item.TeamLogo,
		Formation: item.Formation,
		Coach:     item.Coach,
		Players:   playersToDTO(item.Players),
	}
}

func playersToDTO(players []lineup.Player) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, lineupPlayerDTO{
			Number:   p.Number,
			Name:     p.Name,
			Position: p.Position,
			Grid:     gridToDTO(p.Grid),
		})
	}
	return out
}

func gridToDTO(g *lineup.Grid) *string {
	if g == nil {
		return nil
	}
	value := lineup.FormatGrid(g)
	return &value
}

func teamLayoutsToDTO(items []usecase.TeamLayout) []teamLayoutDTO {
	out := make([]teamLayoutDTO, 0, len(items))
	for _, item := range items {
		placements := make([]placementDTO, 0, len(item.Result.Placements))
		for _, p := range item.Result.Placements {
			placements = append(placements, placementDTO{
				Number:   p.Player.Number,
				Name:     p.Player.Name,
				Position: p.Player.Position,
				Grid:     gridToDTO(p.Player.Grid),
				XPercent: p.Coordinate.X,
				YPercent: p.Coordinate.Y,
			})
		}

		out = append(out, teamLayoutDTO{
			FixtureID:         item.FixtureID,
			TeamName:          item.TeamName,
			TeamLogo:          item.TeamLogo,
			Coach:             item.Coach,
			Formation:         item.Result.Formation,
			ResolvedFormation: item.Result.ResolvedFormation,
			Mode:              string(item.Result.Mode),
			Placements:        placements,
			Unplaced:          playersToDTO(item.Result.Unplaced),
		})
	}
	return out
}

func formationToDTO(name string, tpl formation.Template) formationDTO {
	slots := make([]slotDTO, 0, len(tpl))
	for _, c := range tpl {
		slots = append(slots, slotDTO{XPercent: c.X, YPercent: c.Y})
	}
	return formationDTO{Name: name, Slots: slots}
}

func refreshResultToDTO(v usecase.RefreshResult) refreshResultDTO {
	return refreshResultDTO{
		RunID:         v.RunID,
		CacheType:     v.CacheType,
		MatchesCount:  v.MatchesCount,
		LineupsCount:  v.LineupsCount,
		FailedLineups: v.FailedLineups,
		APICallsMade:  v.APICallsMade,
		LastUpdated:   formatTime(v.LastUpdated),
		Message:       v.Message,
		Shared:        v.Shared,
	}
}

func cacheStatusToDTO(v usecase.CacheStatusView) cacheStatusDTO {
	out := cacheStatusDTO{
		CacheType:    v.CacheType,
		LastUpdated:  neverRefreshed,
		LiveMatches:  v.LiveMatches,
		TotalMatches: v.TotalMatches,
		APICalls:     v.APICalls,
	}
	if v.LastUpdated != nil {
		out.LastUpdated = formatTime(*v.LastUpdated)
	}
	if v.Cache != nil {
		out.Cache = &cacheStatsDTO{
			Entries: v.Cache.Entries,
			Hits:    v.Cache.Hits,
			Misses:  v.Cache.Misses,
		}
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
