package match

import (
	"sort"
	"strings"
	"time"
)

const (
	StatusNotStarted = "NS"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusExtraTime  = "ET"
	StatusPenalties  = "P"
	StatusFinished   = "FT"
)

// Match is one fixture as shown on the scoreboard.
type Match struct {
	FixtureID  int64
	HomeTeam   string
	AwayTeam   string
	HomeLogo   string
	AwayLogo   string
	HomeScore  *int
	AwayScore  *int
	Status     string
	Elapsed    *int
	KickoffAt  time.Time
	League     string
	LeagueLogo string
	Venue      string
	IsLive     bool
	UpdatedAt  time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

// IsLiveStatus reports whether a provider short status means the ball is in play.
func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusHalfTime, StatusSecondHalf, StatusExtraTime, StatusPenalties, "BT", "LIVE":
		return true
	default:
		return false
	}
}

func (m Match) Clone() Match {
	out := m
	out.HomeScore = cloneInt(m.HomeScore)
	out.AwayScore = cloneInt(m.AwayScore)
	out.Elapsed = cloneInt(m.Elapsed)
	return out
}

// SortLive orders matches most recently updated first.
func SortLive(items []Match) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}

// SortByKickoff orders matches by kickoff time, earliest first.
func SortByKickoff(items []Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].FixtureID < items[j].FixtureID
		}
		return items[i].KickoffAt.Before(items[j].KickoffAt)
	})
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
