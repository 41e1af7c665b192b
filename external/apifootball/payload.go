package apifootball

type envelope[T any] struct {
	Errors   any `json:"errors"`
	Results  int `json:"results"`
	Response []T `json:"response"`
}

type fixtureItem struct {
	Fixture fixtureInfo `json:"fixture"`
	League  leagueInfo  `json:"league"`
	Teams   teamsInfo   `json:"teams"`
	Goals   goalsInfo   `json:"goals"`
}

type fixtureInfo struct {
	ID     int64      `json:"id"`
	Date   string     `json:"date"`
	Venue  venueInfo  `json:"venue"`
	Status statusInfo `json:"status"`
}

type venueInfo struct {
	Name string `json:"name"`
}

type statusInfo struct {
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type leagueInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type teamsInfo struct {
	Home teamInfo `json:"home"`
	Away teamInfo `json:"away"`
}

type teamInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type goalsInfo struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type lineupItem struct {
	Team      teamInfo      `json:"team"`
	Coach     coachInfo     `json:"coach"`
	Formation string        `json:"formation"`
	StartXI   []lineupEntry `json:"startXI"`
}

type coachInfo struct {
	Name string `json:"name"`
}

type lineupEntry struct {
	Player lineupPlayer `json:"player"`
}

type lineupPlayer struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Number int     `json:"number"`
	Pos    string  `json:"pos"`
	Grid   *string `json:"grid"`
}
