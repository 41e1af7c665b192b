package memory

import (
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/domain/match"
)

const logoBaseURL = "https://logos-world.net/wp-content/uploads/2020/06/"

func SeedMatches() []match.Match {
	return []match.Match{
		{
			FixtureID:  1,
			HomeTeam:   "Real Madrid",
			AwayTeam:   "Barcelona",
			HomeLogo:   logoBaseURL + "Real-Madrid-Logo.png",
			AwayLogo:   logoBaseURL + "Barcelona-Logo.png",
			HomeScore:  intPtr(2),
			AwayScore:  intPtr(1),
			Status:     match.StatusFinished,
			KickoffAt:  kickoff("2025-07-02T20:00:00Z"),
			League:     "La Liga",
			LeagueLogo: logoBaseURL + "La-Liga-Logo.png",
			Venue:      "Santiago Bernabéu",
			IsLive:     false,
		},
		{
			FixtureID:  2,
			HomeTeam:   "Manchester City",
			AwayTeam:   "Liverpool",
			HomeLogo:   logoBaseURL + "Manchester-City-Logo.png",
			AwayLogo:   logoBaseURL + "Liverpool-Logo.png",
			HomeScore:  intPtr(1),
			AwayScore:  intPtr(2),
			Status:     match.StatusSecondHalf,
			Elapsed:    intPtr(67),
			KickoffAt:  kickoff("2025-07-02T21:00:00Z"),
			League:     "Premier League",
			LeagueLogo: logoBaseURL + "Premier-League-Logo.png",
			Venue:      "Etihad Stadium",
			IsLive:     true,
		},
		{
			FixtureID:  3,
			HomeTeam:   "PSG",
			AwayTeam:   "Bayern Munich",
			HomeLogo:   logoBaseURL + "PSG-Logo.png",
			AwayLogo:   logoBaseURL + "Bayern-Munich-Logo.png",
			HomeScore:  intPtr(0),
			AwayScore:  intPtr(1),
			Status:     match.StatusFirstHalf,
			Elapsed:    intPtr(34),
			KickoffAt:  kickoff("2025-07-02T22:00:00Z"),
			League:     "Champions League",
			LeagueLogo: logoBaseURL + "UEFA-Champions-League-Logo.png",
			Venue:      "Parc des Princes",
			IsLive:     true,
		},
		{
			FixtureID:  4,
			HomeTeam:   "Arsenal",
			AwayTeam:   "Chelsea",
			HomeLogo:   logoBaseURL + "Arsenal-Logo.png",
			AwayLogo:   logoBaseURL + "Chelsea-Logo.png",
			Status:     match.StatusNotStarted,
			KickoffAt:  kickoff("2025-07-03T15:00:00Z"),
			League:     "Premier League",
			LeagueLogo: logoBaseURL + "Premier-League-Logo.png",
			Venue:      "Emirates Stadium",
			IsLive:     false,
		},
		{
			FixtureID:  5,
			HomeTeam:   "Juventus",
			AwayTeam:   "AC Milan",
			HomeLogo:   logoBaseURL + "Juventus-Logo.png",
			AwayLogo:   logoBaseURL + "AC-Milan-Logo.png",
			HomeScore:  intPtr(1),
			AwayScore:  intPtr(1),
			Status:     match.StatusHalfTime,
			KickoffAt:  kickoff("2025-07-02T19:45:00Z"),
			League:     "Serie A",
			LeagueLogo: logoBaseURL + "Serie-A-Logo.png",
			Venue:      "Allianz Stadium",
			IsLive:     true,
		},
	}
}

func SeedLineups() []lineup.Lineup {
	return []lineup.Lineup{
		{
			FixtureID: 1,
			TeamName:  "Real Madrid",
			TeamLogo:  logoBaseURL + "Real-Madrid-Logo.png",
			Formation: "4-3-3",
			Coach:     "Carlo Ancelotti",
			Players: []lineup.Player{
				seedPlayer(1, 1, "Thibaut Courtois", "GK", 1, 1),
				seedPlayer(2, 2, "Dani Carvajal", "RB", 2, 1),
				seedPlayer(3, 3, "Éder Militão", "CB", 2, 2),
				seedPlayer(4, 4, "David Alaba", "CB", 2, 3),
				seedPlayer(5, 23, "Ferland Mendy", "LB", 2, 4),
				seedPlayer(6, 14, "Casemiro", "CDM", 3, 1),
				seedPlayer(7, 10, "Luka Modrić", "CM", 3, 2),
				seedPlayer(8, 8, "Toni Kroos", "CM", 3, 3),
				seedPlayer(9, 20, "Vinícius Jr.", "LW", 4, 1),
				seedPlayer(10, 9, "Karim Benzema", "ST", 4, 2),
				seedPlayer(11, 21, "Rodrygo", "RW", 4, 3),
			},
		},
		{
			FixtureID: 1,
			TeamName:  "Barcelona",
			TeamLogo:  logoBaseURL + "Barcelona-Logo.png",
			Formation: "4-2-3-1",
			Coach:     "Xavi Hernández",
			Players: []lineup.Player{
				seedPlayer(12, 1, "Marc-André ter Stegen", "GK", 1, 1),
				seedPlayer(13, 20, "Sergi Roberto", "RB", 2, 1),
				seedPlayer(14, 4, "Ronald Araújo", "CB", 2, 2),
				seedPlayer(15, 3, "Gerard Piqué", "CB", 2, 3),
				seedPlayer(16, 18, "Jordi Alba", "LB", 2, 4),
				seedPlayer(17, 5, "Sergio Busquets", "CDM", 3, 1),
				seedPlayer(18, 21, "Frenkie de Jong", "CM", 3, 2),
				seedPlayer(19, 16, "Pedri", "CAM", 4, 1),
				seedPlayer(20, 7, "Ousmane Dembélé", "RW", 4, 2),
				seedPlayer(21, 10, "Ansu Fati", "LW", 4, 3),
				seedPlayer(22, 9, "Memphis Depay", "ST", 5, 1),
			},
		},
		{
			FixtureID: 2,
			TeamName:  "Manchester City",
			TeamLogo:  logoBaseURL + "Manchester-City-Logo.png",
			Formation: "4-3-3",
			Coach:     "Pep Guardiola",
			Players: []lineup.Player{
				seedPlayer(23, 31, "Ederson", "GK", 1, 1),
				seedPlayer(24, 2, "Kyle Walker", "RB", 2, 1),
				seedPlayer(25, 3, "Rúben Dias", "CB", 2, 2),
				seedPlayer(26, 5, "John Stones", "CB", 2, 3),
				seedPlayer(27, 27, "João Cancelo", "LB", 2, 4),
				seedPlayer(28, 16, "Rodri", "CDM", 3, 1),
				seedPlayer(29, 17, "Kevin De Bruyne", "CM", 3, 2),
				seedPlayer(30, 20, "Bernardo Silva", "CM", 3, 3),
				seedPlayer(31, 26, "Riyad Mahrez", "RW", 4, 1),
				seedPlayer(32, 9, "Erling Haaland", "ST", 4, 2),
				seedPlayer(33, 10, "Jack Grealish", "LW", 4, 3),
			},
		},
		{
			FixtureID: 2,
			TeamName:  "Liverpool",
			TeamLogo:  logoBaseURL + "Liverpool-Logo.png",
			Formation: "4-3-3",
			Coach:     "Jürgen Klopp",
			Players: []lineup.Player{
				seedPlayer(34, 1, "Alisson", "GK", 1, 1),
				seedPlayer(35, 66, "Trent Alexander-Arnold", "RB", 2, 1),
				seedPlayer(36, 4, "Virgil van Dijk", "CB", 2, 2),
				seedPlayer(37, 32, "Joel Matip", "CB", 2, 3),
				seedPlayer(38, 26, "Andy Robertson", "LB", 2, 4),
				seedPlayer(39, 3, "Fabinho", "CDM", 3, 1),
				seedPlayer(40, 14, "Jordan Henderson", "CM", 3, 2),
				seedPlayer(41, 6, "Thiago", "CM", 3, 3),
				seedPlayer(42, 11, "Mohamed Salah", "RW", 4, 1),
				seedPlayer(43, 27, "Darwin Núñez", "ST", 4, 2),
				seedPlayer(44, 23, "Luis Díaz", "LW", 4, 3),
			},
		},
	}
}

func seedPlayer(externalID int64, number int, name, position string, row, col int) lineup.Player {
	return lineup.Player{
		ExternalID: externalID,
		Number:     number,
		Name:       name,
		Position:   position,
		Grid:       &lineup.Grid{Row: row, Col: col},
	}
}

func kickoff(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int {
	return &v
}
