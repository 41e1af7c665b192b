package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/matchboard/internal/domain/formation"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/riskibarqy/matchboard/internal/usecase"
)

type layoutRequest struct {
	Lineups []lineupRequest `json:"lineups" validate:"required,min=1,max=4,dive"`
}

type lineupRequest struct {
	TeamName  string          `json:"team_name" validate:"required,max=100"`
	TeamLogo  string          `json:"team_logo" validate:"omitempty,max=500"`
	Formation string          `json:"formation" validate:"omitempty,max=20"`
	Coach     string          `json:"coach" validate:"omitempty,max=100"`
	Players   []playerRequest `json:"players" validate:"max=40,dive"`
}

type playerRequest struct {
	Number   int     `json:"number" validate:"gte=0,lte=999"`
	Name     string  `json:"name" validate:"required,max=100"`
	Position string  `json:"position" validate:"omitempty,max=10"`
	Grid     *string `json:"grid" validate:"omitempty,max=10"`
}

func (h *Handler) GetFixtureLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureLineups")
	defer span.End()

	fixtureID, err := parseFixtureID(r.PathValue("fixtureID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.lineupService.GetByFixture(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineups failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]lineupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, lineupToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFixtureLayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureLayout")
	defer span.End()

	fixtureID, err := parseFixtureID(r.PathValue("fixtureID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	mode, err := formation.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.lineupService.LayoutByFixture(ctx, fixtureID, mode)
	if err != nil {
		h.logger.WarnContext(ctx, "layout lineups failed", "fixture_id", fixtureID, "mode", mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamLayoutsToDTO(items))
}

// CreateLayout places lineups posted by the caller without storing them.
func (h *Handler) CreateLayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLayout")
	defer span.End()

	mode, err := formation.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req layoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := lineupsFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	layouts, err := h.lineupService.LayoutLineups(ctx, items, mode)
	if err != nil {
		h.logger.WarnContext(ctx, "layout posted lineups failed", "teams", len(items), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamLayoutsToDTO(layouts))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	names := formation.Names()
	items := make([]formationDTO, 0, len(names))
	for _, name := range names {
		tpl, _ := formation.Lookup(name)
		items = append(items, formationToDTO(name, tpl))
	}

	writeSuccess(ctx, w, http.StatusOK, formationListDTO{
		Formations: items,
		Default:    formationToDTO(formation.NameDefault, formation.DefaultTemplate()),
	})
}

func lineupsFromRequest(req layoutRequest) ([]lineup.Lineup, error) {
	out := make([]lineup.Lineup, 0, len(req.Lineups))
	for i, item := range req.Lineups {
		players := make([]lineup.Player, 0, len(item.Players))
		for j, p := range item.Players {
			player := lineup.Player{
				Number:   p.Number,
				Name:     strings.TrimSpace(p.Name),
				Position: strings.TrimSpace(p.Position),
			}
			if p.Grid != nil {
				grid, err := lineup.ParseGrid(*p.Grid)
				if err != nil {
					return nil, fmt.Errorf("%w: lineups[%d].players[%d].grid: %v", usecase.ErrInvalidInput, i, j, err)
				}
				player.Grid = grid
			}
			players = append(players, player)
		}

		out = append(out, lineup.Lineup{
			TeamName:  strings.TrimSpace(item.TeamName),
			TeamLogo:  strings.TrimSpace(item.TeamLogo),
			Formation: strings.TrimSpace(item.Formation),
			Coach:     strings.TrimSpace(item.Coach),
			Players:   players,
		})
	}
	return out, nil
}
