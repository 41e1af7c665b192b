package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchboard/internal/domain/formation"
	"github.com/riskibarqy/matchboard/internal/domain/lineup"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

// TeamLayout is one team's lineup placed on the pitch.
type TeamLayout struct {
	FixtureID int64
	TeamName  string
	TeamLogo  string
	Coach     string
	Result    formation.Result
}

type LineupService struct {
	lineupRepo lineup.Repository
}

func NewLineupService(lineupRepo lineup.Repository) *LineupService {
	return &LineupService{lineupRepo: lineupRepo}
}

func (s *LineupService) GetByFixture(ctx context.Context, fixtureID int64) ([]lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetByFixture", attribute.Int64("fixture_id", fixtureID))
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture_id must be greater than zero", ErrInvalidInput)
	}

	items, err := s.lineupRepo.ListByFixture(ctx, fixtureID)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list lineups by fixture: %w", err)
	}
	if len(items) == 0 {
		return nil, errLineupUnavailable
	}
	return items, nil
}

// LayoutByFixture lays out every stored lineup of the fixture, keeping stored team order.
func (s *LineupService) LayoutByFixture(ctx context.Context, fixtureID int64, mode formation.Mode) ([]TeamLayout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.LayoutByFixture",
		attribute.Int64("fixture_id", fixtureID),
		attribute.String("mode", string(mode)),
	)
	defer span.End()

	items, err := s.GetByFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	return layoutTeams(items, mode), nil
}

// LayoutLineups places ad-hoc lineups that were never stored.
func (s *LineupService) LayoutLineups(ctx context.Context, items []lineup.Lineup, mode formation.Mode) ([]TeamLayout, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LineupService.LayoutLineups", attribute.Int("teams", len(items)))
	defer span.End()

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one lineup is required", ErrInvalidInput)
	}
	for i, item := range items {
		if strings.TrimSpace(item.TeamName) == "" {
			return nil, fmt.Errorf("%w: lineups[%d].team_name is required", ErrInvalidInput, i)
		}
	}
	return layoutTeams(items, mode), nil
}

func layoutTeams(items []lineup.Lineup, mode formation.Mode) []TeamLayout {
	return iter.Map(items, func(item *lineup.Lineup) TeamLayout {
		return TeamLayout{
			FixtureID: item.FixtureID,
			TeamName:  item.TeamName,
			TeamLogo:  item.TeamLogo,
			Coach:     item.Coach,
			Result:    formation.LayoutWithMode(*item, mode),
		}
	})
}
