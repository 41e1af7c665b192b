package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchboard/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// ListLive returns matches in play, most recently updated first.
func (s *MatchService) ListLive(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListLive")
	defer span.End()

	items, err := s.matchRepo.ListLive(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	return items, nil
}

// ListToday returns every stored match ordered by kickoff.
func (s *MatchService) ListToday(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListToday")
	defer span.End()

	items, err := s.matchRepo.ListByKickoff(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list matches by kickoff: %w", err)
	}
	return items, nil
}
