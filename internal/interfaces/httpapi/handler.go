package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/riskibarqy/matchboard/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	matchService       *usecase.MatchService
	lineupService      *usecase.LineupService
	refreshService     *usecase.RefreshService
	cacheStatusService *usecase.CacheStatusService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	lineupService *usecase.LineupService,
	refreshService *usecase.RefreshService,
	cacheStatusService *usecase.CacheStatusService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:       matchService,
		lineupService:      lineupService,
		refreshService:     refreshService,
		cacheStatusService: cacheStatusService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseFixtureID(raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	fixtureID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || fixtureID <= 0 {
		return 0, fmt.Errorf("%w: fixture id must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return fixtureID, nil
}
