package httpapi

import (
	"net/http"
)

// RefreshCache reloads matches and lineups from the configured source.
func (h *Handler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshCache")
	defer span.End()

	result, err := h.refreshService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh cache failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshResultToDTO(result))
}

func (h *Handler) GetCacheStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCacheStatus")
	defer span.End()

	view, err := h.cacheStatusService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get cache status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cacheStatusToDTO(view))
}
