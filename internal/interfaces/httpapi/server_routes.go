package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/today", handler.ListTodayMatches)
	mux.HandleFunc("GET /v1/matches/{fixtureID}/lineups", handler.GetFixtureLineups)
	mux.HandleFunc("GET /v1/matches/{fixtureID}/lineups/layout", handler.GetFixtureLayout)
}

func registerLayoutRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("POST /v1/layouts", handler.CreateLayout)
}

func registerCacheRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.HandleFunc("GET /v1/cache/status", handler.GetCacheStatus)
	// Refresh replaces every stored match, so it sits behind the internal job token.
	mux.Handle("POST /v1/cache/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RefreshCache)))
}
