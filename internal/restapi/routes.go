package restapi

import (
	"net/http"
	"net/http/pprof"

	"energymap.ch/internal/appconf"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func rateLimited(api *RestAPI, finalHandler handlerFunc) http.Handler {
	if api.rateLimiter == nil {
		return http.HandlerFunc(finalHandler)
	}
	return api.rateLimiter.Handler(http.HandlerFunc(finalHandler))
}

func registerPprofHandlers(mux *http.ServeMux) {
	// method patterns, so that the web UI's "GET /debug/" stays the less specific route
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/overview.json", rateLimited(api, api.overviewHandler))
	mux.Handle("GET /api/cantons.json", rateLimited(api, api.cantonsHandler))
	mux.Handle("GET /api/dashboard.json", rateLimited(api, api.dashboardHandler))
	mux.Handle("GET /api/canton/{name}", rateLimited(api, api.cantonDetailHandler))
	mux.Handle("GET /api/canton/{name}/plants.json", rateLimited(api, api.plantsHandler))
	mux.Handle("GET /api/canton/{name}/plants.xlsx", rateLimited(api, api.plantsXLSXHandler))

	mux.Handle("GET /charts/overview.svg", rateLimited(api, api.overviewChartHandler))
	mux.Handle("GET /charts/choropleth.svg", rateLimited(api, api.choroplethChartHandler))
	mux.Handle("GET /charts/canton/{file}", rateLimited(api, api.cantonChartHandler))

	mux.HandleFunc("GET /healthz", api.healthHandler)

	if api.Config.Env == appconf.Development {
		registerPprofHandlers(mux)
	}
}
