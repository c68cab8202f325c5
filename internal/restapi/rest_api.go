package restapi

import (
	"net/http"
	"time"

	"energymap.ch/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second, app.Config.TrustedProxies...),
	}
}

// Handler wraps the routes in the middleware shared by every endpoint.
func (api *RestAPI) Handler(mux http.Handler) http.Handler {
	handler := CompressionMiddleware(mux)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger, api.Config.TrustedProxies...)(handler)
}

// Shutdown stops background work of the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
