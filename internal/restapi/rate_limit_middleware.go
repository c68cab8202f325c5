package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"energymap.ch/internal/models"
	"energymap.ch/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware provides per-client rate limiting
type RateLimitMiddleware struct {
	limiters       map[string]*rate.Limiter
	mu             sync.RWMutex
	rateLimit      rate.Limit
	burstSize      int
	trustedProxies []string
	cleanupTick    *time.Ticker
	done           chan struct{}
	stopOnce       sync.Once
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
// ratePerSecond requests are allowed per interval and client; a value of
// zero or less disables limiting. Clients are told apart by remote address,
// or by X-Forwarded-For when the request comes from one of trustedProxies.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, trustedProxies ...string) *RateLimitMiddleware {
	rateLimit := rate.Inf
	if ratePerSecond > 0 {
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	}

	middleware := &RateLimitMiddleware{
		limiters:       make(map[string]*rate.Limiter),
		rateLimit:      rateLimit,
		burstSize:      ratePerSecond,
		trustedProxies: trustedProxies,
		done:           make(chan struct{}),
	}

	// no limiters are ever created without a limit
	if rateLimit != rate.Inf {
		middleware.cleanupTick = time.NewTicker(5 * time.Minute)
		go middleware.cleanup()
	}

	return middleware
}

// getLimiter gets or creates a rate limiter for the given client
func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[client]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[client] = limiter

	return limiter
}

// Handler is the HTTP middleware function
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.rateLimit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(utils.ClientIP(r, rl.trustedProxies...)).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	retryAfter := time.Duration(float64(time.Second) / float64(rl.rateLimit))
	seconds := int(retryAfter.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	response := models.NewResponse(http.StatusTooManyRequests, map[string]interface{}{
		"entry":      nil,
		"references": models.NewEmptyReferences(),
	}, "Rate limit exceeded. Please try again later.")

	_ = json.NewEncoder(w).Encode(response)
}

// cleanup periodically removes idle limiters
func (rl *RateLimitMiddleware) cleanup() {
	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanupTick.C:
			rl.removeIdleLimiters()
		}
	}
}

func (rl *RateLimitMiddleware) removeIdleLimiters() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for client, limiter := range rl.limiters {
		// A full bucket means the client has been quiet for a while
		if limiter.Tokens() >= float64(rl.burstSize) {
			delete(rl.limiters, client)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() {
		if rl.cleanupTick != nil {
			rl.cleanupTick.Stop()
		}
		close(rl.done)
	})
}
