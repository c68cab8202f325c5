package restapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextCancellationHandling(t *testing.T) {
	api := createTestApi(t)

	endpoints := []string{
		"/api/canton/Bern/plants.json",
		"/api/canton/Bern/plants.xlsx",
		"/api/dashboard.json",
		"/charts/choropleth.svg",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			req, err := http.NewRequest("GET", endpoint, nil)
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
			defer cancel()
			req = req.WithContext(ctx)

			mux := http.NewServeMux()
			api.SetRoutes(mux)

			time.Sleep(time.Microsecond)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			// in-memory endpoints finish, table queries fail with the context error
			assert.True(t, w.Code == http.StatusOK || w.Code == http.StatusInternalServerError,
				"unexpected status %d", w.Code)
			if w.Code == http.StatusInternalServerError {
				assert.Contains(t, w.Body.String(), "internal server error")
			}
		})
	}
}
