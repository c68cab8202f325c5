package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"energymap.ch/internal/app"
	"energymap.ch/internal/appconf"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
	"energymap.ch/internal/models"
	"github.com/stretchr/testify/require"
)

// createTestApi loads the fixture dataset into a new RestAPI without rate limiting.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithConfig(t, appconf.Config{Env: appconf.Test})
}

func createTestApiWithConfig(t *testing.T, config appconf.Config) *RestAPI {
	t.Helper()

	dataConfig := energy.DataConfig{
		PlantsPath:  models.GetFixturePath(t, "renewable_power_plants_CH.csv"),
		CantonsPath: models.GetFixturePath(t, "georef-switzerland-kanton.geojson"),
		CantonKey:   energy.DefaultCantonKey,
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelInfo)

	application, err := app.New(context.Background(), config, dataConfig, logger)
	require.NoError(t, err)

	api := NewRestAPI(application)
	t.Cleanup(func() {
		api.Shutdown()
		_ = application.Close()
	})
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRetrieveBody(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

// serveApiAndRetrieveBody returns the raw body, for non-JSON endpoints and error responses.
func serveApiAndRetrieveBody(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func responseData(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	return data
}

func responseList(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	list, ok := responseData(t, model)["list"].([]interface{})
	require.True(t, ok, "data.list should be an array")
	return list
}

func responseEntry(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	entry, ok := responseData(t, model)["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}

func decodeFieldErrors(t *testing.T, body []byte) map[string][]string {
	t.Helper()
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	return response.FieldErrors
}
