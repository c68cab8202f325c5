package webui

import (
	"context"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWebUI(t *testing.T) *WebUI {
	t.Helper()

	dataConfig := energy.DataConfig{
		PlantsPath:  models.GetFixturePath(t, "renewable_power_plants_CH.csv"),
		CantonsPath: models.GetFixturePath(t, "georef-switzerland-kanton.geojson"),
		CantonKey:   energy.DefaultCantonKey,
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelInfo)

	application, err := app.New(context.Background(), appconf.Config{Env: appconf.Test}, dataConfig, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	return NewWebUI(application)
}

func serveWebUI(t *testing.T, webUI *WebUI, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	webUI.SetWebUIRoutes(mux)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest("GET", target, nil))
	return recorder
}

func TestDashboardPage(t *testing.T) {
	webUI := createTestWebUI(t)

	recorder := serveWebUI(t, webUI, "/")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))

	body := recorder.Body.String()
	assert.Contains(t, body, "<title>Clean Energy in Switzerland</title>")
	assert.Contains(t, body, "General Overview")
	assert.Contains(t, body, "Analysis by Canton")
	assert.Contains(t, body, `src="/charts/overview.svg"`)
	assert.Contains(t, body, `src="/charts/choropleth.svg?mode=sum&amp;sources=Bioenergy%2CHydro%2CSolar%2CWind"`)
	assert.Contains(t, body, `src="/charts/canton/Bern.svg"`)
	assert.Contains(t, body, `<option value="Hydro" selected>Hydro</option>`)
	assert.Contains(t, body, `value="sum" checked`)
	assert.Contains(t, body, `<option value="Bern" selected>Bern</option>`)
	assert.NotContains(t, body, "Download as spreadsheet")

	// overview figures
	assert.Contains(t, body, `<td class="num">13.0</td>`)
	assert.Contains(t, body, `<td class="num">2</td>`)
}

func TestDashboardPageSelections(t *testing.T) {
	webUI := createTestWebUI(t)

	recorder := serveWebUI(t, webUI, "/?sources=&sources=Wind&mode=count&canton=Z%C3%BCrich&table=true")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, `src="/charts/choropleth.svg?mode=count&amp;sources=Wind"`)
	assert.Contains(t, body, `src="/charts/canton/Z%C3%BCrich.svg"`)
	assert.Contains(t, body, `alt="Renewable Plants in Zürich"`)
	assert.Contains(t, body, `<option value="Wind" selected>Wind</option>`)
	assert.Contains(t, body, `<option value="Hydro">Hydro</option>`)
	assert.Contains(t, body, `value="count" checked`)
	assert.Contains(t, body, `name="table" value="true" checked`)

	assert.Contains(t, body, "Plants in Zürich")
	assert.Contains(t, body, `href="/api/canton/Z%C3%BCrich/plants.xlsx"`)
	assert.Contains(t, body, "<td>Winterthur</td>")
	assert.Contains(t, body, `<td class="num">0.500</td>`)
}

func TestDashboardPageEmptyCanton(t *testing.T) {
	webUI := createTestWebUI(t)

	recorder := serveWebUI(t, webUI, "/?canton=Uri&table=true")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, `<option value="Uri" selected>Uri</option>`)
	assert.Contains(t, body, "No plants recorded for this canton.")
}

func TestDashboardPageInvalidSelections(t *testing.T) {
	webUI := createTestWebUI(t)

	recorder := serveWebUI(t, webUI, "/?mode=median&canton=Atlantis")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, "Some selections were invalid")
	assert.Contains(t, body, "canton: unknown canton")
	assert.Contains(t, body, `<option value="Bern" selected>Bern</option>`)
}

func TestDebugIndexHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	tests := []struct {
		dataType string
		title    string
		contains string
	}{
		{"plants", "Plants", "Saint-Imier"},
		{"cantons", "Total Capacity by Canton", "Zürich"},
		{"geometry", "Canton Boundaries", "Genève"},
		{"overview", "Overview by Source", "TotalCapacityBySource"},
		{"warnings", "Load Report", "WithoutLocation"},
		{"sqlite_totals", "Plant Table - Totals by Source", "TotalCapacity"},
		{"sqlite_tables", "Plant Table - Row Counts", "plants"},
		{"", "Choose a data type", "sqlite_totals"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			recorder := serveWebUI(t, webUI, "/debug/?dataType="+tt.dataType)
			require.Equal(t, http.StatusOK, recorder.Code)

			body := recorder.Body.String()
			assert.Contains(t, body, "<h1>"+tt.title+"</h1>")
			assert.Contains(t, body, tt.contains)
		})
	}
}
