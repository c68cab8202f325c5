package restapi

import (
	"bytes"
	"net/http"

	"energymap.ch/internal/charts"
	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/energy"
)

func (api *RestAPI) overviewChartHandler(w http.ResponseWriter, r *http.Request) {
	chart := dashboard.RenderOverview(energy.Summarize(api.Dataset.Records))

	var buf bytes.Buffer
	if err := charts.WriteOverviewSVG(&buf, chart); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendBytes(w, r, charts.ContentType, &buf)
}

func (api *RestAPI) choroplethChartHandler(w http.ResponseWriter, r *http.Request) {
	sel, fieldErrors := dashboard.ParseSelections(r.URL.Query(), api.Dataset)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result := energy.Aggregate(api.Dataset.Records, sel.Sources, sel.Mode)
	choropleth := dashboard.RenderChoropleth(result, sel.Mode)

	var buf bytes.Buffer
	if err := charts.WriteChoroplethSVG(&buf, choropleth, api.Dataset.Geometry); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendBytes(w, r, charts.ContentType, &buf)
}

// cantonChartHandler serves /charts/canton/{name}.svg.
func (api *RestAPI) cantonChartHandler(w http.ResponseWriter, r *http.Request) {
	canton, ok := api.cantonFromPath(w, r, "file", ".svg")
	if !ok {
		return
	}

	detail := dashboard.RenderDetail(api.Dataset, canton)

	var buf bytes.Buffer
	if err := charts.WriteScatterSVG(&buf, detail, api.Dataset.Geometry); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendBytes(w, r, charts.ContentType, &buf)
}
