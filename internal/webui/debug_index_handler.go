package webui

import (
	"embed"
	"html/template"
	"net/http"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html dashboard.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, r *http.Request, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err := debugTemplate.Execute(w, dataStruct)
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render debug page", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	ds := webUI.Dataset

	switch dataType {
	case "plants":
		data = ds.Records
		title = "Plants"
	case "cantons":
		data = energy.Aggregate(ds.Records, energy.KnownSources(), energy.ModeSum)
		title = "Total Capacity by Canton"
	case "geometry":
		data = ds.Geometry
		title = "Canton Boundaries"
	case "overview":
		data = energy.Summarize(ds.Records)
		title = "Overview by Source"
	case "warnings":
		data = ds.Report
		title = "Load Report"
	case "sqlite_totals":
		totals, err := webUI.PlantDB.SourceTotals(r.Context())
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = totals
		}
		title = "Plant Table - Totals by Source"
	case "sqlite_tables":
		counts, err := webUI.PlantDB.TableCounts(r.Context())
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = counts
		}
		title = "Plant Table - Row Counts"
	default:
		data = map[string]string{
			"error": "Please use one of the following: plants, cantons, geometry, overview, warnings, sqlite_totals, sqlite_tables.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, r, title, data)
}
