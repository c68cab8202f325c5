package webui

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"sort"

	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
	"energymap.ch/internal/utils"
)

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "dashboard.html"))

type option struct {
	Value    string
	Label    string
	Selected bool
}

type summaryRow struct {
	Source   string
	Color    string
	Capacity string
	Count    string
}

type tableRow struct {
	Source            string
	Capacity          string
	Lon               string
	Lat               string
	Municipality      string
	CommissioningDate string
	ContractPeriodEnd string
}

type dashboardPage struct {
	Title          string
	OverviewHeader string
	CantonHeader   string
	FieldErrors    map[string][]string

	Sources []option
	Modes   []option
	Cantons []option
	Table   bool

	Summary         []summaryRow
	OverviewChart   template.URL
	ChoroplethChart template.URL
	CantonChart     template.URL
	ChoroplethAlt   string
	CantonAlt       string

	TableCanton string
	TableRows   []tableRow
	TableXLSX   template.URL
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ds := webUI.Dataset
	status := http.StatusOK

	sel, fieldErrors := dashboard.ParseSelections(r.URL.Query(), ds)
	if len(fieldErrors) > 0 {
		sel = dashboard.DefaultSelections(ds)
		status = http.StatusBadRequest
	}

	page := dashboardPage{
		Title:          dashboard.PageTitle,
		OverviewHeader: dashboard.OverviewHeader,
		CantonHeader:   dashboard.CantonHeader,
		FieldErrors:    fieldErrors,
		Sources:        sourceOptions(sel),
		Modes:          modeOptions(sel.Mode),
		Cantons:        cantonOptions(ds, sel.Canton),
		Table:          sel.ShowTable,
		Summary:        summaryRows(energy.Summarize(ds.Records)),
		OverviewChart:  "/charts/overview.svg",
		ChoroplethAlt:  dashboard.ChoroplethTitle + " (" + sel.Mode.Label() + ")",
	}

	query := sel.Query()
	page.ChoroplethChart = chartURL("/charts/choropleth.svg", url.Values{
		dashboard.ParamSources: query[dashboard.ParamSources],
		dashboard.ParamMode:    query[dashboard.ParamMode],
	})

	if sel.Canton != "" {
		page.CantonChart = chartURL("/charts/canton/"+sel.Canton+".svg", nil)
		page.CantonAlt = dashboard.RenderDetail(ds, sel.Canton).Title
	}

	if sel.ShowTable && sel.Canton != "" {
		table := dashboard.RenderTable(ds, sel.Canton)
		page.TableCanton = table.Canton
		page.TableXLSX = chartURL("/api/canton/"+table.Canton+"/plants.xlsx", nil)
		for _, row := range table.Rows {
			tr := tableRow{
				Source:            row.Source,
				Capacity:          utils.FormatNumber(row.ElectricalCapacity, 3),
				Municipality:      row.Municipality,
				CommissioningDate: row.CommissioningDate,
				ContractPeriodEnd: row.ContractPeriodEnd,
			}
			if row.HasLocation() {
				tr.Lon = utils.FormatNumber(*row.Lon, 5)
				tr.Lat = utils.FormatNumber(*row.Lat, 5)
			}
			page.TableRows = append(page.TableRows, tr)
		}
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render dashboard", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// chartURL escapes path and query for use in src and href attributes.
func chartURL(path string, query url.Values) template.URL {
	u := url.URL{Path: path}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return template.URL(u.String())
}

func sourceOptions(sel dashboard.Selections) []option {
	sources := energy.KnownSources()
	options := make([]option, 0, len(sources))
	for _, source := range sources {
		options = append(options, option{
			Value:    string(source),
			Label:    string(source),
			Selected: sel.Has(source),
		})
	}
	return options
}

func modeOptions(selected energy.Mode) []option {
	modes := []energy.Mode{energy.ModeSum, energy.ModeCount}
	options := make([]option, 0, len(modes))
	for _, mode := range modes {
		options = append(options, option{
			Value:    mode.String(),
			Label:    mode.Label(),
			Selected: mode == selected,
		})
	}
	return options
}

// cantonOptions lists the cantons with plants, plus the selected canton when
// it has none.
func cantonOptions(ds *energy.Dataset, selected string) []option {
	names := append([]string(nil), ds.CantonNames()...)
	found := false
	for _, name := range names {
		if name == selected {
			found = true
		}
	}
	if !found && selected != "" {
		names = append(names, selected)
		sort.Strings(names)
	}

	options := make([]option, 0, len(names))
	for _, name := range names {
		options = append(options, option{Value: name, Label: name, Selected: name == selected})
	}
	return options
}

func summaryRows(overview energy.Overview) []summaryRow {
	sources := overview.Sources()
	rows := make([]summaryRow, 0, len(sources))
	for _, source := range sources {
		rows = append(rows, summaryRow{
			Source:   string(source),
			Color:    dashboard.SourceColor(source),
			Capacity: utils.FormatNumber(overview.TotalCapacityBySource[source], 1),
			Count:    utils.FormatCount(overview.PlantCountBySource[source]),
		})
	}
	return rows
}
