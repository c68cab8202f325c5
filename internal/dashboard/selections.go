package dashboard

import (
	"net/url"
	"strconv"
	"strings"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/utils"
)

// Query parameter names shared by the widgets and the API.
const (
	ParamSources = "sources"
	ParamMode    = "mode"
	ParamCanton  = "canton"
	ParamTable   = "table"
)

// Selections is the complete widget state of one dashboard view.
type Selections struct {
	Sources   []energy.Source `json:"sources"`
	Mode      energy.Mode     `json:"mode"`
	Canton    string          `json:"canton"`
	ShowTable bool            `json:"showTable"`
}

// DefaultSelections selects every known source, total capacity, the first
// canton of the dataset and hides the table.
func DefaultSelections(ds *energy.Dataset) Selections {
	sel := Selections{
		Sources: energy.KnownSources(),
		Mode:    energy.ModeSum,
	}
	if cantons := ds.CantonNames(); len(cantons) > 0 {
		sel.Canton = cantons[0]
	}
	return sel
}

// ParseSelections reads the widget state from query values, falling back to
// DefaultSelections for absent parameters. A present but empty sources
// parameter is an explicit empty selection. Invalid values are reported per
// field.
func ParseSelections(values url.Values, ds *energy.Dataset) (Selections, map[string][]string) {
	sel := DefaultSelections(ds)
	fieldErrors := make(map[string][]string)

	if raw, ok := values[ParamSources]; ok {
		sources, errs := parseSources(raw)
		sel.Sources = sources
		if len(errs) > 0 {
			fieldErrors[ParamSources] = errs
		}
	}

	if raw := values.Get(ParamMode); raw != "" {
		mode, err := energy.ParseMode(raw)
		if err != nil {
			fieldErrors[ParamMode] = append(fieldErrors[ParamMode], err.Error())
		}
		sel.Mode = mode
	}

	if raw := values.Get(ParamCanton); raw != "" {
		canton, err := utils.ValidateCantonName(raw)
		if err == nil && !energy.IsCantonName(canton) {
			err = utils.ErrUnknownCanton
		}
		if err != nil {
			fieldErrors[ParamCanton] = append(fieldErrors[ParamCanton], err.Error())
		}
		sel.Canton = canton
	}

	if raw := values.Get(ParamTable); raw != "" {
		show, err := parseToggle(raw)
		if err != nil {
			fieldErrors[ParamTable] = append(fieldErrors[ParamTable], err.Error())
		}
		sel.ShowTable = show
	}

	return sel, fieldErrors
}

// parseSources accepts repeated parameters as well as comma separated lists
// and returns the sources in selector order without duplicates.
func parseSources(raw []string) ([]energy.Source, []string) {
	selected := make(map[energy.Source]bool)
	var errs []string
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			source, err := energy.ParseSource(part)
			if err != nil {
				errs = append(errs, err.Error())
				continue
			}
			selected[source] = true
		}
	}

	sources := []energy.Source{}
	for _, source := range energy.KnownSources() {
		if selected[source] {
			sources = append(sources, source)
		}
	}
	return sources, errs
}

func parseToggle(raw string) (bool, error) {
	if strings.EqualFold(raw, "on") {
		return true, nil
	}
	return strconv.ParseBool(raw)
}

// Has reports whether source is selected.
func (s Selections) Has(source energy.Source) bool {
	for _, selected := range s.Sources {
		if selected == source {
			return true
		}
	}
	return false
}

// Query encodes the selections so that ParseSelections restores them.
func (s Selections) Query() url.Values {
	values := url.Values{}
	names := make([]string, len(s.Sources))
	for i, source := range s.Sources {
		names[i] = string(source)
	}
	values.Set(ParamSources, strings.Join(names, ","))
	values.Set(ParamMode, s.Mode.String())
	if s.Canton != "" {
		values.Set(ParamCanton, s.Canton)
	}
	if s.ShowTable {
		values.Set(ParamTable, "true")
	}
	return values
}
