package restapi

import (
	"net/http"

	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/models"
	"energymap.ch/internal/utils"
)

type cantonDetail struct {
	Detail dashboard.ScatterMap  `json:"detail"`
	Table  *dashboard.PlantTable `json:"table,omitempty"`
}

// cantonFromPath validates the canton path parameter. It writes the error
// response itself and reports false when the request cannot go on.
func (api *RestAPI) cantonFromPath(w http.ResponseWriter, r *http.Request, param string, extensions ...string) (string, bool) {
	name, err := utils.ValidateCantonName(utils.ExtractPathValue(r, param, extensions...))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {err.Error()},
		})
		return "", false
	}
	if !energy.IsCantonName(name) {
		api.sendNotFound(w, r)
		return "", false
	}
	return name, true
}

func (api *RestAPI) cantonDetailHandler(w http.ResponseWriter, r *http.Request) {
	canton, ok := api.cantonFromPath(w, r, "name")
	if !ok {
		return
	}

	entry := cantonDetail{Detail: dashboard.RenderDetail(api.Dataset, canton)}

	if raw := r.URL.Query().Get(dashboard.ParamTable); raw != "" {
		sel, fieldErrors := dashboard.ParseSelections(r.URL.Query(), api.Dataset)
		if len(fieldErrors[dashboard.ParamTable]) > 0 {
			api.validationErrorResponse(w, r, map[string][]string{
				dashboard.ParamTable: fieldErrors[dashboard.ParamTable],
			})
			return
		}
		if sel.ShowTable {
			table := dashboard.RenderTable(api.Dataset, canton)
			entry.Table = &table
		}
	}

	references := models.NewEmptyReferences()
	references.Cantons = append(references.Cantons, api.cantonReference(canton))
	for _, source := range entry.Detail.Sources {
		references.Sources = append(references.Sources, string(source))
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}
