package restapi

import (
	"net/http"

	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/models"
)

func (api *RestAPI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	sel, fieldErrors := dashboard.ParseSelections(r.URL.Query(), api.Dataset)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	set := dashboard.Render(sel, api.Dataset)

	references := models.NewEmptyReferences()
	if sel.Canton != "" {
		references.Cantons = append(references.Cantons, api.cantonReference(sel.Canton))
	}
	for _, source := range set.Detail.Sources {
		references.Sources = append(references.Sources, string(source))
	}

	api.sendResponse(w, r, models.NewEntryResponse(set, references))
}
