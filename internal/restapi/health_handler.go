package restapi

import (
	"net/http"

	"energymap.ch/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := models.HealthModel{
		Status:            "ok",
		Plants:            len(api.Dataset.Records),
		Cantons:           len(api.Dataset.CantonNames()),
		CantonBoundaries:  len(api.Dataset.Geometry),
		UnresolvedRecords: api.Dataset.Report.UnresolvedRows(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(health, models.NewEmptyReferences()))
}
