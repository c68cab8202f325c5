package restapi

import (
	"net/http"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/models"
)

func (api *RestAPI) overviewHandler(w http.ResponseWriter, r *http.Request) {
	overview := energy.Summarize(api.Dataset.Records)

	sources := overview.Sources()
	list := make([]models.SourceSummary, 0, len(sources))
	references := models.NewEmptyReferences()
	for _, source := range sources {
		list = append(list, models.SourceSummary{
			Source:        string(source),
			TotalCapacity: overview.TotalCapacityBySource[source],
			PlantCount:    overview.PlantCountBySource[source],
		})
		references.Sources = append(references.Sources, string(source))
	}

	api.sendResponse(w, r, models.NewListResponse(list, references))
}
