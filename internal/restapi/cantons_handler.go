package restapi

import (
	"net/http"

	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/models"
)

// cantonsHandler returns the aggregation of the selected sources per canton.
// Cantons without a matching plant are absent from the list.
func (api *RestAPI) cantonsHandler(w http.ResponseWriter, r *http.Request) {
	sel, fieldErrors := dashboard.ParseSelections(r.URL.Query(), api.Dataset)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result := energy.Aggregate(api.Dataset.Records, sel.Sources, sel.Mode)
	choropleth := dashboard.RenderChoropleth(result, sel.Mode)

	references := models.NewEmptyReferences()
	for _, region := range choropleth.Regions {
		references.Cantons = append(references.Cantons, api.cantonReference(region.Canton))
	}
	for _, source := range sel.Sources {
		references.Sources = append(references.Sources, string(source))
	}

	api.sendResponse(w, r, models.NewListResponse(choropleth.Regions, references))
}

// cantonReference describes a canton with the centre of its boundary, or the
// centre of the country when no boundary was loaded.
func (api *RestAPI) cantonReference(name string) models.CantonReference {
	code, _ := energy.CantonCode(name)
	ref := models.CantonReference{
		Code:      code,
		Name:      name,
		CenterLat: models.SwitzerlandCenterLat,
		CenterLon: models.SwitzerlandCenterLon,
	}
	if lon, lat, ok := api.Dataset.Geometry.Centroid(name); ok {
		ref.CenterLon, ref.CenterLat = lon, lat
	}
	return ref
}
