package restapi

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"energymap.ch/internal/export"
	"energymap.ch/internal/models"
	"energymap.ch/internal/utils"
	"energymap.ch/plantdb"
)

const (
	defaultPlantsLimit = 50
	maxPlantsLimit     = 500
)

// parseSort validates the sort parameter. A leading "-" sorts descending.
func parseSort(r *http.Request, fieldErrors map[string][]string) string {
	sort := r.URL.Query().Get("sort")
	if sort == "" {
		return plantdb.SortLoadOrder
	}
	if err := utils.ValidateChoice("sort", strings.TrimPrefix(sort, "-"), plantdb.SortKeys()); err != nil {
		fieldErrors["sort"] = append(fieldErrors["sort"], err.Error())
	}
	return sort
}

func (api *RestAPI) plantsHandler(w http.ResponseWriter, r *http.Request) {
	canton, ok := api.cantonFromPath(w, r, "name", ".json")
	if !ok {
		return
	}

	params := r.URL.Query()
	limit, fieldErrors := utils.ParseIntParam(params, "limit", defaultPlantsLimit, nil)
	offset, fieldErrors := utils.ParseIntParam(params, "offset", 0, fieldErrors)
	for field, errs := range utils.ValidatePaging(limit, offset, maxPlantsLimit) {
		fieldErrors[field] = append(fieldErrors[field], errs...)
	}
	sort := parseSort(r, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	total, err := api.PlantDB.CountPlantsInCanton(ctx, canton)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	rows, err := api.PlantDB.PlantsInCanton(ctx, plantdb.PlantQuery{
		Canton: canton,
		Sort:   sort,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	references := models.NewEmptyReferences()
	references.Cantons = append(references.Cantons, api.cantonReference(canton))
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row.Source] {
			seen[row.Source] = true
			references.Sources = append(references.Sources, row.Source)
		}
	}

	limitExceeded := offset+len(rows) < total
	api.sendResponse(w, r, models.NewListResponseWithRange(rows, references, limitExceeded))
}

// plantsXLSXHandler sends every plant of a canton as a spreadsheet.
func (api *RestAPI) plantsXLSXHandler(w http.ResponseWriter, r *http.Request) {
	canton, ok := api.cantonFromPath(w, r, "name", ".xlsx")
	if !ok {
		return
	}

	fieldErrors := make(map[string][]string)
	sort := parseSort(r, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rows, err := api.PlantDB.PlantsInCanton(r.Context(), plantdb.PlantQuery{Canton: canton, Sort: sort})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WritePlantsXLSX(&buf, canton, rows); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": export.SheetName(canton) + ".xlsx",
	}))
	api.sendBytes(w, r, export.ContentType, &buf)
}
