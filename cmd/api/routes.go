package main

import (
	"net/http"

	"energymap.ch/internal/app"
	"energymap.ch/internal/restapi"
	"energymap.ch/internal/webui"
)

// routes registers the pages and the API on one mux behind the shared
// middleware.
func routes(application *app.Application) (http.Handler, *restapi.RestAPI) {
	mux := http.NewServeMux()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(mux)

	webUI := webui.NewWebUI(application)
	webUI.SetWebUIRoutes(mux)

	return api.Handler(mux), api
}
