package webui

import (
	"energymap.ch/internal/app"
)

// WebUI serves the HTML pages. The pages only embed the chart and table
// endpoints of the REST API.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}
