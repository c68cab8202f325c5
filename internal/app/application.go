package app

import (
	"log/slog"

	"energymap.ch/internal/appconf"
	"energymap.ch/internal/energy"
	"energymap.ch/plantdb"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. The dataset is loaded once at startup and shared
// read-only by every request.
type Application struct {
	Config     appconf.Config
	DataConfig energy.DataConfig
	Logger     *slog.Logger
	Dataset    *energy.Dataset
	PlantDB    *plantdb.Client
}

// Close releases the plant table.
func (app *Application) Close() error {
	if app.PlantDB == nil {
		return nil
	}
	return app.PlantDB.Close()
}
