package app

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"energymap.ch/internal/appconf"
	"energymap.ch/internal/energy"
	"energymap.ch/internal/logging"
	"energymap.ch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDataConfig(t *testing.T) energy.DataConfig {
	return energy.DataConfig{
		PlantsPath:  models.GetFixturePath(t, "renewable_power_plants_CH.csv"),
		CantonsPath: models.GetFixturePath(t, "georef-switzerland-kanton.geojson"),
		CantonKey:   energy.DefaultCantonKey,
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)
	config := appconf.Config{Env: appconf.Test}

	application, err := New(context.Background(), config, fixtureDataConfig(t), logger)
	require.NoError(t, err)
	defer func() { _ = application.Close() }()

	assert.Len(t, application.Dataset.Records, 7)
	require.NotNil(t, application.PlantDB)

	count, err := application.PlantDB.CountPlantsInCanton(context.Background(), "Zürich")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	output := buf.String()
	assert.Contains(t, output, `"msg":"dataset_loaded"`)
	assert.Contains(t, output, `"plants":7`)
	assert.Contains(t, output, `"msg":"plants with unknown canton code are left out of canton views"`)
	assert.Contains(t, output, `"codes":["XX"]`)
	assert.Contains(t, output, `"msg":"plants without coordinates are left out of canton maps"`)
}

func TestNewFailsOnMissingData(t *testing.T) {
	dataConfig := fixtureDataConfig(t)
	dataConfig.CantonsPath = filepath.Join(t.TempDir(), "missing.geojson")

	application, err := New(context.Background(), appconf.Config{Env: appconf.Test}, dataConfig, nil)
	assert.Nil(t, application)

	var loadErr *energy.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "open", loadErr.Stage)
}

func TestNewRejectsDatabaseFileInTests(t *testing.T) {
	config := appconf.Config{Env: appconf.Test, DBPath: filepath.Join(t.TempDir(), "plants.db")}

	_, err := New(context.Background(), config, fixtureDataConfig(t), nil)
	assert.Error(t, err)
}

func TestCloseWithoutPlantTable(t *testing.T) {
	application := &Application{}
	assert.NoError(t, application.Close())
}
