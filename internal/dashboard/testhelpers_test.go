package dashboard

import (
	"testing"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/models"
	"github.com/stretchr/testify/require"
)

func loadFixtureDataset(t *testing.T) *energy.Dataset {
	t.Helper()
	ds, err := energy.LoadDataset(energy.DataConfig{
		PlantsPath:  models.GetFixturePath(t, "renewable_power_plants_CH.csv"),
		CantonsPath: models.GetFixturePath(t, "georef-switzerland-kanton.geojson"),
		CantonKey:   energy.DefaultCantonKey,
	})
	require.NoError(t, err)
	return ds
}

// scenarioDataset holds two Zürich plants and one Bern plant without geometry.
func scenarioDataset() *energy.Dataset {
	records := []energy.PlantRecord{
		{Source: energy.Hydro, Capacity: 10, CantonCode: "ZH", CantonName: "Zürich", Lon: 8.54, Lat: 47.37, HasLocation: true},
		{Source: energy.Solar, Capacity: 5, CantonCode: "ZH", CantonName: "Zürich", Lon: 8.6, Lat: 47.4, HasLocation: true},
		{Source: energy.Hydro, Capacity: 3, CantonCode: "BE", CantonName: "Bern", Lon: 7.45, Lat: 46.95, HasLocation: true},
	}
	return energy.NewDataset(records, energy.CantonGeometry{}, energy.LoadReport{Rows: len(records)})
}
