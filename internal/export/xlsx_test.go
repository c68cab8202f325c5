package export

import (
	"bytes"
	"testing"

	"energymap.ch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWritePlantsXLSX(t *testing.T) {
	lon, lat := 8.54, 47.37
	rows := []models.PlantRow{
		{
			Source:             "Hydro",
			ElectricalCapacity: 10,
			Lon:                &lon,
			Lat:                &lat,
			Municipality:       "Zürich",
			Canton:             "Zürich",
			CantonCode:         "ZH",
			CommissioningDate:  "2005-06-01",
			ContractPeriodEnd:  "2030-12-31",
		},
		{
			Source:             "Bioenergy",
			ElectricalCapacity: 0.5,
			Municipality:       "Winterthur",
			Canton:             "Zürich",
			CantonCode:         "ZH",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePlantsXLSX(&buf, "Zürich", rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Zürich"}, f.GetSheetList())

	got, err := f.GetRows("Zürich")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, plantHeaders, got[0])
	assert.Equal(t, []string{"Hydro", "10", "8.54", "47.37", "Zürich", "Zürich", "ZH", "2005-06-01", "2030-12-31"}, got[1])
	assert.Equal(t, "Bioenergy", got[2][0])
	assert.Equal(t, "0.5", got[2][1])
	assert.Equal(t, "", got[2][2])
	assert.Equal(t, "Winterthur", got[2][4])
}

func TestWritePlantsXLSXWithoutRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlantsXLSX(&buf, "Uri", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetRows("Uri")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, plantHeaders, got[0])
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Bern", want: "Bern"},
		{in: "  St. Gallen ", want: "St. Gallen"},
		{in: "a/b[c]", want: "a_b_c_"},
		{in: "", want: "Plants"},
		{in: "Appenzell Ausserrhoden und noch mehr Text", want: "Appenzell Ausserrhoden und noch"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SheetName(tt.in))
		})
	}
}
