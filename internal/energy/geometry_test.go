package energy

import (
	"errors"
	"os"
	"strings"
	"testing"

	"energymap.ch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func loadFixtureGeometry(t *testing.T) CantonGeometry {
	t.Helper()

	file, err := os.Open(models.GetFixturePath(t, "georef-switzerland-kanton.geojson"))
	require.NoError(t, err)
	defer file.Close() // nolint:errcheck

	geometry, err := LoadCantonGeometry(file, "")
	require.NoError(t, err)
	return geometry
}

func TestLoadCantonGeometry(t *testing.T) {
	geometry := loadFixtureGeometry(t)

	assert.Equal(t, []string{"Bern", "Genève", "Zürich"}, geometry.Names())

	t.Run("features sharing a name are merged", func(t *testing.T) {
		zurich, ok := geometry["Zürich"].(*geom.MultiPolygon)
		require.True(t, ok, "expected MultiPolygon, got %T", geometry["Zürich"])
		assert.Equal(t, 2, zurich.NumPolygons())
		assert.Len(t, Polygons(zurich), 2)
	})

	t.Run("array valued name property", func(t *testing.T) {
		_, ok := geometry["Genève"].(*geom.Polygon)
		assert.True(t, ok)
	})

	t.Run("centroid", func(t *testing.T) {
		lon, lat, ok := geometry.Centroid("Bern")
		require.True(t, ok)
		assert.InDelta(t, 7.5, lon, 1e-9)
		assert.InDelta(t, 46.75, lat, 1e-9)

		_, _, ok = geometry.Centroid("Uri")
		assert.False(t, ok)
	})

	t.Run("bounds", func(t *testing.T) {
		all := geometry.Bounds()
		require.False(t, all.IsEmpty())
		assert.Equal(t, 5.9, all.Min(0))
		assert.Equal(t, 9.0, all.Max(0))
		assert.Equal(t, 46.1, all.Min(1))
		assert.Equal(t, 47.7, all.Max(1))

		bern := geometry.Bounds("Bern")
		assert.Equal(t, 7.0, bern.Min(0))
		assert.Equal(t, 8.0, bern.Max(0))

		assert.True(t, geometry.Bounds("Uri").IsEmpty())
	})
}

func TestLoadCantonGeometryCustomKey(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"Uri"},
		 "geometry":{"type":"Polygon","coordinates":[[[8.4,46.6],[8.8,46.6],[8.8,46.9],[8.4,46.9],[8.4,46.6]]]}}
	]}`

	geometry, err := LoadCantonGeometry(strings.NewReader(input), "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Uri"}, geometry.Names())
}

func TestLoadCantonGeometryErrors(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{
			name:      "not json",
			input:     "<kml/>",
			errSubstr: "error parsing GeoJSON",
		},
		{
			name:      "no features",
			input:     `{"type":"FeatureCollection","features":[]}`,
			errSubstr: "no features",
		},
		{
			name: "missing name",
			input: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{"kan_code":"1"},
				 "geometry":{"type":"Polygon","coordinates":[[[8.3,47.2],[8.9,47.2],[8.9,47.7],[8.3,47.2]]]}}]}`,
			errSubstr: `property "kan_name" does not hold a canton name`,
		},
		{
			name: "point geometry",
			input: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{"kan_name":"Bern"},
				 "geometry":{"type":"Point","coordinates":[7.4,46.9]}}]}`,
			errSubstr: "unsupported geometry",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			geometry, err := LoadCantonGeometry(strings.NewReader(tc.input), DefaultCantonKey)
			require.Error(t, err)
			assert.Nil(t, geometry)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "geometry", loadErr.Stage)
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}
