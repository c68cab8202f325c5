package energy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/xy"
)

// DefaultCantonKey is the feature property holding the canton name in the
// swisstopo/opendatasoft canton boundary file.
const DefaultCantonKey = "kan_name"

// CantonGeometry holds the boundary of each canton keyed by canton name. The
// values are *geom.Polygon or *geom.MultiPolygon. It is only used for
// rendering.
type CantonGeometry map[string]geom.T

// LoadCantonGeometry reads a GeoJSON FeatureCollection. The canton name is read
// from the property key, which may hold a string or a single-element string
// array. Features sharing a name are merged into one MultiPolygon.
func LoadCantonGeometry(r io.Reader, key string) (CantonGeometry, error) {
	if key == "" {
		key = DefaultCantonKey
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Stage: "geometry", Err: err}
	}

	var collection geojson.FeatureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, &LoadError{Stage: "geometry", Err: fmt.Errorf("error parsing GeoJSON: %w", err)}
	}
	if len(collection.Features) == 0 {
		return nil, &LoadError{Stage: "geometry", Err: errors.New("feature collection has no features")}
	}

	geometry := make(CantonGeometry, len(collection.Features))
	for i, feature := range collection.Features {
		name, err := featureName(feature, key)
		if err != nil {
			return nil, &LoadError{Stage: "geometry", Err: fmt.Errorf("feature %d: %w", i, err)}
		}

		switch feature.Geometry.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
		default:
			return nil, &LoadError{Stage: "geometry", Err: fmt.Errorf("feature %d (%s): unsupported geometry %T", i, name, feature.Geometry)}
		}

		existing, ok := geometry[name]
		if !ok {
			geometry[name] = feature.Geometry
			continue
		}
		merged, err := mergePolygons(existing, feature.Geometry)
		if err != nil {
			return nil, &LoadError{Stage: "geometry", Err: fmt.Errorf("feature %d (%s): %w", i, name, err)}
		}
		geometry[name] = merged
	}

	return geometry, nil
}

func featureName(feature *geojson.Feature, key string) (string, error) {
	if feature == nil || feature.Geometry == nil {
		return "", errors.New("missing geometry")
	}

	switch value := feature.Properties[key].(type) {
	case string:
		if name := NormalizeName(value); name != "" {
			return name, nil
		}
	case []interface{}:
		if len(value) == 1 {
			if s, ok := value[0].(string); ok && NormalizeName(s) != "" {
				return NormalizeName(s), nil
			}
		}
	}
	return "", fmt.Errorf("property %q does not hold a canton name", key)
}

func mergePolygons(geometries ...geom.T) (*geom.MultiPolygon, error) {
	merged := geom.NewMultiPolygon(geom.XY)
	for _, g := range geometries {
		for _, polygon := range Polygons(g) {
			if err := merged.Push(polygon); err != nil {
				return nil, err
			}
		}
	}
	return merged, nil
}

// Polygons flattens a Polygon or MultiPolygon into its polygons. Other
// geometry types yield nil.
func Polygons(g geom.T) []*geom.Polygon {
	switch t := g.(type) {
	case *geom.Polygon:
		return []*geom.Polygon{t}
	case *geom.MultiPolygon:
		polygons := make([]*geom.Polygon, 0, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			polygons = append(polygons, t.Polygon(i))
		}
		return polygons
	}
	return nil
}

// Names returns the canton names present in the geometry, sorted.
func (g CantonGeometry) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Centroid returns the area centroid of a canton as lon, lat.
func (g CantonGeometry) Centroid(name string) (lon, lat float64, ok bool) {
	shape, found := g[NormalizeName(name)]
	if !found {
		return 0, 0, false
	}
	centroid, err := xy.Centroid(shape)
	if err != nil || len(centroid) < 2 {
		return 0, 0, false
	}
	return centroid[0], centroid[1], true
}

// Bounds returns the bounding box of the named cantons, or of every canton
// when no names are given. The result is empty when nothing matched.
func (g CantonGeometry) Bounds(names ...string) *geom.Bounds {
	bounds := geom.NewBounds(geom.XY)
	if len(names) == 0 {
		names = g.Names()
	}
	for _, name := range names {
		if shape, ok := g[NormalizeName(name)]; ok {
			bounds.Extend(shape)
		}
	}
	return bounds
}
