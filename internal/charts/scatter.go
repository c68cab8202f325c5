package charts

import (
	"fmt"
	"io"
	"math"

	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/energy"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	minGlyphRadius = 2.5
	maxGlyphRadius = 10
)

// WriteScatterSVG draws the canton outline and one marker per plant,
// coloured by source and sized by capacity. A map without points is still
// a valid image.
func WriteScatterSVG(w io.Writer, m dashboard.ScatterMap, geometry energy.CantonGeometry) error {
	p := plot.New()
	p.Title.Text = m.Title
	p.HideAxes()
	p.Legend.Top = true

	bounds := geom.NewBounds(geom.XY)
	if shape, ok := geometry[m.Canton]; ok {
		bounds.Extend(shape)
		outline := draw.LineStyle{Color: outlineColor, Width: vg.Points(1)}
		shapes, err := polygonPlotters(energy.Polygons(shape), nil, outline)
		if err != nil {
			return err
		}
		p.Add(shapes...)
	}
	for _, point := range m.Points {
		bounds.Extend(geom.NewPointFlat(geom.XY, []float64{point.Lon, point.Lat}))
	}
	setMapRange(p, bounds, m.CenterLon, m.CenterLat)

	maxCapacity := 0.0
	for _, point := range m.Points {
		maxCapacity = math.Max(maxCapacity, point.Capacity)
	}

	for _, source := range m.Sources {
		var xys plotter.XYs
		var radii []vg.Length
		for _, point := range m.Points {
			if point.Source != source {
				continue
			}
			xys = append(xys, plotter.XY{X: point.Lon, Y: point.Lat})
			radii = append(radii, glyphRadius(point.Capacity, maxCapacity))
		}
		if len(xys) == 0 {
			continue
		}

		markers, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("error building %s markers: %w", source, err)
		}
		markers.GlyphStyle.Color = parseHexColor(dashboard.SourceColor(source))
		markers.GlyphStyle.Shape = draw.CircleGlyph{}
		markers.GlyphStyle.Radius = vg.Points(minGlyphRadius)
		style := markers.GlyphStyle
		markers.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			s := style
			s.Radius = radii[i]
			return s
		}

		p.Add(markers)
		p.Legend.Add(string(source), markers)
	}

	return writeSVG(w, MapWidth, mapHeight(bounds, MapWidth), func(dc draw.Canvas) error {
		p.Draw(dc)
		return nil
	})
}

// glyphRadius scales marker area with capacity.
func glyphRadius(capacity, maxCapacity float64) vg.Length {
	if maxCapacity <= 0 || capacity <= 0 {
		return vg.Points(minGlyphRadius)
	}
	r := minGlyphRadius + (maxGlyphRadius-minGlyphRadius)*math.Sqrt(capacity/maxCapacity)
	return vg.Points(r)
}
