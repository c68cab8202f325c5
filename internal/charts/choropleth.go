package charts

import (
	"image/color"
	"io"

	"energymap.ch/internal/dashboard"
	"energymap.ch/internal/energy"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const colorBarHeight = 0.9 * vg.Inch

// WriteChoroplethSVG fills every canton boundary with the colour of its
// value. Cantons without a value are grey. The colour bar is left out when
// the values carry no range.
func WriteChoroplethSVG(w io.Writer, m dashboard.ChoroplethMap, geometry energy.CantonGeometry) error {
	colors := choroplethColors(m)

	p := plot.New()
	p.Title.Text = m.Title
	p.HideAxes()
	setMapRange(p, geometry.Bounds(), m.CenterLon, m.CenterLat)

	border := draw.LineStyle{Color: color.White, Width: vg.Points(0.75)}
	for _, name := range geometry.Names() {
		fill := missingColor
		if value, ok := m.Value(name); ok && colors != nil {
			if c, err := colors.At(value); err == nil {
				fill = toRGBA(c)
			}
		}
		shapes, err := polygonPlotters(energy.Polygons(geometry[name]), fill, border)
		if err != nil {
			return err
		}
		p.Add(shapes...)
	}

	var bar *plot.Plot
	if colors != nil {
		bar = plot.New()
		bar.Add(&plotter.ColorBar{ColorMap: colors})
		bar.HideY()
		bar.X.Label.Text = m.Metric
	}

	height := mapHeight(geometry.Bounds(), MapWidth)
	if bar != nil {
		height += colorBarHeight
	}
	return writeSVG(w, MapWidth, height, func(dc draw.Canvas) error {
		if bar == nil {
			p.Draw(dc)
			return nil
		}
		p.Draw(draw.Crop(dc, 0, 0, colorBarHeight, 0))
		bar.Draw(draw.Crop(dc, MapWidth/6, -MapWidth/6, 0, colorBarHeight-height))
		return nil
	})
}

// choroplethColors scales the colour map to the values. A single distinct
// value is placed at the top of a scale starting at zero; nil means no
// usable range.
func choroplethColors(m dashboard.ChoroplethMap) palette.ColorMap {
	if m.Empty() {
		return nil
	}
	lo, hi := m.Min, m.Max
	if hi == lo {
		if hi <= 0 {
			return nil
		}
		lo = 0
	}
	colors := moreland.ExtendedKindlmann()
	colors.SetMin(lo)
	colors.SetMax(hi)
	return colors
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
