package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ContentType is the media type written by every chart function.
const ContentType = "image/svg+xml"

// Default canvas widths.
const (
	OverviewWidth = 10 * vg.Inch
	MapWidth      = 10 * vg.Inch
)

var (
	missingColor = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	outlineColor = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// writeSVG draws onto a fresh SVG canvas and writes the document to w.
func writeSVG(w io.Writer, width, height vg.Length, drawFn func(dc draw.Canvas) error) error {
	canvas := vgsvg.New(width, height)
	if err := drawFn(draw.New(canvas)); err != nil {
		return err
	}
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("error writing svg: %w", err)
	}
	return nil
}

// parseHexColor parses "#rrggbb". Malformed input yields the missing-value grey.
func parseHexColor(hex string) color.Color {
	var r, g, b uint8
	if len(hex) != 7 || hex[0] != '#' {
		return missingColor
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return missingColor
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// mapHeight keeps an equirectangular map undistorted at the bounds' mean
// latitude.
func mapHeight(bounds *geom.Bounds, width vg.Length) vg.Length {
	if bounds == nil || bounds.IsEmpty() {
		return width * 2 / 3
	}
	dLon := bounds.Max(0) - bounds.Min(0)
	dLat := bounds.Max(1) - bounds.Min(1)
	midLat := (bounds.Max(1) + bounds.Min(1)) / 2
	scale := math.Cos(midLat * math.Pi / 180)
	if dLon <= 0 || dLat <= 0 || scale <= 0 {
		return width * 2 / 3
	}
	ratio := dLat / (dLon * scale)
	ratio = math.Max(0.3, math.Min(1.5, ratio))
	return vg.Length(ratio) * width
}

// setMapRange frames the plot on bounds with a small margin. An empty bounds
// centres a one degree window on lon, lat.
func setMapRange(p *plot.Plot, bounds *geom.Bounds, lon, lat float64) {
	if bounds == nil || bounds.IsEmpty() {
		p.X.Min, p.X.Max = lon-0.5, lon+0.5
		p.Y.Min, p.Y.Max = lat-0.5, lat+0.5
		return
	}
	padX := math.Max((bounds.Max(0)-bounds.Min(0))*0.03, 0.01)
	padY := math.Max((bounds.Max(1)-bounds.Min(1))*0.03, 0.01)
	p.X.Min, p.X.Max = bounds.Min(0)-padX, bounds.Max(0)+padX
	p.Y.Min, p.Y.Max = bounds.Min(1)-padY, bounds.Max(1)+padY
}

// polygonPlotters converts boundary polygons into plotters with the given
// fill. A nil fill draws the outline only.
func polygonPlotters(polygons []*geom.Polygon, fill color.Color, line draw.LineStyle) ([]plot.Plotter, error) {
	plotters := make([]plot.Plotter, 0, len(polygons))
	for _, polygon := range polygons {
		rings := make([]plotter.XYer, 0, polygon.NumLinearRings())
		for _, ring := range polygon.Coords() {
			xys := make(plotter.XYs, len(ring))
			for i, coord := range ring {
				xys[i].X, xys[i].Y = coord.X(), coord.Y()
			}
			rings = append(rings, xys)
		}
		shape, err := plotter.NewPolygon(rings...)
		if err != nil {
			return nil, fmt.Errorf("error building polygon: %w", err)
		}
		shape.Color = fill
		shape.LineStyle = line
		plotters = append(plotters, shape)
	}
	return plotters, nil
}
