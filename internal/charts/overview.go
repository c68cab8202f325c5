package charts

import (
	"fmt"
	"io"

	"energymap.ch/internal/dashboard"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const overviewTitleHeight = 0.5 * vg.Inch

// WriteOverviewSVG draws the capacity and plant count bars side by side.
func WriteOverviewSVG(w io.Writer, chart dashboard.OverviewChart) error {
	capacity, err := barPlot(chart.Capacity)
	if err != nil {
		return err
	}
	count, err := barPlot(chart.Count)
	if err != nil {
		return err
	}

	height := OverviewWidth / 2
	return writeSVG(w, OverviewWidth, height, func(dc draw.Canvas) error {
		title := capacity.Title.TextStyle
		title.Font.Size = vg.Points(16)
		title.XAlign = draw.XCenter
		title.YAlign = draw.YCenter
		dc.FillText(title, vg.Point{X: dc.Center().X, Y: dc.Max.Y - overviewTitleHeight/2}, chart.Title)

		tiles := draw.Tiles{
			Rows:      1,
			Cols:      2,
			PadX:      vg.Millimeter * 10,
			PadTop:    overviewTitleHeight,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		}
		plots := [][]*plot.Plot{{capacity, count}}
		canvases := plot.Align(plots, tiles, dc)
		capacity.Draw(canvases[0][0])
		count.Draw(canvases[0][1])
		return nil
	})
}

func barPlot(series dashboard.BarSeries) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = series.Title
	p.Y.Min = 0

	if len(series.Bars) == 0 {
		p.HideX()
		return p, nil
	}

	values := make(plotter.Values, len(series.Bars))
	names := make([]string, len(series.Bars))
	for i, bar := range series.Bars {
		values[i] = bar.Value
		names[i] = string(bar.Source)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("error building %q bars: %w", series.Title, err)
	}
	bars.Color = parseHexColor(series.Color)
	bars.LineStyle.Width = vg.Points(1.5)

	p.Add(bars)
	p.Add(plotter.NewGrid())
	p.NominalX(names...)
	return p, nil
}
