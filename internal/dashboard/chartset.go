package dashboard

import (
	"energymap.ch/internal/energy"
	"energymap.ch/internal/models"
)

// Page and chart titles.
const (
	PageTitle         = "Clean Energy in Switzerland"
	OverviewHeader    = "General Overview"
	CantonHeader      = "Analysis by Canton"
	OverviewTitle     = "Switzerland Renewable Energy"
	CapacityBarsTitle = "Total Capacity by Source"
	CountBarsTitle    = "Number of Plants by Source"
	ChoroplethTitle   = "Clean Energy by Canton"
)

// Bar colours of the overview pair.
const (
	CapacityBarColor = "#4daf4a"
	CountBarColor    = "#377eb8"
)

var sourceColors = map[energy.Source]string{
	energy.Bioenergy: "#a65628",
	energy.Hydro:     "#377eb8",
	energy.Solar:     "#ff7f00",
	energy.Wind:      "#4daf4a",
}

const otherSourceColor = "#999999"

// SourceColor returns the marker colour of a source in the canton map.
func SourceColor(source energy.Source) string {
	if color, ok := sourceColors[source]; ok {
		return color
	}
	return otherSourceColor
}

// ChartSet is everything one dashboard view shows.
type ChartSet struct {
	Selections Selections    `json:"selections"`
	Overview   OverviewChart `json:"overview"`
	Choropleth ChoroplethMap `json:"choropleth"`
	Detail     ScatterMap    `json:"detail"`
	Table      *PlantTable   `json:"table,omitempty"`
}

// OverviewChart is the nationwide bar chart pair. It ignores the selections.
type OverviewChart struct {
	Title    string    `json:"title"`
	Capacity BarSeries `json:"capacity"`
	Count    BarSeries `json:"count"`
}

type BarSeries struct {
	Title string `json:"title"`
	Color string `json:"color"`
	Bars  []Bar  `json:"bars"`
}

type Bar struct {
	Source energy.Source `json:"source"`
	Value  float64       `json:"value"`
}

// ChoroplethMap colours every canton by its aggregated value. Regions are
// sorted by canton name; Min and Max are zero when Regions is empty.
type ChoroplethMap struct {
	Title     string               `json:"title"`
	Metric    string               `json:"metric"`
	Regions   []models.CantonValue `json:"regions"`
	Min       float64              `json:"min"`
	Max       float64              `json:"max"`
	CenterLat float64              `json:"centerLat"`
	CenterLon float64              `json:"centerLon"`
}

// Empty reports whether no canton has a value.
func (c ChoroplethMap) Empty() bool {
	return len(c.Regions) == 0
}

// Value returns the value of a canton.
func (c ChoroplethMap) Value(canton string) (float64, bool) {
	for _, region := range c.Regions {
		if region.Canton == canton {
			return region.Value, true
		}
	}
	return 0, false
}

// ScatterMap places one point per located plant of a canton.
type ScatterMap struct {
	Title     string          `json:"title"`
	Canton    string          `json:"canton"`
	CenterLat float64         `json:"centerLat"`
	CenterLon float64         `json:"centerLon"`
	Points    []PlotPoint     `json:"points"`
	Sources   []energy.Source `json:"sources"`
}

type PlotPoint struct {
	Lon          float64       `json:"lon"`
	Lat          float64       `json:"lat"`
	Source       energy.Source `json:"source"`
	Capacity     float64       `json:"capacity"`
	Municipality string        `json:"municipality"`
	Color        string        `json:"color"`
}

// PlantTable is the raw record view of the selected canton.
type PlantTable struct {
	Canton string            `json:"canton"`
	Rows   []models.PlantRow `json:"rows"`
}
