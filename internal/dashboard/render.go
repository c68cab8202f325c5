package dashboard

import (
	"fmt"
	"sort"

	"energymap.ch/internal/energy"
	"energymap.ch/internal/models"
)

// Render builds the charts for one set of selections. It only reads ds.
func Render(sel Selections, ds *energy.Dataset) ChartSet {
	set := ChartSet{
		Selections: sel,
		Overview:   RenderOverview(energy.Summarize(ds.Records)),
		Choropleth: RenderChoropleth(energy.Aggregate(ds.Records, sel.Sources, sel.Mode), sel.Mode),
		Detail:     RenderDetail(ds, sel.Canton),
	}
	if sel.ShowTable {
		table := RenderTable(ds, sel.Canton)
		set.Table = &table
	}
	return set
}

// RenderOverview turns the per-source summary into the bar chart pair.
func RenderOverview(overview energy.Overview) OverviewChart {
	sources := overview.Sources()
	capacity := BarSeries{Title: CapacityBarsTitle, Color: CapacityBarColor, Bars: make([]Bar, 0, len(sources))}
	count := BarSeries{Title: CountBarsTitle, Color: CountBarColor, Bars: make([]Bar, 0, len(sources))}
	for _, source := range sources {
		capacity.Bars = append(capacity.Bars, Bar{Source: source, Value: overview.TotalCapacityBySource[source]})
		count.Bars = append(count.Bars, Bar{Source: source, Value: float64(overview.PlantCountBySource[source])})
	}
	return OverviewChart{
		Title:    OverviewTitle,
		Capacity: capacity,
		Count:    count,
	}
}

// RenderChoropleth lists the aggregated cantons in name order.
func RenderChoropleth(result energy.AggregationResult, mode energy.Mode) ChoroplethMap {
	regions := make([]models.CantonValue, 0, len(result))
	for _, canton := range result.Cantons() {
		regions = append(regions, models.CantonValue{Canton: canton, Value: result[canton]})
	}
	lo, hi, _ := result.Range()
	return ChoroplethMap{
		Title:     ChoroplethTitle,
		Metric:    mode.Label(),
		Regions:   regions,
		Min:       lo,
		Max:       hi,
		CenterLat: models.SwitzerlandCenterLat,
		CenterLon: models.SwitzerlandCenterLon,
	}
}

// RenderDetail places the located plants of one canton. A canton without
// plants yields an empty point list.
func RenderDetail(ds *energy.Dataset, canton string) ScatterMap {
	canton = energy.NormalizeName(canton)
	located := energy.Located(energy.PlantsInCanton(ds.Records, canton))

	points := make([]PlotPoint, 0, len(located))
	present := make(map[energy.Source]bool)
	for _, record := range located {
		points = append(points, PlotPoint{
			Lon:          record.Lon,
			Lat:          record.Lat,
			Source:       record.Source,
			Capacity:     record.Capacity,
			Municipality: record.Municipality,
			Color:        SourceColor(record.Source),
		})
		present[record.Source] = true
	}

	detail := ScatterMap{
		Title:     fmt.Sprintf("Renewable Plants in %s", canton),
		Canton:    canton,
		CenterLat: models.SwitzerlandCenterLat,
		CenterLon: models.SwitzerlandCenterLon,
		Points:    points,
		Sources:   legendSources(present),
	}
	if lon, lat, ok := ds.Geometry.Centroid(canton); ok {
		detail.CenterLon, detail.CenterLat = lon, lat
	}
	return detail
}

// legendSources orders the known sources first, then any others by name.
func legendSources(present map[energy.Source]bool) []energy.Source {
	sources := make([]energy.Source, 0, len(present))
	for _, source := range energy.KnownSources() {
		if present[source] {
			sources = append(sources, source)
		}
	}
	var others []energy.Source
	for source := range present {
		if !source.IsKnown() {
			others = append(others, source)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i] < others[j] })
	return append(sources, others...)
}

// RenderTable lists every record of the canton in load order, including
// plants without coordinates.
func RenderTable(ds *energy.Dataset, canton string) PlantTable {
	canton = energy.NormalizeName(canton)
	records := energy.PlantsInCanton(ds.Records, canton)
	return PlantTable{
		Canton: canton,
		Rows:   PlantRows(records),
	}
}

// PlantRows converts records into table rows.
func PlantRows(records []energy.PlantRecord) []models.PlantRow {
	rows := make([]models.PlantRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, PlantRow(record))
	}
	return rows
}

// PlantRow converts one record into its table representation.
func PlantRow(record energy.PlantRecord) models.PlantRow {
	row := models.PlantRow{
		Source:             string(record.Source),
		ElectricalCapacity: record.Capacity,
		Municipality:       record.Municipality,
		Canton:             record.CantonName,
		CantonCode:         record.CantonCode,
		CommissioningDate:  formatDate(record.CommissioningDate),
		ContractPeriodEnd:  formatDate(record.ContractPeriodEnd),
	}
	if record.HasLocation {
		lon, lat := record.Lon, record.Lat
		row.Lon, row.Lat = &lon, &lat
	}
	return row
}
