package energy

import "sort"

// Overview is the nationwide summary per energy source.
type Overview struct {
	TotalCapacityBySource map[Source]float64
	PlantCountBySource    map[Source]int
}

// Summarize groups every record by energy source. Both maps carry exactly the
// sources present in records.
func Summarize(records []PlantRecord) Overview {
	capacities := make(map[Source][]float64)
	for _, record := range records {
		capacities[record.Source] = append(capacities[record.Source], record.Capacity)
	}

	overview := Overview{
		TotalCapacityBySource: make(map[Source]float64, len(capacities)),
		PlantCountBySource:    make(map[Source]int, len(capacities)),
	}
	for source, values := range capacities {
		overview.PlantCountBySource[source] = len(values)
		overview.TotalCapacityBySource[source] = orderedSum(values)
	}
	return overview
}

// Sources returns the sources of the overview, sorted by name.
func (o Overview) Sources() []Source {
	sources := make([]Source, 0, len(o.PlantCountBySource))
	for source := range o.PlantCountBySource {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}
