package energy

import "sort"

// AggregationResult maps a canton name to one aggregated value. It is derived
// on demand and never cached.
type AggregationResult map[string]float64

// Aggregate filters records to the selected sources, groups them by canton and
// reduces each group to its total capacity (ModeSum) or plant count
// (ModeCount). An empty selection yields an empty result. Records without a
// resolved canton are skipped.
//
// Capacities are summed in ascending order per canton, so the result does not
// depend on the order of records or of selected.
func Aggregate(records []PlantRecord, selected []Source, mode Mode) AggregationResult {
	result := AggregationResult{}
	if len(selected) == 0 {
		return result
	}

	wanted := make(map[Source]bool, len(selected))
	for _, s := range selected {
		wanted[s] = true
	}

	capacities := make(map[string][]float64)
	for _, record := range records {
		if !wanted[record.Source] || !record.Resolved() {
			continue
		}
		capacities[record.CantonName] = append(capacities[record.CantonName], record.Capacity)
	}

	for canton, values := range capacities {
		if mode == ModeCount {
			result[canton] = float64(len(values))
			continue
		}
		result[canton] = orderedSum(values)
	}
	return result
}

// Total sums the values of the result.
func (r AggregationResult) Total() float64 {
	values := make([]float64, 0, len(r))
	for _, v := range r {
		values = append(values, v)
	}
	return orderedSum(values)
}

// Cantons returns the canton names of the result, sorted.
func (r AggregationResult) Cantons() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range returns the smallest and largest value. ok is false for an empty result.
func (r AggregationResult) Range() (lo, hi float64, ok bool) {
	for _, v := range r {
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// orderedSum sorts values in place and adds them smallest first.
func orderedSum(values []float64) float64 {
	sort.Float64s(values)
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
