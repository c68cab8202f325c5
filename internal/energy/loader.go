package energy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Column names of the power plant table.
const (
	ColumnSource            = "energy_source_level_2"
	ColumnCapacity          = "electrical_capacity"
	ColumnLon               = "lon"
	ColumnLat               = "lat"
	ColumnMunicipality      = "municipality"
	ColumnCanton            = "canton"
	ColumnCommissioningDate = "commissioning_date"
	ColumnContractPeriodEnd = "contract_period_end"
)

var requiredColumns = []string{
	ColumnSource,
	ColumnCapacity,
	ColumnLon,
	ColumnLat,
	ColumnMunicipality,
	ColumnCanton,
	ColumnCommissioningDate,
	ColumnContractPeriodEnd,
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02.01.2006",
}

// LoadReport summarises the rows that loaded but carry gaps.
type LoadReport struct {
	Rows              int
	WithoutLocation   int
	InvalidDates      int
	UnresolvedCantons map[string]int // canton code -> number of rows
}

// UnresolvedRows is the number of rows whose canton code is not in the lookup.
func (r LoadReport) UnresolvedRows() int {
	total := 0
	for _, n := range r.UnresolvedCantons {
		total += n
	}
	return total
}

// LoadPlants reads the power plant table. The header row locates the columns,
// so extra columns and any column order are accepted. A missing column, a row
// with the wrong number of fields, an empty source or an invalid capacity or
// coordinate aborts the load.
func LoadPlants(r io.Reader) ([]PlantRecord, LoadReport, error) {
	report := LoadReport{UnresolvedCantons: map[string]int{}}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, report, newLoadError("header", 1, errors.New("empty plant table"))
		}
		return nil, report, newLoadError("header", 1, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, report, newLoadError("header", 1, err)
	}

	var records []PlantRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.StartLine
			}
			return nil, report, newLoadError("row", line, err)
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRow(row, index, &report)
		if err != nil {
			return nil, report, newLoadError("row", line, err)
		}
		records = append(records, record)
	}

	report.Rows = len(records)
	return records, report, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}

	var missing []string
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRow(row []string, index map[string]int, report *LoadReport) (PlantRecord, error) {
	field := func(column string) string {
		return strings.TrimSpace(row[index[column]])
	}

	source := field(ColumnSource)
	if source == "" {
		return PlantRecord{}, fmt.Errorf("empty %s", ColumnSource)
	}

	capacity, err := parseCapacity(field(ColumnCapacity))
	if err != nil {
		return PlantRecord{}, err
	}

	record := PlantRecord{
		Source:       Source(source),
		Capacity:     capacity,
		Municipality: field(ColumnMunicipality),
		CantonCode:   strings.ToUpper(field(ColumnCanton)),
	}

	rawLon, rawLat := field(ColumnLon), field(ColumnLat)
	if rawLon != "" && rawLat != "" {
		record.Lon, err = parseCoordinate(ColumnLon, rawLon, 180)
		if err != nil {
			return PlantRecord{}, err
		}
		record.Lat, err = parseCoordinate(ColumnLat, rawLat, 90)
		if err != nil {
			return PlantRecord{}, err
		}
		record.HasLocation = true
	} else {
		report.WithoutLocation++
	}

	var ok bool
	record.CommissioningDate, ok = parseDate(field(ColumnCommissioningDate))
	if !ok {
		report.InvalidDates++
	}
	record.ContractPeriodEnd, ok = parseDate(field(ColumnContractPeriodEnd))
	if !ok {
		report.InvalidDates++
	}

	if name, found := CantonName(record.CantonCode); found {
		record.CantonName = name
	} else {
		report.UnresolvedCantons[record.CantonCode]++
	}

	return record, nil
}

func parseCapacity(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty %s", ColumnCapacity)
	}
	capacity, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", ColumnCapacity, raw, err)
	}
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative number", ColumnCapacity, raw)
	}
	return capacity, nil
}

func parseCoordinate(column, raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", column, raw, err)
	}
	if math.IsNaN(value) || value < -limit || value > limit {
		return 0, fmt.Errorf("invalid %s %q: out of range", column, raw)
	}
	return value, nil
}

// parseDate returns the zero time for an empty value. ok is false only when a
// non-empty value matches none of the known layouts.
func parseDate(raw string) (t time.Time, ok bool) {
	if raw == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
