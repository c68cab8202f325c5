package energy

import "time"

// PlantRecord is one renewable power plant. Records are created by the loader
// and never modified afterwards.
type PlantRecord struct {
	Source            Source
	Capacity          float64 // electrical capacity, dataset units (MW)
	Lon               float64
	Lat               float64
	HasLocation       bool
	Municipality      string
	CantonCode        string
	CantonName        string // empty when CantonCode is not a known canton
	CommissioningDate time.Time
	ContractPeriodEnd time.Time
}

// Resolved reports whether the record belongs to a known canton.
func (p PlantRecord) Resolved() bool {
	return p.CantonName != ""
}
