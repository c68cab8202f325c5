package models

// PlantRow is one line of the raw plant table. Missing coordinates and
// dates are null/empty.
type PlantRow struct {
	Source             string   `json:"source"`
	ElectricalCapacity float64  `json:"electricalCapacity"`
	Lon                *float64 `json:"lon"`
	Lat                *float64 `json:"lat"`
	Municipality       string   `json:"municipality"`
	Canton             string   `json:"canton"`
	CantonCode         string   `json:"cantonCode"`
	CommissioningDate  string   `json:"commissioningDate"`
	ContractPeriodEnd  string   `json:"contractPeriodEnd"`
}

// HasLocation reports whether both coordinates are present.
func (p PlantRow) HasLocation() bool {
	return p.Lon != nil && p.Lat != nil
}
