package models

// SourceSummary is one row of the nationwide overview.
type SourceSummary struct {
	Source        string  `json:"source"`
	TotalCapacity float64 `json:"totalCapacity"`
	PlantCount    int     `json:"plantCount"`
}

// CantonValue is the aggregated value of one canton.
type CantonValue struct {
	Canton string  `json:"canton"`
	Value  float64 `json:"value"`
}

// HealthModel is the payload of the liveness endpoint.
type HealthModel struct {
	Status            string `json:"status"`
	Plants            int    `json:"plants"`
	Cantons           int    `json:"cantons"`
	CantonBoundaries  int    `json:"cantonBoundaries"`
	UnresolvedRecords int    `json:"unresolvedRecords"`
}
