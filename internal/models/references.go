package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Cantons []CantonReference `json:"cantons"`
	Sources []string          `json:"sources"`
}

// CantonReference describes a canton mentioned by a response.
type CantonReference struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Cantons: []CantonReference{},
		Sources: []string{},
	}
}
