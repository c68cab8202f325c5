package energy

import (
	"fmt"
	"strings"
)

// Source is the coarse renewable-energy category of a plant
// (the energy_source_level_2 column).
type Source string

const (
	Bioenergy Source = "Bioenergy"
	Hydro     Source = "Hydro"
	Solar     Source = "Solar"
	Wind      Source = "Wind"
)

// KnownSources returns the categories offered by the source selector, in display order.
func KnownSources() []Source {
	return []Source{Bioenergy, Hydro, Solar, Wind}
}

// IsKnown reports whether s is one of KnownSources.
func (s Source) IsKnown() bool {
	switch s {
	case Bioenergy, Hydro, Solar, Wind:
		return true
	}
	return false
}

// ParseSource matches a selector value case-insensitively against KnownSources.
func ParseSource(value string) (Source, error) {
	trimmed := strings.TrimSpace(value)
	for _, s := range KnownSources() {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown energy source %q", value)
}

// Mode selects how plants are reduced to one number per canton.
type Mode int

const (
	ModeSum Mode = iota
	ModeCount
)

// ParseMode accepts the short query values ("sum", "count") as well as the
// widget labels shown on the dashboard.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sum", "total capacity", "capacity":
		return ModeSum, nil
	case "count", "number of plants", "number of sources":
		return ModeCount, nil
	}
	return ModeSum, fmt.Errorf("unknown aggregation mode %q", value)
}

func (m Mode) String() string {
	if m == ModeCount {
		return "count"
	}
	return "sum"
}

// Label is the human readable name used by the widgets and chart legends.
func (m Mode) Label() string {
	if m == ModeCount {
		return "Number of Plants"
	}
	return "Total Capacity"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
