package energy

import (
	"errors"
	"fmt"
	"os"
	"sort"
)

// DataConfig locates the input files.
type DataConfig struct {
	PlantsPath  string
	CantonsPath string
	CantonKey   string
}

// Dataset is the immutable in-memory state shared by every request.
type Dataset struct {
	Records  []PlantRecord
	Geometry CantonGeometry
	Report   LoadReport

	cantons []string
}

// NewDataset wraps already loaded records and geometry.
func NewDataset(records []PlantRecord, geometry CantonGeometry, report LoadReport) *Dataset {
	seen := make(map[string]bool)
	var cantons []string
	for _, record := range records {
		if record.Resolved() && !seen[record.CantonName] {
			seen[record.CantonName] = true
			cantons = append(cantons, record.CantonName)
		}
	}
	sort.Strings(cantons)

	return &Dataset{
		Records:  records,
		Geometry: geometry,
		Report:   report,
		cantons:  cantons,
	}
}

// LoadDataset reads the plant table and the canton geometry. Any failure is
// fatal for the caller; there is no partial load.
func LoadDataset(config DataConfig) (*Dataset, error) {
	plantsFile, err := os.Open(config.PlantsPath)
	if err != nil {
		return nil, &LoadError{Stage: "open", File: config.PlantsPath, Err: err}
	}
	defer plantsFile.Close() // nolint:errcheck

	records, report, err := LoadPlants(plantsFile)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.File = config.PlantsPath
		}
		return nil, err
	}

	cantonsFile, err := os.Open(config.CantonsPath)
	if err != nil {
		return nil, &LoadError{Stage: "open", File: config.CantonsPath, Err: err}
	}
	defer cantonsFile.Close() // nolint:errcheck

	geometry, err := LoadCantonGeometry(cantonsFile, config.CantonKey)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.File = config.CantonsPath
		}
		return nil, err
	}

	return NewDataset(records, geometry, report), nil
}

// CantonNames returns the resolved canton names present in the plant table,
// sorted. These are the choices of the canton selector.
func (ds *Dataset) CantonNames() []string {
	return ds.cantons
}

// HasCanton reports whether at least one plant belongs to the named canton.
func (ds *Dataset) HasCanton(name string) bool {
	name = NormalizeName(name)
	i := sort.SearchStrings(ds.cantons, name)
	return i < len(ds.cantons) && ds.cantons[i] == name
}

// MissingGeometry lists canton names present in the plant table that have no
// boundary in the geometry file.
func (ds *Dataset) MissingGeometry() []string {
	var missing []string
	for _, name := range ds.cantons {
		if _, ok := ds.Geometry[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("%d plants in %d cantons, %d canton boundaries", len(ds.Records), len(ds.cantons), len(ds.Geometry))
}
