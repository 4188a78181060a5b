package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// FactorDatasetMajorVersion is the factor dataset schema major version this
// build understands. Datasets with a different major version are rejected.
const FactorDatasetMajorVersion = 1

// Factor table validation errors.
var (
	ErrFactorsFileMissing     = errors.New("emission factors file not found")
	ErrFactorsEmpty           = errors.New("factor table must define at least one region")
	ErrFactorsVersionMissing  = errors.New("factor dataset version is required")
	ErrFactorsVersionInvalid  = errors.New("factor dataset version is not valid semver")
	ErrFactorsVersionMismatch = errors.New("unsupported factor dataset major version")
	ErrTransportModesMissing  = errors.New("region must define at least one transport mode")
	ErrDietTypesMissing       = errors.New("region must define at least one diet type")
	ErrFactorNegative         = errors.New("emission factor cannot be negative")
)

// RegionFactors holds the emission factors for a single region. Every field
// is required: a region entry that omits any of them is a configuration
// error, never silently defaulted.
type RegionFactors struct {
	// Transport maps transport mode name to kg CO2e per km.
	Transport map[string]float64 `yaml:"transport" json:"transport"`
	// Diet maps diet type name to kg CO2e per year.
	Diet map[string]float64 `yaml:"diet" json:"diet"`
	// Electricity is kg CO2e per kWh for the regional grid.
	Electricity float64 `yaml:"electricity" json:"electricity"`
	// Waste is kg CO2e per kg of unrecycled waste sent to landfill.
	Waste float64 `yaml:"waste" json:"waste"`
}

// Validate checks that the region entry supplies all four factor fields
// with non-negative values.
func (r RegionFactors) Validate() error {
	if len(r.Transport) == 0 {
		return ErrTransportModesMissing
	}
	if len(r.Diet) == 0 {
		return ErrDietTypesMissing
	}
	for mode, factor := range r.Transport {
		if factor < 0 {
			return fmt.Errorf("%w: transport[%q] = %v", ErrFactorNegative, mode, factor)
		}
	}
	for diet, factor := range r.Diet {
		if factor < 0 {
			return fmt.Errorf("%w: diet[%q] = %v", ErrFactorNegative, diet, factor)
		}
	}
	if r.Electricity < 0 {
		return fmt.Errorf("%w: electricity = %v", ErrFactorNegative, r.Electricity)
	}
	if r.Waste < 0 {
		return fmt.Errorf("%w: waste = %v", ErrFactorNegative, r.Waste)
	}
	return nil
}

// FactorTable is the region-keyed emission factor dataset loaded from YAML.
type FactorTable struct {
	// Version is the dataset schema version (semver). Major version must
	// match FactorDatasetMajorVersion.
	Version string `yaml:"version" json:"version"`
	// Regions maps region name to its factor set.
	Regions map[string]RegionFactors `yaml:"regions" json:"regions"`
}

// Validate checks the dataset version and every region entry.
func (t FactorTable) Validate() error {
	if t.Version == "" {
		return ErrFactorsVersionMissing
	}
	v, err := semver.NewVersion(t.Version)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrFactorsVersionInvalid, t.Version)
	}
	if v.Major() != FactorDatasetMajorVersion {
		return fmt.Errorf("%w: got %d (expected %d)",
			ErrFactorsVersionMismatch, v.Major(), FactorDatasetMajorVersion)
	}
	if len(t.Regions) == 0 {
		return ErrFactorsEmpty
	}
	for name, region := range t.Regions {
		if regionErr := region.Validate(); regionErr != nil {
			return fmt.Errorf("region %q: %w", name, regionErr)
		}
	}
	return nil
}

// Region returns the factor set for the named region.
func (t FactorTable) Region(name string) (RegionFactors, bool) {
	r, ok := t.Regions[name]
	return r, ok
}

// RegionNames returns the configured region names in unspecified order.
func (t FactorTable) RegionNames() []string {
	names := make([]string, 0, len(t.Regions))
	for name := range t.Regions {
		names = append(names, name)
	}
	return names
}

// LoadFactorTable reads and validates the emission factor dataset at path.
// A missing file is a fatal configuration error for the calculation path:
// there is no built-in runtime fallback.
func LoadFactorTable(path string) (FactorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FactorTable{}, fmt.Errorf("%w: %s", ErrFactorsFileMissing, path)
		}
		return FactorTable{}, fmt.Errorf("reading factors file %s: %w", path, err)
	}

	var table FactorTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return FactorTable{}, fmt.Errorf("parsing factors file %s: %w", path, err)
	}

	if err := table.Validate(); err != nil {
		return FactorTable{}, fmt.Errorf("validating factors file %s: %w", path, err)
	}

	return table, nil
}

// DefaultFactorTable returns the built-in starter dataset used by
// `carbontrack config init` to scaffold a factors file. It is never used
// as a silent fallback when the configured file is missing.
func DefaultFactorTable() FactorTable {
	return FactorTable{
		Version: "1.0.0",
		Regions: map[string]RegionFactors{
			"India": {
				Transport: map[string]float64{
					"Car (Petrol)": 0.192,
					"Motorcycle":   0.105,
					"Bus":          0.08,
					"Metro/Train":  0.035,
					"Bicycle/Walk": 0.0,
				},
				Diet: map[string]float64{
					"High Meat Eater":   3300,
					"Medium Meat Eater": 2500,
					"Vegetarian":        1700,
					"Vegan":             1500,
				},
				Electricity: 0.82,
				Waste:       0.57,
			},
		},
	}
}

// WriteFactorTable marshals the table to YAML at path, creating parent
// directories as needed. Used by config scaffolding.
func WriteFactorTable(path string, table FactorTable) error {
	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("marshaling factor table: %w", err)
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing factors file %s: %w", path, err)
	}
	return nil
}
