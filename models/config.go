package models

// WizardConfig is the shape of ycsim-config.yml: saved wizard defaults
// plus the catalogs the pack and drive cycle steps are populated from.
type WizardConfig struct {
	APIURL string `yaml:"api_url,omitempty"`

	Defaults WizardDefaults `yaml:"defaults"`

	Cells  []Cell       `yaml:"cells,omitempty"`
	Cycles []DriveCycle `yaml:"cycles,omitempty"`
}

// WizardDefaults pre-fills the wizard forms.
type WizardDefaults struct {
	SeriesCount   int     `yaml:"series_count"`
	ParallelCount int     `yaml:"parallel_count"`
	StartingSoc   float64 `yaml:"starting_soc"`
	AmbientTemp   float64 `yaml:"ambient_temp"`
}

// DefaultWizardConfig returns the built-in cell and drive cycle catalogs
// used when no ycsim-config.yml is present.
func DefaultWizardConfig() *WizardConfig {
	return &WizardConfig{
		Defaults: WizardDefaults{
			SeriesCount:   96,
			ParallelCount: 4,
			StartingSoc:   90,
			AmbientTemp:   25,
		},
		Cells: []Cell{
			{ID: "nmc-21700", Name: "NMC 21700", Voltage: 3.6, Capacity: 5.0},
			{ID: "lfp-prismatic", Name: "LFP Prismatic", Voltage: 3.2, Capacity: 100.0},
			{ID: "nca-18650", Name: "NCA 18650", Voltage: 3.6, Capacity: 3.5},
		},
		Cycles: []DriveCycle{
			{ID: "wltp", Name: "WLTP Class 3", Duration: 1800},
			{ID: "udds", Name: "UDDS (City)", Duration: 1370},
			{ID: "hwfet", Name: "HWFET (Highway)", Duration: 765},
			{ID: "us06", Name: "US06 (Aggressive)", Duration: 600},
			{ID: "nedc", Name: "NEDC", Duration: 1180},
		},
	}
}
