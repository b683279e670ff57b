package models

import "strings"

// ElectricalConfig selects the equivalent-circuit model used by the solver.
type ElectricalConfig struct {
	Model string `json:"model"`
}

// ThermalConfig toggles the lumped thermal model.
type ThermalConfig struct {
	Enabled bool `json:"enabled"`
}

// LifeConfig toggles the degradation estimate.
type LifeConfig struct {
	Enabled bool `json:"enabled"`
}

// SimulationConfig carries the model toggles chosen in the wizard.
type SimulationConfig struct {
	Electrical ElectricalConfig `json:"electrical"`
	Thermal    ThermalConfig    `json:"thermal"`
	Life       LifeConfig       `json:"life"`
}

// EnabledModels lists the enabled model names for display, e.g.
// "Electrical, Thermal, Life".
func (s *SimulationConfig) EnabledModels() string {
	names := []string{"Electrical"}
	if s.Thermal.Enabled {
		names = append(names, "Thermal")
	}
	if s.Life.Enabled {
		names = append(names, "Life")
	}
	return strings.Join(names, ", ")
}

// SimulationRequest is the body of POST /simulate: exactly the three
// configuration objects built by the wizard, passed through unmodified.
type SimulationRequest struct {
	PackConfig       *PackConfig       `json:"packConfig"`
	DriveConfig      *DriveConfig      `json:"driveConfig"`
	SimulationConfig *SimulationConfig `json:"simulationConfig"`
}

func (r *SimulationRequest) Validate() error {
	if r.PackConfig == nil {
		return &ValidationError{Field: "packConfig", Message: "required"}
	}
	if r.DriveConfig == nil {
		return &ValidationError{Field: "driveConfig", Message: "required"}
	}
	if r.SimulationConfig == nil {
		return &ValidationError{Field: "simulationConfig", Message: "required"}
	}
	if err := r.PackConfig.Validate(); err != nil {
		return err
	}
	return r.DriveConfig.Validate()
}
