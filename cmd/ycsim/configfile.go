package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

const wizardConfigFilename = "ycsim-config.yml"

// WizardConfigExists checks if ycsim-config.yml exists in the current directory
func WizardConfigExists() bool {
	_, err := os.Stat(wizardConfigFilename)
	return err == nil
}

// LoadWizardConfig loads and parses ycsim-config.yml from the current directory
func LoadWizardConfig() (*models.WizardConfig, error) {
	data, err := os.ReadFile(wizardConfigFilename)
	if err != nil {
		return nil, err
	}

	var config models.WizardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWizardConfigOrDefault loads ycsim-config.yml, falling back to the
// built-in catalogs. A config file without cell or cycle catalogs keeps
// the defaults for the missing sections.
func LoadWizardConfigOrDefault() *models.WizardConfig {
	defaults := models.DefaultWizardConfig()

	if !WizardConfigExists() {
		return defaults
	}

	config, err := LoadWizardConfig()
	if err != nil {
		logDebug("failed to load %s: %v", wizardConfigFilename, err)
		return defaults
	}

	if len(config.Cells) == 0 {
		config.Cells = defaults.Cells
	}
	if len(config.Cycles) == 0 {
		config.Cycles = defaults.Cycles
	}
	if config.Defaults == (models.WizardDefaults{}) {
		config.Defaults = defaults.Defaults
	}
	return config
}

// SaveWizardConfig saves a WizardConfig to ycsim-config.yml in the current directory
func SaveWizardConfig(config *models.WizardConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(wizardConfigFilename, data, 0644)
}
