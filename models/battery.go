// Package models provides the data structures exchanged with the YCS
// simulation service. Field names and JSON tags follow the service's
// /simulate contract.
package models

import "fmt"

// Cell describes a single battery cell chemistry entry.
type Cell struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Voltage  float64 `json:"voltage" yaml:"voltage"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// PackConfig describes the battery pack layout built in the wizard.
// TotalEnergy is the pack energy in kWh.
type PackConfig struct {
	Cell          Cell    `json:"cell" yaml:"cell"`
	SeriesCount   int     `json:"seriesCount" yaml:"seriesCount"`
	ParallelCount int     `json:"parallelCount" yaml:"parallelCount"`
	TotalEnergy   float64 `json:"totalEnergy" yaml:"totalEnergy"`
}

// NewPackConfig assembles a pack from a cell and its series/parallel
// counts, deriving the total pack energy.
func NewPackConfig(cell Cell, seriesCount, parallelCount int) (*PackConfig, error) {
	pack := &PackConfig{
		Cell:          cell,
		SeriesCount:   seriesCount,
		ParallelCount: parallelCount,
		TotalEnergy:   cell.Voltage * cell.Capacity * float64(seriesCount) * float64(parallelCount) / 1000,
	}
	if err := pack.Validate(); err != nil {
		return nil, err
	}
	return pack, nil
}

// Layout renders the pack topology in the conventional "{S}S{P}P" form.
func (p *PackConfig) Layout() string {
	return fmt.Sprintf("%dS%dP", p.SeriesCount, p.ParallelCount)
}

func (p *PackConfig) Validate() error {
	if p.Cell.Voltage <= 0 {
		return &ValidationError{Field: "cell.voltage", Message: "must be positive"}
	}
	if p.Cell.Capacity <= 0 {
		return &ValidationError{Field: "cell.capacity", Message: "must be positive"}
	}
	if p.SeriesCount < 1 {
		return &ValidationError{Field: "seriesCount", Message: "must be at least 1"}
	}
	if p.ParallelCount < 1 {
		return &ValidationError{Field: "parallelCount", Message: "must be at least 1"}
	}
	return nil
}
