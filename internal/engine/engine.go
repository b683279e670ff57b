// Package engine implements the placeholder battery simulation used by the
// local development server. It mirrors the hosted solver's contract: a
// coulomb-counting SoC integration with a linear voltage sag model and an
// optional lumped thermal model.
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

// ErrInvalidDriveCycle is returned when neither uploaded CSV data nor a
// predefined cycle is available to drive the run.
var ErrInvalidDriveCycle = errors.New("Invalid drive cycle configuration.")

// Run solves the request step by step and returns the summary and full
// time series.
func Run(req *models.SimulationRequest) (*models.SimulationResult, error) {
	pack := req.PackConfig
	drive := req.DriveConfig
	sim := req.SimulationConfig

	times, currents, err := currentProfile(pack, drive)
	if err != nil {
		return nil, err
	}

	points := len(times)
	soc := make([]float64, points)
	voltage := make([]float64, points)
	temperature := make([]float64, points)

	soc[0] = drive.StartingSoc
	voltage[0] = pack.Cell.Voltage * float64(pack.SeriesCount)
	temperature[0] = drive.AmbientTemp
	totalCapacityAh := pack.Cell.Capacity * float64(pack.ParallelCount)

	for i := 1; i < points; i++ {
		dt := times[i] - times[i-1]
		if dt <= 0 {
			soc[i] = soc[i-1]
			voltage[i] = voltage[i-1]
			temperature[i] = temperature[i-1]
			continue
		}

		socDelta := (currents[i] * dt / 3600) / totalCapacityAh * 100
		soc[i] = math.Max(0, soc[i-1]-socDelta)
		voltage[i] = pack.Cell.Voltage*float64(pack.SeriesCount)*(0.9+0.1*(soc[i]/100)) - currents[i]*0.05

		if sim.Thermal.Enabled {
			heatGen := currents[i] * currents[i] * 0.002
			heatDissipation := (temperature[i-1] - drive.AmbientTemp) * 0.01
			temperature[i] = temperature[i-1] + (heatGen-heatDissipation)*dt/100
		} else {
			temperature[i] = drive.AmbientTemp
		}
	}

	series := make([]models.TimeSeriesPoint, points)
	maxTemp := temperature[0]
	for i := 0; i < points; i++ {
		series[i] = models.TimeSeriesPoint{
			Time:        times[i],
			Soc:         soc[i],
			Voltage:     voltage[i],
			Current:     currents[i],
			Temperature: temperature[i],
			Power:       voltage[i] * currents[i] / 1000,
		}
		if temperature[i] > maxTemp {
			maxTemp = temperature[i]
		}
	}

	finalSoc := soc[points-1]
	summary := models.ResultSummary{
		FinalSoc:       fmt.Sprintf("%.1f", finalSoc),
		TotalEnergy:    fmt.Sprintf("%.2f", pack.TotalEnergy*(drive.StartingSoc-finalSoc)/100),
		MaxTemperature: fmt.Sprintf("%.1f", maxTemp),
		Efficiency:     "92.3",
	}
	if sim.Life.Enabled {
		soh := fmt.Sprintf("%.1f", 99.5-rand.Float64()*0.5)
		summary.StateOfHealth = &soh
	}

	return &models.SimulationResult{Summary: summary, TimeSeries: series}, nil
}

// currentProfile picks the data source for the run: uploaded CSV samples
// when present, otherwise a synthetic profile for the predefined cycle.
func currentProfile(pack *models.PackConfig, drive *models.DriveConfig) ([]float64, []float64, error) {
	if drive.Type == models.DriveTypeUpload && len(drive.CsvData) > 0 {
		times := make([]float64, len(drive.CsvData))
		currents := make([]float64, len(drive.CsvData))
		for i, row := range drive.CsvData {
			times[i] = row.TimeS
			currents[i] = row.CurrentA
		}
		return times, currents, nil
	}

	if drive.Cycle != nil {
		duration := float64(drive.Cycle.Duration)
		points := drive.Cycle.Duration / 2
		if points < 2 {
			return nil, nil, ErrInvalidDriveCycle
		}
		times := make([]float64, points)
		currents := make([]float64, points)
		baseCurrent := pack.TotalEnergy * 10 / duration
		for i := 0; i < points; i++ {
			t := duration * float64(i) / float64(points-1)
			times[i] = t
			currents[i] = baseCurrent + rand.NormFloat64()*15 + 20*math.Sin(t/60)
		}
		return times, currents, nil
	}

	return nil, nil, ErrInvalidDriveCycle
}
