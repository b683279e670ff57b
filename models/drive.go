package models

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Drive configuration type discriminator values.
const (
	DriveTypePredefined = "predefined"
	DriveTypeUpload     = "upload"
)

// DriveCycle is a named predefined speed-vs-time profile.
// Duration is in seconds.
type DriveCycle struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Duration int    `json:"duration" yaml:"duration"`
}

// CsvRow is one sample of a user-supplied custom drive profile.
type CsvRow struct {
	TimeS    float64  `json:"time_s"`
	CurrentA float64  `json:"current_a"`
	SpeedKmh *float64 `json:"speed_kmh,omitempty"`
}

// DriveConfig describes the drive cycle step of the wizard: either a
// predefined cycle or uploaded CSV samples, plus the starting state of
// charge (percent) and ambient temperature (degrees C).
type DriveConfig struct {
	Type        string      `json:"type"`
	Cycle       *DriveCycle `json:"cycle,omitempty"`
	CsvData     []CsvRow    `json:"csvData,omitempty"`
	StartingSoc float64     `json:"startingSoc"`
	AmbientTemp float64     `json:"ambientTemp"`
}

func (d *DriveConfig) Validate() error {
	switch d.Type {
	case DriveTypePredefined:
		if d.Cycle == nil {
			return &ValidationError{Field: "cycle", Message: "required for predefined drive type"}
		}
		if d.Cycle.Duration <= 0 {
			return &ValidationError{Field: "cycle.duration", Message: "must be positive"}
		}
	case DriveTypeUpload:
		if len(d.CsvData) < 2 {
			return &ValidationError{Field: "csvData", Message: "needs at least two samples"}
		}
	default:
		return &ValidationError{Field: "type", Message: "must be 'predefined' or 'upload'"}
	}
	if d.StartingSoc < 0 || d.StartingSoc > 100 {
		return &ValidationError{Field: "startingSoc", Message: "must be between 0 and 100"}
	}
	return nil
}

// ParseDriveCSV reads custom drive samples from CSV data with columns
// time_s,current_a[,speed_kmh]. A header row is detected and skipped.
func ParseDriveCSV(r io.Reader) ([]CsvRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]CsvRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, &ValidationError{Field: "csvData", Message: "each row needs at least time_s and current_a"}
		}
		t, errT := strconv.ParseFloat(rec[0], 64)
		a, errA := strconv.ParseFloat(rec[1], 64)
		if errT != nil || errA != nil {
			if i == 0 {
				// Header row
				continue
			}
			return nil, &ValidationError{Field: "csvData", Message: "non-numeric sample at row " + strconv.Itoa(i+1)}
		}
		row := CsvRow{TimeS: t, CurrentA: a}
		if len(rec) >= 3 && rec[2] != "" {
			if v, err := strconv.ParseFloat(rec[2], 64); err == nil {
				row.SpeedKmh = &v
			}
		}
		rows = append(rows, row)
	}
	if len(rows) < 2 {
		return nil, &ValidationError{Field: "csvData", Message: "needs at least two samples"}
	}
	return rows, nil
}
