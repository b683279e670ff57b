package models

// ResultSummary is the headline block of a simulation result. The service
// formats these values as strings; they are displayed, not computed with.
type ResultSummary struct {
	FinalSoc       string  `json:"finalSoc"`
	TotalEnergy    string  `json:"totalEnergy"`
	MaxTemperature string  `json:"maxTemperature"`
	Efficiency     string  `json:"efficiency"`
	StateOfHealth  *string `json:"stateOfHealth"`
}

// TimeSeriesPoint is one step of the solved run.
type TimeSeriesPoint struct {
	Time        float64 `json:"time"`
	Soc         float64 `json:"soc"`
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Temperature float64 `json:"temperature"`
	Power       float64 `json:"power"`
}

// SimulationResult is the payload returned by POST /simulate on success.
type SimulationResult struct {
	Summary    ResultSummary     `json:"summary"`
	TimeSeries []TimeSeriesPoint `json:"timeSeries"`
}
