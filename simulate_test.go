package ycs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

func testRequest() *models.SimulationRequest {
	speed := 42.0
	return &models.SimulationRequest{
		PackConfig: &models.PackConfig{
			Cell:          models.Cell{ID: "nmc-21700", Name: "NMC 21700", Voltage: 3.6, Capacity: 5},
			SeriesCount:   96,
			ParallelCount: 4,
			TotalEnergy:   6.912,
		},
		DriveConfig: &models.DriveConfig{
			Type: models.DriveTypeUpload,
			CsvData: []models.CsvRow{
				{TimeS: 0, CurrentA: 10, SpeedKmh: &speed},
				{TimeS: 1, CurrentA: 12},
			},
			StartingSoc: 90,
			AmbientTemp: 25,
		},
		SimulationConfig: &models.SimulationConfig{
			Electrical: models.ElectricalConfig{Model: "rint"},
			Thermal:    models.ThermalConfig{Enabled: true},
			Life:       models.LifeConfig{Enabled: false},
		},
	}
}

func TestRunSimulationRequestBody(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/simulate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(models.SimulationResult{})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	simReq := testRequest()

	if _, err := client.RunSimulation(context.Background(), simReq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The body must hold exactly the three configuration objects.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(gotBody, &keys); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	for _, key := range []string{"packConfig", "driveConfig", "simulationConfig"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("body missing key %s", key)
		}
	}
	if len(keys) != 3 {
		t.Errorf("expected exactly 3 body keys, got %d", len(keys))
	}

	var decoded models.SimulationRequest
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !reflect.DeepEqual(&decoded, simReq) {
		t.Errorf("body does not round-trip to the input configs:\ngot  %+v\nwant %+v", &decoded, simReq)
	}
}

func TestRunSimulationSuccess(t *testing.T) {
	soh := "99.2"
	want := &models.SimulationResult{
		Summary: models.ResultSummary{
			FinalSoc:       "81.3",
			TotalEnergy:    "0.60",
			MaxTemperature: "31.4",
			Efficiency:     "92.3",
			StateOfHealth:  &soh,
		},
		TimeSeries: []models.TimeSeriesPoint{
			{Time: 0, Soc: 90, Voltage: 345.6, Current: 10, Temperature: 25, Power: 3.456},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	got, err := client.RunSimulation(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected result:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestRunSimulationServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "solver diverged"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.RunSimulation(context.Background(), testRequest())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected status code: %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "solver diverged" {
		t.Errorf("unexpected detail: %s", apiErr.Detail)
	}
}

func TestRunSimulationUnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.RunSimulation(context.Background(), testRequest())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Detail != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected status text fallback, got %s", apiErr.Detail)
	}
}

func TestRunSimulationUnparseableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.RunSimulation(context.Background(), testRequest())
	var payloadErr *PayloadError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("expected *PayloadError, got %T (%v)", err, err)
	}
}

func TestRunSimulationWithoutEndpoint(t *testing.T) {
	attempts := 0
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		attempts++
		return nil, errors.New("should not be called")
	})

	client := NewClient(WithHTTPClient(&http.Client{Transport: transport}))

	_, err := client.RunSimulation(context.Background(), testRequest())
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T (%v)", err, err)
	}
	if attempts != 0 {
		t.Errorf("expected no network I/O, got %d attempts", attempts)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
