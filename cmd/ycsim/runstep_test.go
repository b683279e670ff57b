package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	ycs "github.com/ParthDhengle/YCS-Battery-Simulation"
	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfigs() (*models.PackConfig, *models.DriveConfig, *models.SimulationConfig) {
	pack := &models.PackConfig{
		Cell:          models.Cell{ID: "nmc-21700", Name: "NMC 21700", Voltage: 3.6, Capacity: 5},
		SeriesCount:   96,
		ParallelCount: 4,
		TotalEnergy:   6.912,
	}
	drive := &models.DriveConfig{
		Type:        models.DriveTypePredefined,
		Cycle:       &models.DriveCycle{ID: "wltp", Name: "WLTP Class 3", Duration: 1800},
		StartingSoc: 90,
		AmbientTemp: 25,
	}
	sim := &models.SimulationConfig{
		Electrical: models.ElectricalConfig{Model: "rint"},
		Thermal:    models.ThermalConfig{Enabled: true},
	}
	return pack, drive, sim
}

func newTestRunStep(client *ycs.Client) RunStepModel {
	pack, drive, sim := testConfigs()
	return NewRunStepModel(client, nil, pack, drive, sim)
}

func TestRunStepEndpointMissing(t *testing.T) {
	m := newTestRunStep(ycs.NewClient())

	m, _ = m.Update(keyMsg("s"))

	if m.phase != runFailed {
		t.Fatalf("expected failed phase, got %d", m.phase)
	}
	if m.errMsg != "Simulation failed: API endpoint is not configured" {
		t.Errorf("unexpected error message: %q", m.errMsg)
	}
	if m.percent != 0 {
		t.Errorf("expected progress 0, got %d", m.percent)
	}
	if len(m.logLines) != 1 || m.logLines[0] != m.errMsg {
		t.Errorf("expected a single failure log entry, got %v", m.logLines)
	}
}

func TestRunStepStartCheckpoints(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, cmd := m.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected a submission command")
	}

	if m.phase != runConnecting {
		t.Fatalf("expected connecting phase, got %d", m.phase)
	}
	if m.percent != 10 {
		t.Errorf("expected progress 10, got %d", m.percent)
	}
	if len(m.logLines) != 1 || !strings.Contains(m.logLines[0], "Connecting") {
		t.Errorf("unexpected log: %v", m.logLines)
	}

	m, _ = m.Update(simSendingMsg{seq: m.seq})
	if m.phase != runAwaiting {
		t.Fatalf("expected awaiting phase, got %d", m.phase)
	}
	if len(m.logLines) != 2 || !strings.Contains(m.logLines[1], "Sending") {
		t.Errorf("unexpected log: %v", m.logLines)
	}
}

func TestRunStepSuccess(t *testing.T) {
	want := &models.SimulationResult{
		Summary: models.ResultSummary{
			FinalSoc:       "81.3",
			TotalEnergy:    "0.60",
			MaxTemperature: "31.4",
			Efficiency:     "92.3",
		},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	client := ycs.NewClient(ycs.WithBaseURL(server.URL))
	m := newTestRunStep(client)

	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(simSendingMsg{seq: m.seq})

	pack, drive, sim := testConfigs()
	req := &models.SimulationRequest{PackConfig: pack, DriveConfig: drive, SimulationConfig: sim}
	resp := runSimulation(context.Background(), client, req, m.seq)().(simResponseMsg)

	m, cmd := m.Update(resp)

	if m.phase != runSucceeded {
		t.Fatalf("expected succeeded phase, got %d", m.phase)
	}
	if m.percent != 100 {
		t.Errorf("expected progress 100, got %d", m.percent)
	}
	if m.errMsg != "" {
		t.Errorf("unexpected error message: %q", m.errMsg)
	}
	if !strings.Contains(strings.Join(m.logLines, "\n"), "Calculation complete") {
		t.Errorf("expected calculation complete entry, got %v", m.logLines)
	}

	// The completion hand-off carries the parsed payload, exactly once.
	if cmd == nil {
		t.Fatal("expected completion message command")
	}
	complete, ok := cmd().(simulationCompleteMsg)
	if !ok {
		t.Fatalf("expected simulationCompleteMsg, got %T", cmd())
	}
	if !reflect.DeepEqual(complete.result, m.result) || !reflect.DeepEqual(complete.result.Summary, want.Summary) {
		t.Errorf("unexpected payload: %+v", complete.result)
	}
}

func TestRunStepServerError(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(simSendingMsg{seq: m.seq})

	apiErr := &ycs.APIError{StatusCode: http.StatusInternalServerError, Detail: "solver diverged"}
	m, _ = m.Update(simResponseMsg{seq: m.seq, err: apiErr})

	if m.phase != runFailed {
		t.Fatalf("expected failed phase, got %d", m.phase)
	}
	if m.errMsg != "Simulation failed: solver diverged" {
		t.Errorf("unexpected error message: %q", m.errMsg)
	}
	if m.percent != 0 {
		t.Errorf("expected progress reset to 0, got %d", m.percent)
	}
	if m.result != nil {
		t.Error("expected no result on failure")
	}

	// The service responded, so the calculation checkpoint is still logged.
	joined := strings.Join(m.logLines, "\n")
	if !strings.Contains(joined, "Calculation complete") {
		t.Errorf("expected calculation complete entry, got %v", m.logLines)
	}
	if !strings.Contains(joined, "Simulation failed: solver diverged") {
		t.Errorf("expected failure entry, got %v", m.logLines)
	}
}

func TestRunStepUnparseableSuccessBody(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(simSendingMsg{seq: m.seq})

	payloadErr := &ycs.PayloadError{Err: errors.New("failed to decode response")}
	m, _ = m.Update(simResponseMsg{seq: m.seq, err: payloadErr})

	if m.phase != runFailed {
		t.Fatalf("expected failed phase, got %d", m.phase)
	}
	if m.percent != 0 {
		t.Errorf("expected progress reset to 0, got %d", m.percent)
	}

	// The service answered, so the calculation checkpoint is still logged
	// even though the body was unusable.
	if !strings.Contains(strings.Join(m.logLines, "\n"), "Calculation complete") {
		t.Errorf("expected calculation complete entry, got %v", m.logLines)
	}
}

func TestRunStepRetriggerClearsState(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(simSendingMsg{seq: m.seq})
	m, _ = m.Update(simResponseMsg{seq: m.seq, err: &ycs.APIError{StatusCode: 500, Detail: "solver diverged"}})

	if m.phase != runFailed {
		t.Fatalf("expected failed phase before re-trigger, got %d", m.phase)
	}

	m, _ = m.Update(keyMsg("s"))

	if m.errMsg != "" {
		t.Errorf("expected error cleared, got %q", m.errMsg)
	}
	if len(m.logLines) != 1 {
		t.Errorf("expected log reset to one entry, got %v", m.logLines)
	}
	if m.percent != 10 {
		t.Errorf("expected progress 10, got %d", m.percent)
	}
}

func TestRunStepStaleResponseDiscarded(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, _ = m.Update(keyMsg("s"))
	staleSeq := m.seq

	// The user leaves the screen; the eventual response must be ignored.
	m.teardown()
	m, _ = m.Update(simResponseMsg{seq: staleSeq, result: &models.SimulationResult{}})

	if m.phase == runSucceeded {
		t.Error("stale response should not complete the run")
	}
	if m.result != nil {
		t.Error("stale response should not store a result")
	}
}

func TestRunStepActionsWhileRunning(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(simSendingMsg{seq: m.seq})
	runningSeq := m.seq

	// Start is not offered while running.
	m, cmd := m.Update(keyMsg("s"))
	if cmd != nil {
		t.Error("start should be ignored while running")
	}
	if m.seq != runningSeq {
		t.Error("start while running must not begin a new attempt")
	}
	if !strings.Contains(m.View(), "running") {
		t.Error("expected running help text")
	}
	if strings.Contains(m.View(), "start simulation") {
		t.Error("start action should be hidden while running")
	}

	// Previous is disabled while running.
	m, cmd = m.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("previous should be disabled while running")
	}
	if m.phase != runAwaiting {
		t.Errorf("expected phase unchanged, got %d", m.phase)
	}
}

func TestRunStepNextOnlyWhenCompleted(t *testing.T) {
	m := newTestRunStep(ycs.NewClient(ycs.WithBaseURL("http://localhost:8080")))

	m, cmd := m.Update(keyMsg("n"))
	if cmd != nil {
		t.Error("next should be ignored before completion")
	}

	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(simSendingMsg{seq: m.seq})
	m, _ = m.Update(simResponseMsg{seq: m.seq, result: &models.SimulationResult{}})

	m, cmd = m.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("expected navigation command after completion")
	}
	nav, ok := cmd().(NavigateMsg)
	if !ok || nav.view != ViewResults {
		t.Errorf("expected navigation to results view, got %#v", cmd())
	}
}

func TestRunStepSummaryPanel(t *testing.T) {
	m := newTestRunStep(ycs.NewClient())

	view := m.View()
	for _, want := range []string{"96S4P", "WLTP Class 3", "Electrical, Thermal"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected summary to contain %q", want)
		}
	}
	if strings.Contains(view, "Life") {
		t.Error("life model is disabled and should not be listed")
	}
}
