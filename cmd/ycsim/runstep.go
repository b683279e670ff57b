// Package main provides the run step of the wizard.
//
// This file implements the RunStepModel: the final wizard screen that
// submits the three built configurations to the simulation service and
// renders the run lifecycle. One run is one attempt: no retries, no
// timeout, and the start action is hidden while a run is in flight or
// already completed. Progress moves through fixed 10/80/100 checkpoints;
// the service exposes no incremental progress channel.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	ycs "github.com/ParthDhengle/YCS-Battery-Simulation"
	"github.com/ParthDhengle/YCS-Battery-Simulation/internal/history"
	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

// runPhase is the single source of truth for the run lifecycle. Every
// rendered field derives from it, so states like "completed with an
// error banner" cannot be expressed.
type runPhase int

const (
	runIdle runPhase = iota
	runConnecting
	runAwaiting
	runSucceeded
	runFailed
)

const errEndpointNotConfigured = "API endpoint is not configured"

type RunStepModel struct {
	client *ycs.Client
	store  *history.Store

	pack  *models.PackConfig
	drive *models.DriveConfig
	sim   *models.SimulationConfig

	phase    runPhase
	logLines []string
	percent  int
	errMsg   string
	result   *models.SimulationResult

	// seq identifies the current attempt; responses carrying a stale seq
	// are discarded, so a cancelled or superseded run never mutates state.
	seq    int
	cancel context.CancelFunc

	spinner spinner.Model
	bar     progress.Model
	width   int
}

type simSendingMsg struct {
	seq int
}

type simResponseMsg struct {
	seq    int
	result *models.SimulationResult
	err    error
}

func NewRunStepModel(client *ycs.Client, store *history.Store, pack *models.PackConfig, drive *models.DriveConfig, sim *models.SimulationConfig) RunStepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return RunStepModel{
		client:  client,
		store:   store,
		pack:    pack,
		drive:   drive,
		sim:     sim,
		phase:   runIdle,
		spinner: s,
		bar:     bar,
		width:   100,
	}
}

func (m RunStepModel) Init() tea.Cmd {
	return nil
}

func (m RunStepModel) running() bool {
	return m.phase == runConnecting || m.phase == runAwaiting
}

// startRun resets all state from any prior attempt and issues the request.
func (m *RunStepModel) startRun() tea.Cmd {
	m.seq++
	seq := m.seq

	m.result = nil
	m.errMsg = ""
	m.percent = 0
	m.logLines = nil

	if m.client.GetBaseURL() == "" {
		m.fail(errEndpointNotConfigured)
		return nil
	}

	m.phase = runConnecting
	m.logLines = []string{"Connecting to simulation service..."}
	m.percent = 10

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	req := &models.SimulationRequest{
		PackConfig:       m.pack,
		DriveConfig:      m.drive,
		SimulationConfig: m.sim,
	}

	return tea.Batch(
		m.spinner.Tick,
		tea.Sequence(
			func() tea.Msg { return simSendingMsg{seq: seq} },
			runSimulation(ctx, m.client, req, seq),
		),
	)
}

func runSimulation(ctx context.Context, client *ycs.Client, req *models.SimulationRequest, seq int) tea.Cmd {
	return func() tea.Msg {
		result, err := client.RunSimulation(ctx, req)
		return simResponseMsg{seq: seq, result: result, err: err}
	}
}

// fail moves the run to its failed terminal state. The message is both
// surfaced in the error banner and appended to the log.
func (m *RunStepModel) fail(reason string) {
	m.phase = runFailed
	m.percent = 0
	m.errMsg = "Simulation failed: " + reason
	m.logLines = append(m.logLines, m.errMsg)
}

// teardown cancels any in-flight request and bumps seq so a late response
// is discarded instead of mutating a screen the user has left.
func (m *RunStepModel) teardown() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.seq++
}

func (m RunStepModel) Update(msg tea.Msg) (RunStepModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case simSendingMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.phase = runAwaiting
		m.logLines = append(m.logLines, "Sending configuration to solver...")
		return m, nil

	case simResponseMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.cancel = nil

		// An *APIError or *PayloadError means the service responded;
		// transport failures never reached it, so the calculation
		// checkpoint is not logged for those.
		var apiErr *ycs.APIError
		var payloadErr *ycs.PayloadError
		if msg.err == nil || errors.As(msg.err, &apiErr) || errors.As(msg.err, &payloadErr) {
			m.percent = 80
			m.logLines = append(m.logLines, "Calculation complete, processing results...")
		}

		if msg.err != nil {
			m.fail(msg.err.Error())
			m.recordRun()
			return m, nil
		}

		m.logLines = append(m.logLines, "Simulation finished successfully.")
		m.percent = 100
		m.phase = runSucceeded
		m.result = msg.result
		m.recordRun()

		result := msg.result
		return m, func() tea.Msg {
			return simulationCompleteMsg{result: result}
		}

	case spinner.TickMsg:
		if !m.running() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "enter":
			// Start is only offered when neither running nor completed.
			if m.phase == runIdle || m.phase == runFailed {
				cmd := m.startRun()
				return m, cmd
			}
			return m, nil

		case "n":
			if m.phase == runSucceeded {
				return m, func() tea.Msg {
					return NavigateMsg{view: ViewResults}
				}
			}
			return m, nil

		case "esc":
			// Previous is disabled while a run is in flight.
			if m.running() {
				return m, nil
			}
			m.teardown()
			return m, func() tea.Msg {
				return NavigateMsg{view: ViewModelConfig}
			}
		}
	}

	return m, nil
}

// recordRun appends the attempt to the local history store, best effort.
func (m *RunStepModel) recordRun() {
	if m.store == nil {
		return
	}

	rec := history.Record{
		PackLayout: m.pack.Layout(),
		DriveName:  driveLabel(m.drive),
		Models:     m.sim.EnabledModels(),
	}
	if m.phase == runSucceeded {
		rec.Status = history.StatusCompleted
		rec.FinalSoc = m.result.Summary.FinalSoc
	} else {
		rec.Status = history.StatusFailed
		rec.Error = m.errMsg
	}

	if _, err := m.store.Append(rec); err != nil {
		logDebug("failed to record run: %v", err)
	}
}

func driveLabel(drive *models.DriveConfig) string {
	if drive.Type == models.DriveTypePredefined && drive.Cycle != nil {
		return drive.Cycle.Name
	}
	return fmt.Sprintf("Custom CSV (%d points)", len(drive.CsvData))
}

func (m RunStepModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(wizardAccent).
		Bold(true).
		MarginLeft(2).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Width(14)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 2).
		MarginLeft(2)

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")).
		MarginLeft(2).
		MarginTop(1)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF6B6B")).
		Padding(0, 2).
		MarginLeft(2).
		MarginTop(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		MarginLeft(2).
		MarginTop(1)

	content := RenderHeader() + "\n"
	content += headerStyle.Render("Step 4/4 · Run Simulation") + "\n"

	// Summary panel, always visible
	summary := labelStyle.Render("Pack:") + valueStyle.Render(fmt.Sprintf("%s · %s · %.1f kWh", m.pack.Layout(), m.pack.Cell.Name, m.pack.TotalEnergy)) + "\n"
	summary += labelStyle.Render("Drive Cycle:") + valueStyle.Render(driveLabel(m.drive)) + "\n"
	summary += labelStyle.Render("Models:") + valueStyle.Render(m.sim.EnabledModels())
	content += panelStyle.Render(summary) + "\n"

	// Progress region, only once a run has been started
	if m.phase != runIdle {
		latest := ""
		if len(m.logLines) > 0 {
			latest = m.logLines[len(m.logLines)-1]
		}

		switch {
		case m.running():
			content += statusStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), latest)) + "\n"
		case m.phase == runSucceeded:
			content += statusStyle.Render("✓ "+latest) + "\n"
		default:
			content += statusStyle.Render("✗ "+latest) + "\n"
		}

		content += statusStyle.Render(m.bar.ViewAs(float64(m.percent)/100)) + "\n"
	}

	if m.errMsg != "" {
		content += errorStyle.Render(m.errMsg) + "\n"
	}

	var help string
	switch {
	case m.running():
		help = "running…"
	case m.phase == runSucceeded:
		help = "n: view results • esc: back"
	default:
		help = "s/enter: start simulation • esc: back"
	}
	content += helpStyle.Render(help)

	return content
}
