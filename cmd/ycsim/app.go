package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ParthDhengle/YCS-Battery-Simulation/internal/history"
	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

type ViewState int

const (
	ViewMainMenu ViewState = iota
	ViewConfig
	ViewPackConfig
	ViewDriveCycle
	ViewModelConfig
	ViewRunStep
	ViewResults
)

type NavigateMsg struct {
	view ViewState
}

type packConfigBuiltMsg struct {
	pack *models.PackConfig
}

type driveConfigBuiltMsg struct {
	drive *models.DriveConfig
}

type modelConfigBuiltMsg struct {
	sim *models.SimulationConfig
}

// simulationCompleteMsg hands the parsed result payload to the wizard; the
// run step emits it exactly once, only on success.
type simulationCompleteMsg struct {
	result *models.SimulationResult
}

type Model struct {
	currentView ViewState

	config       ConfigModel
	wizardConfig *models.WizardConfig
	store        *history.Store

	mainMenu    MainMenuModel
	packConfig  PackConfigModel
	driveCycle  DriveCycleModel
	modelConfig ModelConfigModel
	runStep     RunStepModel
	results     ResultsModel

	// Wizard state collected across steps
	pack   *models.PackConfig
	drive  *models.DriveConfig
	sim    *models.SimulationConfig
	result *models.SimulationResult

	quitting bool
}

func newAppModel() Model {
	config := NewConfigModel()
	wizardConfig := LoadWizardConfigOrDefault()

	store, err := history.Open(history.DefaultPath())
	if err != nil {
		logDebug("history store unavailable: %v", err)
		store = nil
	}

	return Model{
		currentView:  ViewMainMenu,
		config:       config,
		wizardConfig: wizardConfig,
		store:        store,
		mainMenu:     NewMainMenuModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.mainMenu.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NavigateMsg:
		m.currentView = msg.view
		switch msg.view {
		case ViewPackConfig:
			m.packConfig = NewPackConfigModel(m.wizardConfig)
			return m, m.packConfig.Init()
		case ViewDriveCycle:
			m.driveCycle = NewDriveCycleModel(m.wizardConfig)
			return m, m.driveCycle.Init()
		case ViewModelConfig:
			m.modelConfig = NewModelConfigModel()
			return m, m.modelConfig.Init()
		case ViewRunStep:
			m.runStep = NewRunStepModel(m.config.client, m.store, m.pack, m.drive, m.sim)
			return m, m.runStep.Init()
		case ViewResults:
			m.results = NewResultsModel(m.result)
			return m, m.results.Init()
		}
		return m, nil

	case packConfigBuiltMsg:
		m.pack = msg.pack
		m.currentView = ViewDriveCycle
		m.driveCycle = NewDriveCycleModel(m.wizardConfig)
		return m, m.driveCycle.Init()

	case driveConfigBuiltMsg:
		m.drive = msg.drive
		m.currentView = ViewModelConfig
		m.modelConfig = NewModelConfigModel()
		return m, m.modelConfig.Init()

	case modelConfigBuiltMsg:
		m.sim = msg.sim
		m.currentView = ViewRunStep
		m.runStep = NewRunStepModel(m.config.client, m.store, m.pack, m.drive, m.sim)
		return m, m.runStep.Init()

	case simulationCompleteMsg:
		m.result = msg.result
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewMainMenu:
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case ViewConfig:
		m.config, cmd = m.config.Update(msg)
	case ViewPackConfig:
		m.packConfig, cmd = m.packConfig.Update(msg)
	case ViewDriveCycle:
		m.driveCycle, cmd = m.driveCycle.Update(msg)
	case ViewModelConfig:
		m.modelConfig, cmd = m.modelConfig.Update(msg)
	case ViewRunStep:
		m.runStep, cmd = m.runStep.Update(msg)
	case ViewResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentView {
	case ViewConfig:
		return m.config.View()
	case ViewPackConfig:
		return m.packConfig.View()
	case ViewDriveCycle:
		return m.driveCycle.View()
	case ViewModelConfig:
		return m.modelConfig.View()
	case ViewRunStep:
		return m.runStep.View()
	case ViewResults:
		return m.results.View()
	default:
		return m.mainMenu.View()
	}
}
