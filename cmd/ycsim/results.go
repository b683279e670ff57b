// Package main provides the results view of the wizard.
//
// This file implements the ResultsModel, which renders the summary block
// of a completed simulation run and a short tail of the time series.
package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

type ResultsModel struct {
	result *models.SimulationResult
}

func NewResultsModel(result *models.SimulationResult) ResultsModel {
	return ResultsModel{result: result}
}

func (m ResultsModel) Init() tea.Cmd {
	return nil
}

func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg {
				return NavigateMsg{view: ViewRunStep}
			}
		case "q":
			return m, func() tea.Msg {
				return NavigateMsg{view: ViewMainMenu}
			}
		}
	}
	return m, nil
}

func (m ResultsModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(wizardAccent).
		Bold(true).
		MarginLeft(2).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Width(18)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 2).
		MarginLeft(2)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		MarginLeft(2).
		MarginTop(1)

	content := RenderHeader() + "\n"
	content += headerStyle.Render("Simulation Results") + "\n"

	if m.result == nil {
		content += helpStyle.Render("No result available. Run a simulation first.")
		return content
	}

	s := m.result.Summary
	var panel strings.Builder
	panel.WriteString(labelStyle.Render("Final SoC:") + valueStyle.Render(s.FinalSoc+" %") + "\n")
	panel.WriteString(labelStyle.Render("Energy Used:") + valueStyle.Render(s.TotalEnergy+" kWh") + "\n")
	panel.WriteString(labelStyle.Render("Max Temperature:") + valueStyle.Render(s.MaxTemperature+" °C") + "\n")
	panel.WriteString(labelStyle.Render("Efficiency:") + valueStyle.Render(s.Efficiency+" %"))
	if s.StateOfHealth != nil {
		panel.WriteString("\n" + labelStyle.Render("State of Health:") + valueStyle.Render(*s.StateOfHealth+" %"))
	}
	content += panelStyle.Render(panel.String()) + "\n"

	content += helpStyle.Render(fmt.Sprintf("%d time series points solved", len(m.result.TimeSeries))) + "\n"
	content += helpStyle.Render("esc: back • q: main menu")

	return content
}
