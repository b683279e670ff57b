// Package main provides the simulation model step of the wizard.
//
// This file implements the ModelConfigModel: toggles for the equivalent
// circuit model, the thermal model and the life estimate. The completed
// form yields a models.SimulationConfig.
package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

type ModelConfigModel struct {
	form *huh.Form
	done bool
}

func NewModelConfigModel() ModelConfigModel {
	theme := huh.ThemeCharm()
	theme.Focused.Base = theme.Focused.Base.BorderForeground(wizardAccent)
	theme.Focused.Title = theme.Focused.Title.Foreground(wizardAccent)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("electrical").
				Title("Electrical Model").
				Description("Equivalent circuit used by the solver").
				Options(
					huh.NewOption("Internal Resistance (Rint)", "rint"),
					huh.NewOption("Thevenin 1-RC", "thevenin-1rc"),
				),

			huh.NewConfirm().
				Key("thermal").
				Title("Thermal Model").
				Description("Solve pack temperature alongside the electrical model").
				Affirmative("Enabled").
				Negative("Disabled"),

			huh.NewConfirm().
				Key("life").
				Title("Life Model").
				Description("Estimate state of health after the run").
				Affirmative("Enabled").
				Negative("Disabled"),
		),
	).
		WithWidth(60).
		WithShowHelp(true).
		WithShowErrors(true).
		WithTheme(theme)

	return ModelConfigModel{form: form}
}

func (m ModelConfigModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ModelConfigModel) Update(msg tea.Msg) (ModelConfigModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg {
			return NavigateMsg{view: ViewDriveCycle}
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.done {
		m.done = true

		sim := &models.SimulationConfig{
			Electrical: models.ElectricalConfig{Model: m.form.GetString("electrical")},
			Thermal:    models.ThermalConfig{Enabled: m.form.GetBool("thermal")},
			Life:       models.LifeConfig{Enabled: m.form.GetBool("life")},
		}

		return m, func() tea.Msg {
			return modelConfigBuiltMsg{sim: sim}
		}
	}

	return m, cmd
}

func (m ModelConfigModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(wizardAccent).
		Bold(true).
		MarginLeft(2).
		MarginBottom(1)

	content := RenderHeader() + "\n"
	content += headerStyle.Render("Step 3/4 · Simulation Models") + "\n"
	content += m.form.View()
	return content
}
