// Package main provides the battery pack configuration step of the wizard.
//
// This file implements the PackConfigModel: a form for picking a cell from
// the catalog and entering the series/parallel layout. The completed form
// yields a validated models.PackConfig.
package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

var wizardAccent = lipgloss.Color("#7D56F4")

type PackConfigModel struct {
	form    *huh.Form
	cells   []models.Cell
	errText string
	done    bool
}

func NewPackConfigModel(cfg *models.WizardConfig) PackConfigModel {
	cells := cfg.Cells

	cellOptions := make([]huh.Option[string], len(cells))
	for i, cell := range cells {
		label := fmt.Sprintf("%s (%.1fV, %.1fAh)", cell.Name, cell.Voltage, cell.Capacity)
		cellOptions[i] = huh.NewOption(label, cell.ID)
	}

	defaultSeries := strconv.Itoa(cfg.Defaults.SeriesCount)
	defaultParallel := strconv.Itoa(cfg.Defaults.ParallelCount)

	theme := huh.ThemeCharm()
	theme.Focused.Base = theme.Focused.Base.BorderForeground(wizardAccent)
	theme.Focused.Title = theme.Focused.Title.Foreground(wizardAccent)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("cell").
				Title("Cell").
				Description("Cell chemistry used to build the pack").
				Options(cellOptions...),

			huh.NewInput().
				Key("series").
				Title("Series Count").
				Description("Cells in series (1-250)").
				Value(&defaultSeries).
				Validate(validateCount(1, 250)),

			huh.NewInput().
				Key("parallel").
				Title("Parallel Count").
				Description("Parallel strings (1-100)").
				Value(&defaultParallel).
				Validate(validateCount(1, 100)),
		),
	).
		WithWidth(60).
		WithShowHelp(true).
		WithShowErrors(true).
		WithTheme(theme)

	return PackConfigModel{
		form:  form,
		cells: cells,
	}
}

func validateCount(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d-%d", min, max)
		}
		return nil
	}
}

func (m PackConfigModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m PackConfigModel) Update(msg tea.Msg) (PackConfigModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg {
			return NavigateMsg{view: ViewMainMenu}
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.done {
		m.done = true

		cellID := m.form.GetString("cell")
		var cell models.Cell
		for _, c := range m.cells {
			if c.ID == cellID {
				cell = c
				break
			}
		}

		series, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("series")))
		parallel, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("parallel")))

		pack, err := models.NewPackConfig(cell, series, parallel)
		if err != nil {
			m.errText = err.Error()
			m.done = false
			return m, nil
		}

		return m, func() tea.Msg {
			return packConfigBuiltMsg{pack: pack}
		}
	}

	return m, cmd
}

func (m PackConfigModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(wizardAccent).
		Bold(true).
		MarginLeft(2).
		MarginBottom(1)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		MarginLeft(2).
		MarginTop(1)

	content := RenderHeader() + "\n"
	content += headerStyle.Render("Step 1/4 · Pack Configuration") + "\n"
	content += m.form.View()
	if m.errText != "" {
		content += "\n" + errorStyle.Render("⚠ "+m.errText)
	}
	return content
}
