// Package main provides the drive cycle step of the wizard.
//
// This file implements the DriveCycleModel: a list of predefined drive
// cycles plus a custom CSV option, followed by a form for the starting
// state of charge and ambient temperature. The completed step yields a
// validated models.DriveConfig.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

const customCSVItemTitle = "Custom CSV…"

type DriveCycleModel struct {
	cfg      *models.WizardConfig
	cycles   []models.DriveCycle
	choices  list.Model
	form     *huh.Form
	selected *models.DriveCycle
	custom   bool
	errText  string
	done     bool
}

type cycleItem struct {
	title       string
	description string
}

func (i cycleItem) Title() string       { return i.title }
func (i cycleItem) Description() string { return i.description }
func (i cycleItem) FilterValue() string { return i.title }

func NewDriveCycleModel(cfg *models.WizardConfig) DriveCycleModel {
	items := make([]list.Item, 0, len(cfg.Cycles)+1)
	for _, cycle := range cfg.Cycles {
		items = append(items, cycleItem{
			title:       cycle.Name,
			description: fmt.Sprintf("%d s predefined profile", cycle.Duration),
		})
	}
	items = append(items, cycleItem{
		title:       customCSVItemTitle,
		description: "Load time_s,current_a samples from a CSV file",
	})

	l := list.New(items, list.NewDefaultDelegate(), 80, 14)
	l.Title = "Drive Cycle"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return DriveCycleModel{
		cfg:     cfg,
		cycles:  cfg.Cycles,
		choices: l,
		form:    newDriveDetailForm(cfg, false),
	}
}

func newDriveDetailForm(cfg *models.WizardConfig, custom bool) *huh.Form {
	defaultSoc := strconv.FormatFloat(cfg.Defaults.StartingSoc, 'f', -1, 64)
	defaultAmbient := strconv.FormatFloat(cfg.Defaults.AmbientTemp, 'f', -1, 64)

	theme := huh.ThemeCharm()
	theme.Focused.Base = theme.Focused.Base.BorderForeground(wizardAccent)
	theme.Focused.Title = theme.Focused.Title.Foreground(wizardAccent)

	fields := []huh.Field{}
	if custom {
		fields = append(fields, huh.NewInput().
			Key("csv").
			Title("CSV File Path").
			Description("Columns: time_s,current_a[,speed_kmh]").
			Placeholder("./profile.csv").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("path is required")
				}
				return nil
			}))
	}
	fields = append(fields,
		huh.NewInput().
			Key("soc").
			Title("Starting SoC (%)").
			Value(&defaultSoc).
			Validate(validateFloatRange(0, 100)),
		huh.NewInput().
			Key("ambient").
			Title("Ambient Temperature (°C)").
			Value(&defaultAmbient).
			Validate(validateFloatRange(-40, 60)),
	)

	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(60).
		WithShowHelp(true).
		WithShowErrors(true).
		WithTheme(theme)
}

func validateFloatRange(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %g and %g", min, max)
		}
		return nil
	}
}

func (m DriveCycleModel) Init() tea.Cmd {
	return nil
}

func (m DriveCycleModel) Update(msg tea.Msg) (DriveCycleModel, tea.Cmd) {
	// Stage 1: cycle selection list
	if m.selected == nil && !m.custom {
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			m.choices.SetSize(msg.Width, 14)
			return m, nil
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				return m, func() tea.Msg {
					return NavigateMsg{view: ViewPackConfig}
				}
			case "enter":
				item, ok := m.choices.SelectedItem().(cycleItem)
				if !ok {
					return m, nil
				}
				if item.title == customCSVItemTitle {
					m.custom = true
					m.form = newDriveDetailForm(m.cfg, true)
					return m, m.form.Init()
				}
				for i := range m.cycles {
					if m.cycles[i].Name == item.title {
						m.selected = &m.cycles[i]
						break
					}
				}
				m.form = newDriveDetailForm(m.cfg, false)
				return m, m.form.Init()
			}
		}

		var cmd tea.Cmd
		m.choices, cmd = m.choices.Update(msg)
		return m, cmd
	}

	// Stage 2: SoC/ambient (and CSV path) form
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.selected = nil
		m.custom = false
		m.errText = ""
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.done {
		m.done = true

		soc, _ := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("soc")), 64)
		ambient, _ := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("ambient")), 64)

		drive := &models.DriveConfig{
			StartingSoc: soc,
			AmbientTemp: ambient,
		}

		if m.custom {
			rows, err := loadDriveCSV(strings.TrimSpace(m.form.GetString("csv")))
			if err != nil {
				m.errText = err.Error()
				m.done = false
				m.selected = nil
				m.custom = false
				return m, nil
			}
			drive.Type = models.DriveTypeUpload
			drive.CsvData = rows
		} else {
			drive.Type = models.DriveTypePredefined
			drive.Cycle = m.selected
		}

		if err := drive.Validate(); err != nil {
			m.errText = err.Error()
			m.done = false
			m.selected = nil
			m.custom = false
			return m, nil
		}

		return m, func() tea.Msg {
			return driveConfigBuiltMsg{drive: drive}
		}
	}

	return m, cmd
}

func loadDriveCSV(path string) ([]models.CsvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return models.ParseDriveCSV(f)
}

func (m DriveCycleModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(wizardAccent).
		Bold(true).
		MarginLeft(2).
		MarginBottom(1)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		MarginLeft(2).
		MarginTop(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		MarginLeft(2).
		MarginTop(1)

	content := RenderHeader() + "\n"
	content += headerStyle.Render("Step 2/4 · Drive Cycle") + "\n"

	if m.selected == nil && !m.custom {
		content += m.choices.View() + "\n"
		content += helpStyle.Render("Enter: Select • Esc: Back")
	} else {
		content += m.form.View()
	}

	if m.errText != "" {
		content += "\n" + errorStyle.Render("⚠ "+m.errText)
	}
	return content
}
