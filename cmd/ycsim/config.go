// Package main provides the configuration view for the ycsim CLI.
//
// This file implements the ConfigModel which loads the API endpoint from
// environment variables and .env files and displays the current settings.
// A missing endpoint is not fatal here: the run step reports it as a
// configuration error when a simulation is triggered.
package main

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	ycs "github.com/ParthDhengle/YCS-Battery-Simulation"
)

type ConfigModel struct {
	client *ycs.Client
}

func NewConfigModel() ConfigModel {
	// Load .env file
	godotenv.Load()

	baseURL := os.Getenv("YCS_API_URL")
	apiKey := os.Getenv("YCS_API_KEY")

	if baseURL == "" {
		// A config file may carry the endpoint instead of the environment.
		if cfg := LoadWizardConfigOrDefault(); cfg.APIURL != "" {
			baseURL = cfg.APIURL
		}
	}

	var opts []ycs.ClientOption
	if baseURL != "" {
		opts = append(opts, ycs.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, ycs.WithAPIKey(apiKey))
	}

	return ConfigModel{
		client: ycs.NewClient(opts...),
	}
}

func (m ConfigModel) Init() tea.Cmd {
	return nil
}

func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg {
				return NavigateMsg{view: ViewMainMenu}
			}
		}
	}
	return m, nil
}

func (m ConfigModel) View() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true).
		Width(12)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	notSetStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		MarginTop(2)

	containerStyle := lipgloss.NewStyle().
		MarginLeft(2).
		MarginTop(1)

	var content strings.Builder
	content.WriteString(RenderHeader())
	content.WriteString("\n")

	content.WriteString(containerStyle.Render(labelStyle.Render("Endpoint:")))
	content.WriteString(" ")
	if m.client.GetBaseURL() == "" {
		content.WriteString(notSetStyle.Render("Not set (YCS_API_URL)"))
	} else {
		content.WriteString(valueStyle.Render(m.client.GetBaseURL()))
	}
	content.WriteString("\n")

	content.WriteString(containerStyle.Render(labelStyle.Render("API Key:")))
	content.WriteString(" ")
	if m.client.GetAPIKey() == "" {
		content.WriteString(notSetStyle.Render("Not set"))
	} else {
		content.WriteString(valueStyle.Render(m.client.GetAPIKey()))
	}
	content.WriteString("\n")

	content.WriteString(helpStyle.Render("  Press 'esc' or 'q' to go back"))

	return content.String()
}
