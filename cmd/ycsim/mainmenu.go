// Package main provides the main menu view for the ycsim CLI.
//
// This file implements the MainMenuModel which displays the primary
// navigation menu with options to start a new simulation wizard, view
// configuration, or quit.
package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MainMenuModel struct {
	choices list.Model
}

type menuItem struct {
	title       string
	description string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.description }
func (i menuItem) FilterValue() string { return i.title }

func NewMainMenuModel() MainMenuModel {
	items := []list.Item{
		menuItem{title: "New Simulation", description: "Configure a pack, pick a drive cycle and run it."},
		menuItem{title: "Configuration", description: "View API endpoint and settings"},
		menuItem{title: "Quit", description: "Exit the CLI"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 15)
	l.Title = "Main Menu"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return MainMenuModel{
		choices: l,
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) Update(msg tea.Msg) (MainMenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.choices.SetSize(msg.Width, 15)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			selectedItem := m.choices.SelectedItem()
			if selectedItem != nil {
				item := selectedItem.(menuItem)
				switch item.title {
				case "New Simulation":
					return m, func() tea.Msg {
						return NavigateMsg{view: ViewPackConfig}
					}
				case "Configuration":
					return m, func() tea.Msg {
						return NavigateMsg{view: ViewConfig}
					}
				case "Quit":
					return m, tea.Quit
				}
			}
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("q"))):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.choices, cmd = m.choices.Update(msg)
	return m, cmd
}

func (m MainMenuModel) View() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		MarginLeft(2).
		MarginTop(1)

	return RenderHeader() + "\n" + m.choices.View() + "\n" + helpStyle.Render("Enter: Select • q: Quit")
}
