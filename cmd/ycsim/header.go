package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func RenderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true).
		MarginTop(1).
		MarginLeft(2)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginLeft(2).
		MarginBottom(1)

	title := titleStyle.Render("YCS Battery Simulation")
	subtitle := subtitleStyle.Render(fmt.Sprintf("v%s", Version))

	return title + "\n" + subtitle
}
