// Package main provides the YCS battery simulation CLI.
//
// This is the entry point for the ycsim tool, which provides an interactive
// terminal wizard for building a battery pack configuration, selecting a
// drive cycle, toggling simulation models, and submitting the run to the
// YCS simulation service. It also bundles a local development server that
// implements the same /simulate contract.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

// Version is set by -ldflags during build
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ycsim",
		Short:   "YCS battery simulation wizard",
		Long:    "Interactive wizard for configuring and running battery pack simulations against the YCS simulation service",
		Version: Version,
		RunE: func(c *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
			}

			p := tea.NewProgram(newAppModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running wizard: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
