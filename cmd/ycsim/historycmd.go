package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ParthDhengle/YCS-Battery-Simulation/internal/history"
)

// newHistoryCmd creates the history subcommand listing past runs.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := history.Open(history.DefaultPath())
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
			failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
			dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

			for _, rec := range records {
				status := okStyle.Render("✓ completed")
				detail := "final SoC " + rec.FinalSoc + " %"
				if rec.Status == history.StatusFailed {
					status = failStyle.Render("✗ failed")
					detail = rec.Error
				}
				fmt.Printf("%s  %s  %s  %s  %s\n",
					dimStyle.Render(rec.StartedAt.Local().Format(time.DateTime)),
					status,
					rec.PackLayout,
					rec.DriveName,
					dimStyle.Render(detail))
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")

	return cmd
}
