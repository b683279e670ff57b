package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ParthDhengle/YCS-Battery-Simulation/internal/simserver"
)

// newServeCmd creates the serve subcommand: a local stand-in for the
// hosted simulation service, useful for development and demos.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local simulation service",
		Long:  "Serve the /simulate contract locally with the placeholder solver, so the wizard can run without the hosted service",
		Example: `  ycsim serve
  ycsim serve --addr :9090
  YCS_API_URL=http://localhost:8080 ycsim`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			origin, _ := cmd.Flags().GetString("cors-origin")

			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			router := simserver.NewRouter(simserver.Options{
				AllowOrigin: origin,
				Logger:      logger,
			})

			logger.Info("simulation service listening", "addr", addr)
			return router.Run(addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().String("cors-origin", "http://localhost:3000", "Allowed CORS origin for the browser frontend")

	return cmd
}
