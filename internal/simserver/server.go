// Package simserver provides a local development stand-in for the hosted
// simulation service. It speaks the same /simulate contract, including
// the {"detail": ...} error body shape, so the wizard can run against it
// unchanged.
package simserver

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ParthDhengle/YCS-Battery-Simulation/internal/engine"
	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

// Options configures the development server.
type Options struct {
	// AllowOrigin is echoed in CORS headers so the browser frontend can
	// reach a locally running server.
	AllowOrigin string
	Logger      *slog.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = "http://localhost:3000"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(opts.Logger))
	router.Use(corsMiddleware(opts.AllowOrigin))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/simulate", handleSimulate(opts.Logger))

	return router
}

func handleSimulate(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SimulationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		logger.Info("simulation request",
			"pack", req.PackConfig.Layout(),
			"driveType", req.DriveConfig.Type,
			"models", req.SimulationConfig.EnabledModels())

		result, err := engine.Run(&req)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidDriveCycle) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		logger.Info("simulation complete",
			"points", len(result.TimeSeries),
			"finalSoc", result.Summary.FinalSoc)

		c.JSON(http.StatusOK, result)
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
