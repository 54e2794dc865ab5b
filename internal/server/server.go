// Package server exposes the studio's HTTP surface: image intake, attention
// analysis, overlay rendering and report endpoints. Thin glue around the
// overlay renderer and its collaborators.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/attention"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/config"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/store"
)

// Analyzer predicts attention points for an image. Implemented by
// vision.Client; tests substitute a stub.
type Analyzer interface {
	Predict(ctx context.Context, img []byte, contentType string) (attention.Set, error)
}

// Server wires the HTTP surface to the store and the analyzer.
type Server struct {
	cfg      *config.Config
	store    *store.Store
	analyzer Analyzer
	log      *slog.Logger
}

// New creates a server. A nil logger disables request logging.
func New(cfg *config.Config, st *store.Store, analyzer Analyzer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{cfg: cfg, store: st, analyzer: analyzer, log: log}
}

// Router builds the Gin engine with middleware and all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))
	r.Use(CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		analyses := api.Group("/analyses")
		{
			analyses.POST("", s.createAnalysis)
			analyses.GET("", s.listAnalyses)
			analyses.GET("/:id", s.getAnalysis)
			analyses.DELETE("/:id", s.deleteAnalysis)
			analyses.GET("/:id/overlay", s.renderOverlay)
			analyses.GET("/:id/report", s.buildReport)
		}
	}

	return r
}
