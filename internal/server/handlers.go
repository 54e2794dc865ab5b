package server

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/attention"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/store"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/overlay"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/report"
)

// createAnalysis handles POST /api/v1/analyses: multipart image upload,
// metrics resolution, attention prediction, persistence.
func (s *Server) createAnalysis(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer file.Close()

	img, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reading upload"})
		return
	}
	if int64(len(img)) > s.cfg.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
		return
	}

	var resolver overlay.Resolver
	if !resolver.FromBytes(img) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image could not be decoded"})
		return
	}
	metrics := resolver.Metrics()

	contentType := header.Header.Get("Content-Type")
	points, err := s.analyzer.Predict(c.Request.Context(), img, contentType)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "attention analysis failed"})
		return
	}

	analysis := &store.Analysis{
		Filename:    header.Filename,
		ContentType: contentType,
		Image:       img,
		Width:       metrics.Width,
		Height:      metrics.Height,
		Points:      points,
	}
	if err := s.store.Save(c.Request.Context(), analysis); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "saving analysis"})
		return
	}

	c.JSON(http.StatusCreated, analysis)
}

// listAnalyses handles GET /api/v1/analyses.
func (s *Server) listAnalyses(c *gin.Context) {
	list, err := s.store.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing analyses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": list, "count": len(list)})
}

// getAnalysis handles GET /api/v1/analyses/:id.
func (s *Server) getAnalysis(c *gin.Context) {
	analysis, ok := s.loadAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// deleteAnalysis handles DELETE /api/v1/analyses/:id.
func (s *Server) deleteAnalysis(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deleting analysis"})
		return
	}
	c.Status(http.StatusNoContent)
}

// renderOverlay handles GET /api/v1/analyses/:id/overlay?mode=...&set=...
// It re-renders the requested overlay from current inputs and serves the
// surface as PNG; nothing rendered is ever persisted.
func (s *Server) renderOverlay(c *gin.Context) {
	analysis, ok := s.loadAnalysis(c)
	if !ok {
		return
	}

	mode, err := attention.ParseMode(c.DefaultQuery("mode", "heatmap"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := analysis.Points
	switch c.DefaultQuery("set", "primary") {
	case "primary":
	case "secondary":
		// Which set is active is the collaborator's choice; the renderer
		// never selects.
		set = analysis.Secondary
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "set must be primary or secondary"})
		return
	}

	surface := overlay.Render(overlay.Metrics{Width: analysis.Width, Height: analysis.Height}, mode, set)
	if surface == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stored metrics are degenerate"})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.RGBA()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encoding overlay"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// buildReport handles GET /api/v1/analyses/:id/report.
func (s *Server) buildReport(c *gin.Context) {
	analysis, ok := s.loadAnalysis(c)
	if !ok {
		return
	}
	summary := report.Build(analysis.Points,
		overlay.Metrics{Width: analysis.Width, Height: analysis.Height})
	c.JSON(http.StatusOK, summary)
}

// loadAnalysis parses :id and fetches the record, writing the error
// response itself on failure.
func (s *Server) loadAnalysis(c *gin.Context) (*store.Analysis, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}
	analysis, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return nil, false
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "loading analysis"})
		return nil, false
	}
	return analysis, true
}
