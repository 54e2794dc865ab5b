// Command studio runs the attention overlay studio server: image intake,
// vision-model attention analysis, and on-demand overlay rendering.
package main

import (
	"log/slog"
	"os"

	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/config"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/server"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/internal/store"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/overlay"
	"github.com/shikhamishra379/Amazon-HeatMap-Studio/vision"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(log)
	overlay.SetLogger(log)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Error("opening store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	analyzer := vision.NewClient(vision.Config{
		BaseURL: cfg.VisionBaseURL,
		Model:   cfg.VisionModel,
		APIKey:  cfg.VisionAPIKey,
		Timeout: cfg.VisionTimeout,
	})

	srv := server.New(cfg, st, analyzer, log)

	log.Info("studio listening", "port", cfg.Port, "vision_model", cfg.VisionModel)
	if err := srv.Router().Run(cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
