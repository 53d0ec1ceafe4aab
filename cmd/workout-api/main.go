package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/sculpt/internal/app"
	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/logging"
)

func main() {
	logging.New()
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := app.NewWorkoutAPI(cfg)
	defer api.Close()

	if err := api.RunWorkoutAPI(ctx); err != nil {
		slog.Error("Workout data service stopped", "error", err)
		api.Close()
		os.Exit(1)
	}
	slog.Info("Workout data service shut down")
}
