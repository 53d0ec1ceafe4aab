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

	web := app.NewWeb(cfg)
	defer web.Close()

	if err := web.RunWeb(ctx); err != nil {
		slog.Error("Web server stopped", "error", err)
		web.Close()
		os.Exit(1)
	}
	slog.Info("Web server shut down")
}
