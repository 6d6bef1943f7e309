// Command quaycheck serves the tally sheet reconciliation endpoint.
//
// It accepts two carrier PDF uploads plus a JSON mapping of section name
// to operator number and date, extracts the tally grids from both
// documents by text-layout coordinates, and reports per-section match
// counts. Configuration comes from quaycheck.toml (path overridable via
// QUAYCHECK_CONFIG) with QUAYCHECK_* env overrides on top.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portmatic/quaycheck/extract"
	"github.com/portmatic/quaycheck/internal/config"
	"github.com/portmatic/quaycheck/observer"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load(os.Getenv("QUAYCHECK_CONFIG"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var inst *observer.Instruments
	if cfg.Observer.Enabled {
		var shutdown func(context.Context) error
		var err error
		inst, shutdown, err = observer.Init(ctx)
		if err != nil {
			logger.Error("observer init failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := shutdown(shutCtx); err != nil {
				logger.Error("observer shutdown error", "error", err)
			}
		}()
	}

	extractor := extract.New(
		extract.WithRowTolerance(cfg.Extract.RowTolerance),
		extract.WithHeaderPadding(cfg.Extract.HeaderPadding),
		extract.WithLineTolerance(cfg.Extract.LineTolerance),
		extract.WithWordGapFactor(cfg.Extract.WordGapFactor),
		extract.WithLogger(logger),
	)
	srv := newServer(extractor, inst, cfg.Server.MaxUploadBytes, logger)

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      routes(srv),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("stopped")
}
