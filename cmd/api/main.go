package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"legalcopilot/internal/analysis"
	"legalcopilot/internal/api"
	"legalcopilot/internal/config"
	"legalcopilot/internal/logger"
	"legalcopilot/internal/observability"
	"legalcopilot/internal/providers"
	"legalcopilot/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()
	if strings.EqualFold(cfg.LogMode, "prod") || strings.EqualFold(cfg.LogMode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel := observability.InitOTel(ctx, lg, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.LogMode,
	})
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownOTel(sctx)
	}()

	pm, err := providers.NewManager(ctx, cfg)
	if err != nil {
		lg.Fatal("provider setup failed", "error", err)
	}
	defer pm.Close()

	opts := []analysis.Option{
		analysis.WithLogger(lg),
		analysis.WithTimeout(cfg.ModelTimeout()),
		analysis.WithProviderName(pm.ActiveRef().Name),
	}
	if cfg.PostgresURL != "" {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := storage.NewDB(dbCtx, cfg.PostgresURL)
		if err != nil {
			cancel()
			lg.Fatal("audit database unavailable", "error", err)
		}
		repo := storage.NewModelCallRepo(db)
		if err := repo.EnsureSchema(dbCtx); err != nil {
			cancel()
			db.Close()
			lg.Fatal("audit schema setup failed", "error", err)
		}
		cancel()
		defer db.Close()
		opts = append(opts, analysis.WithRecorder(repo))
		lg.Info("model call audit enabled")
	}

	srv := api.NewServer(cfg, lg, pm, analysis.New(pm.Active(), opts...))
	httpServer := &http.Server{
		Addr:              cfg.APIAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		active := pm.ActiveInfo()
		lg.Info("legalcopilot api listening", "addr", cfg.APIAddr, "provider", active.Name, "model", active.Model, "cors_origins", cfg.CORSOrigins)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("http server failed", "error", err)
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(sctx); err != nil {
		lg.Error("http shutdown failed", "error", err)
	}
}
