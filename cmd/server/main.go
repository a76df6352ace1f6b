// Package main - Entry point for the logirate API server
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"logirate/api"
	"logirate/core/catalog"
	"logirate/core/proposal"
	"logirate/db"
	"logirate/internal/config"
	"logirate/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "logirate.json", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Init(logging.DefaultConfig())
		logging.Error("loading config", zap.Error(err))
		os.Exit(1)
	}
	cfg.FromEnv()

	if err := logging.Init(cfg.Logging); err != nil {
		os.Exit(1)
	}
	defer logging.Sync()

	var table *catalog.Table
	if cfg.Catalog.Path != "" {
		table, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logging.Error("loading catalog", zap.Error(err), zap.String("path", cfg.Catalog.Path))
			os.Exit(1)
		}
		logging.Info("catalog loaded from file", zap.String("path", cfg.Catalog.Path))
	} else {
		table = catalog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store     proposal.Store
		meter     proposal.UsageMeter
		directory proposal.ClientDirectory
	)
	if cfg.Database.URL != "" {
		pg, err := db.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			logging.Error("connecting to database", zap.Error(err))
			os.Exit(1)
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			logging.Error("ensuring schema", zap.Error(err))
			os.Exit(1)
		}
		store, meter, directory = pg, pg, pg
		logging.Info("postgres persistence enabled")
	} else {
		mem := db.NewMemory()
		store, meter = mem, mem
		logging.Warn("no DATABASE_URL configured, proposals are held in memory")
	}

	materializer := proposal.NewMaterializer(store, meter, logging.Logger)
	apiServer := api.NewServer(version, table, materializer, directory)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logging.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("shutdown failed", zap.Error(err))
	}
}
