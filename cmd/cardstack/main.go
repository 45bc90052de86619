package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/credibundl/cardstack/internal/auth"
	"github.com/credibundl/cardstack/internal/cards"
	"github.com/credibundl/cardstack/internal/config"
	"github.com/credibundl/cardstack/internal/leads"
	"github.com/credibundl/cardstack/internal/quiz"
	"github.com/credibundl/cardstack/internal/server"
	"github.com/credibundl/cardstack/internal/store"
	"github.com/credibundl/cardstack/internal/tools"
	"github.com/credibundl/cardstack/internal/version"
	"github.com/credibundl/cardstack/pkg/catalog"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Cardstack server starting", zap.String("version", version.Short()))

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Load the embedded card catalog
	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("failed to load card catalog", zap.Error(err))
	}
	logger.Info("card catalog loaded", zap.Int("cards", cat.Len()))

	// Open the lead database
	db, err := store.New(cfg.GetString("database.path"))
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	leadRepo, err := leads.NewSQLiteRepository(ctx, db)
	if err != nil {
		logger.Fatal("failed to initialize lead storage", zap.Error(err))
	}

	adminSecret := cfg.GetString("admin.secret")
	if adminSecret == "" {
		logger.Warn("admin.secret not configured, admin endpoints will reject all tokens")
	}

	engine := cards.NewEngine(cat)
	registrars := []server.RouteRegistrar{
		cards.NewHandler(engine, logger.Named("cards")),
		tools.NewHandler(cat, logger.Named("tools")),
		quiz.NewHandler(cat, logger.Named("quiz")),
		leads.NewHandler(leadRepo, logger.Named("leads"), adminSecret,
			cfg.GetInt("leads.export_limit")),
		auth.NewHandler(auth.Credentials{
			Username: cfg.GetString("admin.username"),
			Password: cfg.GetString("admin.password"),
			Secret:   adminSecret,
			TokenTTL: cfg.GetDuration("admin.token_ttl"),
		}, logger.Named("auth")),
	}

	srv := server.New(cfg.Addr(), logger, registrars...)

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("Cardstack server ready", zap.String("addr", cfg.Addr()))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("Cardstack server stopped")
}
