package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"feedreader/internal/config"
	"feedreader/internal/db"
	"feedreader/internal/jobs"
	"feedreader/internal/metrics"
	"feedreader/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed sample articles in development
	if cfg.IsDev() {
		if err := database.SeedDevArticles(ctx); err != nil {
			log.Printf("Warning: failed to seed dev articles: %v", err)
		}
	}

	// Metrics
	metrics.Init(database, cfg.KeywordLimit)

	// Background keyword hygiene
	if yamlCfg.KeywordHygiene.Enabled {
		cleaner := jobs.NewKeywordCleaner(
			database,
			yamlCfg.HygieneInterval(),
			yamlCfg.Stoplist(),
			yamlCfg.KeywordHygiene.BatchSize,
		)
		go cleaner.Start(ctx)
	}

	// Server
	srv := server.New(cfg)
	srv.RegisterRoutes(database)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
