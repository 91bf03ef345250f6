package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/coppermetrics/internal/api"
	"github.com/wonny/coppermetrics/internal/api/handlers"
	"github.com/wonny/coppermetrics/internal/store"
	"github.com/wonny/coppermetrics/pkg/config"
	"github.com/wonny/coppermetrics/pkg/database"
	"github.com/wonny/coppermetrics/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health               - Health check
  GET  /api/report           - Latest saved analysis report
  GET  /api/report/history   - Archived reports (requires DATABASE_URL)
  POST /api/analyze          - Run the analysis on demand

Example:
  go run ./cmd/copper api
  go run ./cmd/copper api --port 8094`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Coppermetrics API Server ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}
	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// Optional report archive
	var archive *store.ReportRepository
	if cfg.Database.Enabled {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		archive = store.NewReportRepository(db.Pool)
		if err := archive.EnsureSchema(cmd.Context()); err != nil {
			return fmt.Errorf("prepare report archive: %w", err)
		}
		log.Info("Report archive enabled")
	}

	files := store.NewFileStore(cfg, log)
	reportHandler := handlers.NewReportHandler(cfg, files, archive, log)
	router := api.NewRouter(reportHandler, log)
	server := api.New(cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/report")
	fmt.Println("  GET  /api/report/history")
	fmt.Println("  POST /api/analyze")
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
