package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Data layout
	DataDir     string
	CSVFilename string
	OutputDir   string
	BackupDir   string
	ReportName  string

	// Database (optional report archive)
	Database DatabaseConfig

	// Scheduler
	Scheduler SchedulerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatabaseConfig holds PostgreSQL configuration for the report archive.
// The archive is optional: when URL is empty the service runs file-only.
type DatabaseConfig struct {
	URL     string
	Enabled bool

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// SchedulerConfig holds the periodic analysis settings.
type SchedulerConfig struct {
	// AnalysisCron is a cron expression with a seconds field.
	AnalysisCron string
	// TrailingDays is the size of the rolling analysis window.
	TrailingDays int
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	outputDir := getEnv("OUTPUT_DIR", "output")

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8094"),
		Env:  getEnv("ENV", "development"),

		// Data layout
		DataDir:     getEnv("DATA_DIR", "data"),
		CSVFilename: getEnv("CSV_FILENAME", "lme_copper_historical_data.csv"),
		OutputDir:   outputDir,
		BackupDir:   getEnv("BACKUP_DIR", filepath.Join(outputDir, "backups")),
		ReportName:  getEnv("REPORT_NAME", "analysis_results.json"),

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Scheduler
		Scheduler: SchedulerConfig{
			AnalysisCron: getEnv("ANALYSIS_CRON", "0 30 19 * * *"), // daily 19:30
			TrailingDays: getEnvAsInt("ANALYSIS_TRAILING_DAYS", 365),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	cfg.Database.Enabled = cfg.Database.URL != ""

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// CSVPath returns the full path to the input price series file.
func (c *Config) CSVPath() string {
	return filepath.Join(c.DataDir, c.CSVFilename)
}

// EnsureDirs creates the data, output and backup directories.
// Called once at startup; nothing else touches directory state.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.OutputDir, c.BackupDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Scheduler.TrailingDays <= 0 {
		return fmt.Errorf("ANALYSIS_TRAILING_DAYS must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
