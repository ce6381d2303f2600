package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-blog-backend/api"
	"github.com/rpupo63/portfolio-blog-backend/config"
	"github.com/rpupo63/portfolio-blog-backend/database"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()
	setupLogging(cfg)

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dialector, err := buildDialector(cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Unsupported database configuration")
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		zlog.Fatal().Err(err).Msg("Error testing database connection")
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("Error migrating database schema")
	}

	currentDB := database.New(db)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(config.GetDuration(cfg, "SHUTDOWN_TIMEOUT", 30*time.Second))
}

// buildDialector picks the GORM dialector from DB_TYPE: "postgres" builds a
// DSN from the DB_* variables, "sqlite" opens the file at SQLITE_PATH.
func buildDialector(cfg map[string]string) (gorm.Dialector, error) {
	dbType := config.GetString(cfg, "DB_TYPE", "postgres")

	switch dbType {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "DB_HOST", "localhost"),
			config.GetString(cfg, "DB_USER", "postgres"),
			config.GetString(cfg, "DB_PASSWORD", ""),
			config.GetString(cfg, "DB_NAME", "portfolio"),
			config.GetString(cfg, "DB_PORT", "5432"),
			config.GetString(cfg, "DB_SSLMODE", "disable"),
		)
		return postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), nil
	case "sqlite":
		return sqlite.Open(config.GetString(cfg, "SQLITE_PATH", "data/portfolio.db")), nil
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// setupLogging configures the global zerolog logger: pretty console output in
// development, JSON elsewhere.
func setupLogging(cfg map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	switch config.GetString(cfg, "LOG_LEVEL", "info") {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if config.GetString(cfg, "ENV", "") == "development" {
		zlog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Logger()
		return
	}

	zlog.Logger = zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
