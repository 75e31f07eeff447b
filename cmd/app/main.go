package main

import (
	"bakery/cmd"
	"bakery/internal/adapters/out/postgres"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	var gormDB *gorm.DB
	if configs.Storage == cmd.StoragePostgres {
		gormDB = openDatabase(configs)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:           goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:           goDotEnvVariable("DB_PORT", "5432"),
		DBUser:           goDotEnvVariable("DB_USER", "postgres"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD", ""),
		DBName:           goDotEnvVariable("DB_NAME", "bakery"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE", "disable"),
		Storage:          cmd.Storage(goDotEnvVariable("STORAGE", string(cmd.StoragePostgres))),
		BusinessTimezone: goDotEnvVariable("BUSINESS_TIMEZONE", "America/Santiago"),
		CutoffHour:       goDotEnvInt("CUTOFF_HOUR", 18),
		DispatchHour:     goDotEnvInt("DISPATCH_HOUR", 15),
		DispatchSchedule: goDotEnvVariable("DISPATCH_SCHEDULE", "0 */5 * * * *"),
		LogLevel:         goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

// loadDotEnv reads .env when present; a missing file leaves the environment as is.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func goDotEnvInt(key string, fallback int) int {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return v
}

func openDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e, err := app.NewRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	app.Logger().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
