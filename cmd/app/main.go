package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	statsHandler := app.CreateGetShipmentStatsQueryHandler()
	logStartupStats(statsHandler, logger)

	jobManager := jobs.NewJobManager(statsHandler, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError turns unique constraint violations into
	// gorm.ErrDuplicatedKey, which the repository maps to Conflict errors.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// logStartupStats records the shipments-per-status counts once at boot so
// operators see the state of the store before the first job tick.
func logStartupStats(handler queries.GetShipmentStatsQueryHandler, logger *slog.Logger) {
	stats, err := handler.Handle(context.Background(), queries.NewGetShipmentStatsQuery())
	if err != nil {
		logger.Error("Failed to read shipment stats at startup", "error", err)
		return
	}

	attrs := make([]any, 0, len(stats)*2)
	for _, row := range stats {
		attrs = append(attrs, row.Status, row.Count)
	}
	logger.Info("Shipment stats at startup", attrs...)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateGetShipmentByNumberQueryHandler(),
		logger,
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
