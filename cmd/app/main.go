package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"freight/cmd"
	_ "freight/docs"
	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/generated/servers"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.UnloadingUoWFactory(),
		app.CreateUnloadManifestCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:    goDotEnvVariable("JWT_SECRET"),
		LegacyNodeID: parseLegacyNodeID(goDotEnvVariable("LEGACY_NODE_ID")),
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

func parseLegacyNodeID(raw string) int64 {
	nodeID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid LEGACY_NODE_ID %q: %v", raw, err)
	}
	return nodeID
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreateBookingCommandHandler(),
		app.CreateCancelBookingCommandHandler(),
		app.CreateDeliverBookingCommandHandler(),
		app.CreateCreateManifestCommandHandler(),
		app.CreateLoadBookingsCommandHandler(),
		app.CreateDepartManifestCommandHandler(),
		app.CreateUnloadManifestCommandHandler(),
		app.CreateGetActiveBookingsQueryHandler(),
		app.CreateGetIncomingManifestsQueryHandler(),
	)

	api := e.Group("", httpadapter.AuthMiddleware([]byte(configs.JWTSecret)))
	servers.RegisterHandlersWithBaseURL(api, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
