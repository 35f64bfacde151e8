package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fleet/cmd"
	fleethttp "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/maintenancerepo"
	"fleet/internal/adapters/out/postgres/orderrepo"
	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateAllocateOrderCommandHandler(),
		app.CreateListMaintenanceQueryHandler(),
		app.Clock(),
		slog.New(slog.NewTextHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		MaxVehiclesPerDriver: goDotEnvIntVariable("MAX_VEHICLES_PER_DRIVER"),
		FreeVehiclesCacheTTL: goDotEnvVariable("FREE_VEHICLES_CACHE_TTL"),
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

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&maintenancerepo.MaintenanceRecordDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := fleethttp.NewServer(
		app.CreateCreateDriverCommandHandler(),
		app.CreateCreateVehicleCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignVehicleCommandHandler(),
		app.CreateUnassignVehicleCommandHandler(),
		app.CreateScheduleMaintenanceCommandHandler(),
		app.CreateTransitionMaintenanceCommandHandler(),
		app.CreateGetFreeVehiclesQueryHandler(),
		app.CreateListMaintenanceQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
