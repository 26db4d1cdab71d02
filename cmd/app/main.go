package main

import (
	"fmt"
	"log/slog"
	"os"

	"giftmarket/cmd"
	httpadapter "giftmarket/internal/adapters/in/http"
	"giftmarket/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("No .env file found, reading configuration from environment")
	}

	return cmd.Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		ScanTimeoutSeconds: os.Getenv("SCAN_TIMEOUT_SECONDS"),
		PlatformRate:       os.Getenv("FEE_PLATFORM_RATE"),
		ProcessingRate:     os.Getenv("FEE_PROCESSING_RATE"),
		TierAFee:           os.Getenv("FEE_TIER_A"),
		TierBFee:           os.Getenv("FEE_TIER_B"),
		TierCFee:           os.Getenv("FEE_TIER_C"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptRequestCommandHandler(),
		app.CreateDeclineRequestCommandHandler(),
		app.CreateMarkReadyForDispatchCommandHandler(),
		app.CreatePinDeliveryLocationCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateFinalizeHandoverCommandHandler(),
		app.CreateQuoteTotalsQueryHandler(),
		app.CreateVerifyTokenQueryHandler(),
		app.CreateWalletViewQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.ScanListener(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
