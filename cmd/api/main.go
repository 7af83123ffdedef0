package main

import (
	"fmt"
	"os"

	"birikim/internal/config"
	"birikim/internal/database"
	"birikim/internal/logger"
	"birikim/internal/metrics"
	"birikim/internal/server"

	"github.com/patrickmn/go-cache"
)

// @title           Birikim API
// @version         1.0
// @description     Birikim tracks gold and foreign-currency holdings and values them at live market quotes.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if appConfig.PipelineAPIKey == "" {
		log.Warn("PIPELINE_API_KEY is not set; pipeline endpoints will reject every request")
	}

	quoteCache := cache.New(appConfig.QuoteCacheTTL, 2*appConfig.QuoteCacheTTL)
	router := server.New(appConfig, dbManager.DB(), quoteCache, metrics.New(nil))

	log.Infof("Starting Birikim server on port %s (base currency %s)", appConfig.Port, appConfig.BaseCurrency)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
