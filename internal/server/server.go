// Package server assembles the HTTP router from services, handlers and middleware.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"birikim/internal/config"
	apperrors "birikim/internal/errors"
	_ "birikim/internal/docs" // registers the swagger spec
	"birikim/internal/handlers"
	"birikim/internal/metrics"
	"birikim/internal/middleware"
	"birikim/internal/services"
	"birikim/internal/validator"
)

// New wires every service and handler onto a gin engine.
func New(cfg *config.Config, db *gorm.DB, quoteCache *cache.Cache, m *metrics.Metrics) *gin.Engine {
	validator.Register()

	// Services
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	currencyService := services.NewCurrencyService(db, quoteCache, cfg.QuoteCacheTTL, cfg.BaseCurrency, m)
	transactionService := services.NewTransactionService(db, currencyService)
	portfolioService := services.NewPortfolioService(transactionService, currencyService, m, cfg.BaseCurrency)
	snapshotService := services.NewPortfolioSnapshotService(db, portfolioService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	snapshotHandler := handlers.NewPortfolioSnapshotHandler(snapshotService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(rate.NewLimiter(rate.Every(cfg.AuthRateInterval), cfg.AuthRateBurst)))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	currencies := v1.Group("/currencies")
	currencies.GET("", currencyHandler.ListCurrencies)
	currencies.GET("/:id", currencyHandler.GetCurrency)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.GET("/convert", portfolioHandler.Convert)
	portfolio.GET("/snapshots", snapshotHandler.GetSnapshots)

	// Pipeline routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.POST("/quotes", currencyHandler.UpsertQuotes)
	pipeline.POST("/snapshots", snapshotHandler.ComputeSnapshots)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrNotFound})
	})

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
