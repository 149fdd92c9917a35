package main

import (
	"context"
	"net/http"
	"time"

	"property-catalog/internal/catalog"
	"property-catalog/internal/handler"
	"property-catalog/internal/mail"
	mid "property-catalog/internal/middleware"
	"property-catalog/internal/repository"
	"property-catalog/pkg/config"
	"property-catalog/pkg/database"
	"property-catalog/pkg/logger"
	"property-catalog/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file; env vars from the environment win when it is absent
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting property-catalog",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port),
		zap.String("catalog_source", appConfig.Catalog.Source))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Pick the catalog source
	var repo repository.PropertyRepository
	if appConfig.Catalog.Source == "postgres" {
		if err := database.InitDB(appConfig); err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		log.Info("Database connection established")
		repo = repository.NewPostgresRepository(database.GetDB())
	} else {
		repo = repository.NewFileRepository(appConfig.Catalog.FilePath)
	}

	// Load the catalog once; a malformed source is fatal, the process must
	// not serve queries over data it cannot vouch for
	loadStart := time.Now()
	store, err := catalog.LoadStore(context.Background(), repo)
	if err != nil {
		log.Fatal("Failed to load property catalog", zap.Error(err))
	}
	prometheus.TrackCatalogLoad()(loadStart)
	for category, count := range store.CountByCategory() {
		prometheus.CatalogSizeGauge.WithLabelValues(string(category)).Set(float64(count))
	}
	log.Info("Property catalog loaded", zap.Int("properties", store.Len()))

	// Mail relay for the contact and lead forms
	sender := mail.NewRelayClient(&appConfig.Mail)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware(log))

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Catalog API routes
	propertyHandler := handler.NewPropertyHandler(store)
	e.GET("/api/properties", propertyHandler.Properties)
	e.GET("/api/properties/featured", propertyHandler.Featured)

	// Contact and lead intake
	contactHandler := handler.NewContactHandler(sender, &appConfig.Mail)
	e.POST("/api/contact", contactHandler.Contact)

	leadHandler := handler.NewLeadHandler(sender, &appConfig.Mail)
	e.POST("/api/leads", leadHandler.SubmitLead)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
