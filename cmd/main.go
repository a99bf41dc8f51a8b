package main

import (
	"github.com/Pearlman11/RentReady/internal/handler"
	mid "github.com/Pearlman11/RentReady/internal/middleware"
	"github.com/Pearlman11/RentReady/internal/service"
	"github.com/Pearlman11/RentReady/pkg/config"
	"github.com/Pearlman11/RentReady/pkg/database"
	"github.com/Pearlman11/RentReady/pkg/logger"
	"github.com/Pearlman11/RentReady/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
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

	log.Info("Starting rentready",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if appConfig.DB.Seed {
		if err := database.Seed(db); err != nil {
			log.Fatal("Failed to seed database", zap.Error(err))
		}
		log.Info("Demo data seeded")
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	health := handler.NewHealthHandler(db)
	e.GET("/health", health.Check)

	// Property API routes
	properties := handler.NewPropertyHandler(service.NewPropertyService(db))
	propertyAPI := e.Group("/api/properties")
	propertyAPI.GET("", properties.List)
	propertyAPI.GET("/:id", properties.Get)
	propertyAPI.POST("", properties.Create)
	propertyAPI.PUT("/:id", properties.Update)
	propertyAPI.DELETE("/:id", properties.Delete)

	// Tenant API routes
	tenants := handler.NewTenantHandler(service.NewTenantService(db))
	tenantAPI := e.Group("/api/tenants")
	tenantAPI.GET("", tenants.List)
	tenantAPI.GET("/:id", tenants.Get)
	tenantAPI.POST("", tenants.Create)
	tenantAPI.PUT("/:id", tenants.Update)
	tenantAPI.DELETE("/:id", tenants.Delete)

	// Lease API routes
	leases := handler.NewLeaseHandler(service.NewLeaseService(db))
	leaseAPI := e.Group("/api/leases")
	leaseAPI.GET("", leases.List)
	leaseAPI.GET("/:id", leases.Get)
	leaseAPI.POST("", leases.Create)
	leaseAPI.PUT("/:id", leases.Update)
	leaseAPI.DELETE("/:id", leases.Delete)

	// Payment API routes
	payments := handler.NewPaymentHandler(service.NewPaymentService(db))
	paymentAPI := e.Group("/api/payments")
	paymentAPI.GET("", payments.List)
	paymentAPI.GET("/:id", payments.Get)
	paymentAPI.POST("", payments.Create)
	paymentAPI.PUT("/:id", payments.Update)
	paymentAPI.DELETE("/:id", payments.Delete)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
