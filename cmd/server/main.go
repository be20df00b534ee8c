package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"dealerdesk/internal/config"
	"dealerdesk/internal/handlers"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/repositories/records"
	"dealerdesk/internal/services"
	"dealerdesk/internal/store"
	"dealerdesk/pkg/cache"
	"dealerdesk/pkg/database"
	"dealerdesk/pkg/logger"
	"dealerdesk/pkg/storage"
	"dealerdesk/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logConfig := &logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	}
	if cfg.App.Debug {
		logConfig.Format = "text"
		logConfig.Colors = true
	}
	appLogger, err := logger.NewLogger(logConfig)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	var cacheService records.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisCache.Close()
		cacheService = redisCache
	}

	provider, err := buildStorageProvider(cfg.Storage)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize storage provider")
	}

	fileService := storage.NewFileService(provider, appLogger)
	if err := fileService.EnsureBuckets(context.Background()); err != nil {
		appLogger.WithError(err).Fatal("Failed to provision storage buckets")
	}

	// Repositories
	recordStore := store.NewMongoStore(db.Database)
	vehicleRepo := records.NewVehicleRepository(recordStore, cacheService, appLogger)
	customerRepo := records.NewCustomerRepository(recordStore)
	saleRepo := records.NewSaleRepository(recordStore, vehicleRepo, customerRepo, appLogger)
	appointmentRepo := records.NewServiceAppointmentRepository(recordStore, customerRepo)
	applicationRepo := records.NewApplicationRepository(recordStore)

	// Services
	intakeService := services.NewIntakeService(applicationRepo, fileService, appLogger)
	mediaService := services.NewMediaService(vehicleRepo, fileService, appLogger)
	seedService := services.NewSeedService(vehicleRepo, customerRepo, appLogger)

	// Handlers
	vehicleHandler := handlers.NewVehicleHandler(vehicleRepo, mediaService)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	saleHandler := handlers.NewSaleHandler(saleRepo)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo)
	applicationHandler := handlers.NewApplicationHandler(applicationRepo, fileService)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	fileHandler := handlers.NewFileHandler(fileService)
	adminHandler := handlers.NewAdminHandler(fileService, seedService)
	authHandler := handlers.NewAuthHandler(cfg.Security)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(appLogger))

	jwtSecret := cfg.Security.JWTSecret

	v1 := router.Group("/api/v1")
	{
		routes.SetupVehicleRoutes(v1, vehicleHandler, jwtSecret)
		routes.SetupCustomerRoutes(v1, customerHandler, jwtSecret)
		routes.SetupSaleRoutes(v1, saleHandler, jwtSecret)
		routes.SetupAppointmentRoutes(v1, appointmentHandler, jwtSecret)
		routes.SetupApplicationRoutes(v1, intakeHandler, applicationHandler, jwtSecret)
		routes.SetupAdminRoutes(v1, authHandler, adminHandler, fileHandler, jwtSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		appLogger.WithError(err).Fatal("Server exited")
	}
}

func buildStorageProvider(cfg *config.StorageConfig) (storage.Provider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Provider(cfg.AWS.Region, cfg.BucketPrefix)
	case "gcs":
		return storage.NewGCPStorageProvider(cfg.GCP.ProjectID, cfg.GCP.CredentialsFile, cfg.BucketPrefix)
	default:
		return storage.NewLocalProvider(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
