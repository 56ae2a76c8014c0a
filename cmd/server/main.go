package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"petroserve/internal/app"
	"petroserve/internal/config"
	"petroserve/internal/handler"
	internalRedis "petroserve/internal/redis"
	"petroserve/internal/repository"
	"petroserve/internal/repository/memory"
	"petroserve/internal/repository/postgres"
	"petroserve/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize repositories. Demo mode runs on seeded in-memory data and
	// never dials PostgreSQL.
	var userRepo repository.UserRepository
	var deliveryRepo repository.DeliveryRepository
	var historyRepo repository.HistoryRepository

	if cfg.Demo.Enabled {
		log.Println("Demo mode: using seeded in-memory repositories")
		userRepo = memory.NewUserRepository()
		deliveryRepo = memory.NewDeliveryRepository()
		historyRepo = memory.NewHistoryRepository()
	} else {
		db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")

		userRepo = postgres.NewUserRepository(db)
		deliveryRepo = postgres.NewDeliveryRepository(db)
		historyRepo = postgres.NewHistoryRepository(db)
	}

	catalogRepo := memory.NewCatalogRepository()

	// Initialize Redis (sessions and order idempotency).
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(cfg, nrApp, redisClient, userRepo, deliveryRepo, historyRepo, catalogRepo)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(
	cfg *config.Config,
	nrApp *newrelic.Application,
	redisClient *redis.Client,
	userRepo repository.UserRepository,
	deliveryRepo repository.DeliveryRepository,
	historyRepo repository.HistoryRepository,
	catalogRepo repository.CatalogRepository,
) *http.Server {
	// Initialize session store.
	sessionStore := internalRedis.NewSessionStore(redisClient, cfg.Auth.SessionTTL)

	// Initialize services.
	notificationService := service.NewNotificationService()
	authService := service.NewAuthService(userRepo, sessionStore, cfg.Auth.LoginDelay)
	fuelService := service.NewFuelOrderService(notificationService)
	mechanicService := service.NewMechanicBookingService(notificationService)
	deliveryService := service.NewDeliveryService(deliveryRepo, notificationService)
	historyService := service.NewHistoryService(historyRepo)
	locationService := service.NewLocationService(&service.StaticGeolocator{
		Position: service.Position{Lat: 28.5355, Lng: 77.3910},
		Delay:    200 * time.Millisecond,
	})

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(fuelService, mechanicService, locationService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	historyHandler := handler.NewHistoryHandler(historyService)
	catalogHandler := handler.NewCatalogHandler(catalogRepo)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:      authHandler,
		OrderHandler:     orderHandler,
		DeliveryHandler:  deliveryHandler,
		HistoryHandler:   historyHandler,
		CatalogHandler:   catalogHandler,
		SessionStore:     sessionStore,
		IdempotencyStore: redisClient,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
