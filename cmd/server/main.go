package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skywatch-service/internal/infrastructure/config"
	"skywatch-service/internal/infrastructure/persistence"
	"skywatch-service/internal/infrastructure/zones"
	"skywatch-service/internal/interface/httpapi"
	storeRepo "skywatch-service/internal/interface/repository"
	"skywatch-service/internal/usecase"
	"skywatch-service/pkg/logger"
	"skywatch-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Skywatch Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up Redis connection (position store + alert ledger)
	log.Info("Connecting to Redis")
	redisClient, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal("Failed to connect to Redis", "error", err)
	}

	// Set up MongoDB connection (schedule registry)
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up PostgreSQL connection (gate registry)
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	positionRepo := storeRepo.NewRedisPositionRepository(redisClient, cfg.PositionTTL)
	alertRepo := storeRepo.NewRedisAlertRepository(redisClient, cfg.AlertTTL, cfg.ActiveAlertCap)
	gateRepo := storeRepo.NewGormGateRepository(gormDB)
	scheduleRepo := storeRepo.NewMongoScheduleRepository(db)

	// Set up zone index
	zoneSet, err := zones.Load(cfg.ZoneFile)
	if err != nil {
		log.Fatal("Failed to load zones", "error", err)
	}
	zoneIndex, err := usecase.NewZoneIndex(zoneSet)
	if err != nil {
		log.Fatal("Failed to build zone index", "error", err)
	}
	log.Info("Zone index ready", "zones", len(zoneSet))

	// Set up use cases
	m := metrics.NewMetrics("skywatch")
	collisionDetector := usecase.NewCollisionDetector(
		positionRepo, alertRepo,
		cfg.SafeDistanceKm, cfg.SafeAltitudeDiffFt, cfg.CollisionInterval,
		log, m,
	)
	altitudeDetector := usecase.NewAltitudeDetector(
		positionRepo, alertRepo, zoneIndex,
		cfg.MinSafeAltitudeFt, cfg.AltitudeInterval,
		log, m,
	)
	aggregator := usecase.NewFlightAggregator(positionRepo, gateRepo, scheduleRepo, cfg.RegistryTimeout, log)

	// Start detectors
	collisionDetector.Start(ctx)
	altitudeDetector.Start(ctx)

	// Set up HTTP server
	mux := http.NewServeMux()
	handler := httpapi.NewHandler(positionRepo, alertRepo, aggregator, collisionDetector, altitudeDetector, log, m)
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	collisionDetector.Stop()
	altitudeDetector.Stop()
	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Error("Redis close error", "error", err)
	}

	log.Info("Skywatch Service stopped")
}
