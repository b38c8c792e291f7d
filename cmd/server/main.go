package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripgenie-service/internal/infrastructure/config"
	"tripgenie-service/internal/infrastructure/oauth"
	"tripgenie-service/internal/infrastructure/persistence"
	"tripgenie-service/internal/interface/fixture"
	"tripgenie-service/internal/interface/genai"
	"tripgenie-service/internal/interface/repository"
	"tripgenie-service/internal/interface/rest"
	"tripgenie-service/internal/usecase"
	"tripgenie-service/pkg/logger"
	"tripgenie-service/pkg/metrics"

	domainRepo "tripgenie-service/internal/domain/repository"

	"golang.org/x/oauth2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting TripGenie Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up reference repositories
	destinationRepository := repository.NewGormDestinationRepository(gormDB)
	currencyRepository := repository.NewGormCurrencyRepository(gormDB)

	// Set up archive repository
	planRepo := repository.NewMongoPlanRepository(db)

	// Set up metrics
	m := metrics.NewMetrics("tripgenie")

	// Set up session store
	var sessionStore domainRepo.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		log.Info("Connecting to Redis")
		redisClient, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		sessionStore = repository.NewRedisSessionStore(redisClient, cfg.SessionTTL)
	default:
		memStore := repository.NewMemorySessionStore(cfg.SessionTTL, m)
		defer memStore.Close()
		sessionStore = memStore
	}

	// Set up itinerary provider
	var provider usecase.ItineraryProvider
	switch cfg.ProviderMode {
	case usecase.ProviderModeFixture:
		log.Warn("Serving fixture itineraries; live generation is disabled")
		provider = fixture.NewProvider(log)
	default:
		// Set up generation gateway OAuth
		genaiOAuth := oauth.NewGenAIOAuth(cfg.GenAIClientID, cfg.GenAIClientSecret, cfg.GenAITokenURL, log)
		var tokenSource oauth2.TokenSource
		if genaiOAuth.Enabled() {
			tokenSource = genaiOAuth.GetTokenSource(ctx)
		} else {
			log.Warn("Generation gateway auth not configured; sending unauthenticated requests")
		}

		generator := genai.NewClient(cfg.GenAIBaseURL, cfg.GenAITimeout, tokenSource, log)

		// Set up agents and orchestrator
		destinationAgent := usecase.NewDestinationAgent(generator, currencyRepository, log)
		activityAgent := usecase.NewActivityAgent(generator, log)
		accommodationAgent := usecase.NewAccommodationAgent(generator, log)
		costAgent := usecase.NewCostAgent(generator, log)

		orchestrator := usecase.NewMasterOrchestrator(
			destinationAgent,
			activityAgent,
			accommodationAgent,
			costAgent,
			generator,
			m,
			log,
		)
		provider = usecase.NewLiveProvider(orchestrator)
	}

	// Set up planner and HTTP layer
	planner := usecase.NewTripPlanner(provider, sessionStore, planRepo, destinationRepository, m, log, cfg.PlanTimeout)
	handler := rest.NewTripHandler(planner, log)
	router := rest.NewRouter(handler, cfg.AppVersion)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      rest.WrapMiddleware(router, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("HTTP server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for termination signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect failed", "error", err)
	}

	log.Info("TripGenie Service stopped")
}
