package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	domainRepo "flight-tracker-service/internal/domain/repository"
	"flight-tracker-service/internal/infrastructure/config"
	"flight-tracker-service/internal/infrastructure/oauth"
	"flight-tracker-service/internal/infrastructure/persistence"
	"flight-tracker-service/internal/interface/api"
	"flight-tracker-service/internal/interface/repository"
	"flight-tracker-service/internal/usecase"
	"flight-tracker-service/pkg/logger"
	"flight-tracker-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Flight Tracker Service", "version", cfg.AppVersion, "storage", cfg.StorageDriver)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the durable collection
	collection, closeStorage := setupStorage(ctx, cfg, log)
	defer closeStorage()

	// Set up flight lookup
	lookup := setupLookup(ctx, cfg, log)

	m := metrics.NewMetrics("flight_tracker", prometheus.DefaultRegisterer)
	opts := []usecase.Option{
		usecase.WithMetrics(m),
		usecase.WithTimeLayout(cfg.TimeLayout),
	}

	// Load or seed tracked flights
	store := usecase.NewFlightStore(collection, log, opts...)
	if err := store.Initialize(ctx); err != nil {
		log.Fatal("Failed to load tracked flights", "error", err)
	}

	ingestion := usecase.NewFlightIngestion(store, lookup, log, opts...)

	rules := usecase.DefaultTransitionRules()
	if cfg.SimulationRulesFile != "" {
		rules, err = usecase.LoadTransitionRules(cfg.SimulationRulesFile)
		if err != nil {
			log.Fatal("Failed to load simulation rules", "file", cfg.SimulationRulesFile, "error", err)
		}
	}

	simulator, err := usecase.NewStatusSimulator(store, rules, cfg.SimulationInterval, log, opts...)
	if err != nil {
		log.Fatal("Failed to create status simulator", "error", err)
	}

	// Start status simulation in a goroutine
	simulatorDone := make(chan struct{})
	go func() {
		defer close(simulatorDone)
		simulator.Run(ctx)
	}()

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	api.NewFlightHandler(store, ingestion, log).Register(mux)

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

	cancel() // stops the simulator; no tick is applied after this
	<-simulatorDone

	log.Info("Flight Tracker Service stopped", "trackedFlights", store.Len())
}

// setupStorage connects the configured driver and returns the collection
// repository together with a function that releases the connection
func setupStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (domainRepo.FlightCollectionRepository, func()) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		log.Info("Connecting to PostgreSQL")
		db, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		repo, err := repository.NewGormFlightCollectionRepository(db, cfg.StorageKey)
		if err != nil {
			log.Fatal("Failed to migrate PostgreSQL", "error", err)
		}
		return repo, func() {
			if err := persistence.ClosePostgresDB(db); err != nil {
				log.Error("PostgreSQL close error", "error", err)
			}
		}

	case config.StorageRedis:
		log.Info("Connecting to Redis", "addr", cfg.RedisAddr)
		client, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		return repository.NewRedisFlightCollectionRepository(client, cfg.StorageKey), func() {
			if err := client.Close(); err != nil {
				log.Error("Redis close error", "error", err)
			}
		}

	default:
		log.Info("Connecting to MongoDB")
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword, cfg.MongoTimeout)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		db := persistence.GetDatabase(client, cfg.MongoDB)
		return repository.NewMongoFlightCollectionRepository(db, cfg.StorageKey), func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}
	}
}

// setupLookup builds the lookup chain: remote API or stub, behind a cache
func setupLookup(ctx context.Context, cfg *config.Config, log logger.Logger) domainRepo.FlightLookupRepository {
	var lookup domainRepo.FlightLookupRepository

	if cfg.LookupURL == "" {
		log.Warn("FLIGHT_LOOKUP_URL not set, using stub flight lookup")
		lookup = repository.NewStubFlightLookupRepository()
	} else {
		client := &http.Client{}
		if oauth.Enabled(cfg.LookupClientID, cfg.LookupClientSecret, cfg.LookupTokenURL) {
			client = oauth.NewLookupOAuth(cfg.LookupClientID, cfg.LookupClientSecret, cfg.LookupTokenURL, log).HTTPClient(ctx)
		}
		client.Timeout = cfg.LookupTimeout
		lookup = repository.NewHTTPFlightLookupRepository(cfg.LookupURL, client, log)
	}

	if cfg.LookupCacheTTL > 0 {
		lookup = repository.NewCachedFlightLookupRepository(lookup, cfg.LookupCacheTTL)
	}
	return lookup
}
