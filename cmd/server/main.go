package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/societyops/maintenance-engine/internal/config"
	"github.com/societyops/maintenance-engine/internal/gateway"
	"github.com/societyops/maintenance-engine/internal/handler"
	"github.com/societyops/maintenance-engine/internal/metrics"
	"github.com/societyops/maintenance-engine/internal/repository"
	"github.com/societyops/maintenance-engine/internal/service"
	"github.com/societyops/maintenance-engine/pkg/response"
)

func main() {
	// .env is optional; viper reads the environment either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := newLogger(cfg)

	db, err := initDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	gatewayClient, err := gateway.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize payment gateway")
	}

	// Initialize repositories
	residentRepo := repository.NewResidentRepository(db)
	societyRepo := repository.NewSocietyRepository(db)
	helpdeskRepo := repository.NewHelpdeskRepository(db)

	// Initialize services
	billingService := service.NewBillingService(residentRepo, societyRepo, gatewayClient, redisClient, cfg, logger)
	societyService := service.NewSocietyService(residentRepo, societyRepo, helpdeskRepo, logger)

	billingHandler := handler.NewBillingHandler(billingService)
	residentHandler := handler.NewResidentHandler(societyService)
	societyHandler := handler.NewSocietyHandler(societyService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	collector := metrics.New()

	// Setup routes
	router := setupRoutes(billingHandler, residentHandler, societyHandler, healthHandler)
	router.Use(response.CORSMiddleware)
	router.Use(response.LoggingMiddleware(logger))
	router.Use(collector.Middleware)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.GetReadTimeout(),
		WriteTimeout: cfg.Server.GetWriteTimeout(),
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("gateway", gatewayClient.Name()).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.Logging.Format == "console" || cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return logger
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.GetConnMaxLifetime())

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	billingHandler *handler.BillingHandler,
	residentHandler *handler.ResidentHandler,
	societyHandler *handler.SocietyHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check and metrics
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/residents", residentHandler.Register).Methods("POST")
	api.HandleFunc("/residents", residentHandler.List).Methods("GET")
	api.HandleFunc("/residents/{residentId}/approve", residentHandler.Approve).Methods("POST")
	api.HandleFunc("/residents/{residentId}/decline", residentHandler.Decline).Methods("POST")
	api.HandleFunc("/residents/{residentId}/bill", billingHandler.GetBill).Methods("GET")
	api.HandleFunc("/residents/{residentId}/orders", billingHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/payments/verify", billingHandler.VerifyPayment).Methods("POST")

	api.HandleFunc("/societies", societyHandler.Create).Methods("POST")
	api.HandleFunc("/societies/{name}", societyHandler.Get).Methods("GET")
	api.HandleFunc("/societies/{name}/maintenance-bill", societyHandler.UpdateMaintenanceBill).Methods("PUT")
	api.HandleFunc("/societies/{name}/notices", societyHandler.ListNotices).Methods("GET")
	api.HandleFunc("/societies/{name}/notices", societyHandler.PostNotice).Methods("POST")
	api.HandleFunc("/societies/{name}/complaints", societyHandler.ListComplaints).Methods("GET")
	api.HandleFunc("/societies/{name}/complaints", societyHandler.FileComplaint).Methods("POST")
	api.HandleFunc("/societies/{name}/contacts", societyHandler.ListContacts).Methods("GET")
	api.HandleFunc("/societies/{name}/contacts", societyHandler.AddContact).Methods("POST")

	return router
}
