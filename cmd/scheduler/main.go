package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/societyops/maintenance-engine/internal/config"
	"github.com/societyops/maintenance-engine/internal/repository"
	"github.com/societyops/maintenance-engine/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "scheduler").Logger()
	logger.Info().Msg("Starting maintenance scheduler...")

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	residentRepo := repository.NewResidentRepository(db)
	societyRepo := repository.NewSocietyRepository(db)

	// The sweep only reads; no gateway or redis needed here
	billingService := service.NewBillingService(residentRepo, societyRepo, nil, nil, cfg, logger)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", cfg.Scheduler.Timezone).Msg("Invalid scheduler timezone")
	}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	_, err = c.AddFunc(cfg.Scheduler.ReminderSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		reminded, err := billingService.SweepArrears(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Arrears sweep failed")
			return
		}
		logger.Info().Int("reminders", reminded).Msg("Arrears sweep finished")
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to schedule arrears sweep")
	}

	c.Start()
	logger.Info().Str("spec", cfg.Scheduler.ReminderSpec).Msg("Scheduler started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down scheduler...")
	c.Stop()
	logger.Info().Msg("Scheduler stopped")
}
