package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ngoserver/config"
	"ngoserver/db"
	"ngoserver/mail"
	"ngoserver/routes"
)

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.AppEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg)

	if err := db.InitDatabase(cfg.Database.Path); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("failed to initialize database")
	}
	log.Info().Str("path", cfg.Database.Path).Msg("database connected")

	if err := db.SeedAccounts(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.UserEmail, cfg.Seed.UserPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed bootstrap accounts")
	}

	if _, err := os.Stat("uploads"); os.IsNotExist(err) {
		os.Mkdir("uploads", 0755)
	}

	sender := mail.NewSendGridSender(cfg.Mail.SendGridKey, cfg.Mail.FromEmail, cfg.Mail.Inbox)
	notifier := mail.NewNotifier(sender, cfg.Mail.QueueSize, cfg.Mail.SendTimeout)

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Static("/uploads", "./uploads")

	routes.SetupRoutes(app, cfg, notifier)

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	notifier.Close()
	log.Info().Msg("server stopped cleanly")
}
