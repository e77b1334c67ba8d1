package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heatonjb/BirthdayBuddy/config"
	_ "github.com/heatonjb/BirthdayBuddy/docs"
	"github.com/heatonjb/BirthdayBuddy/internal/adapters/calendar"
	"github.com/heatonjb/BirthdayBuddy/internal/adapters/email"
	"github.com/heatonjb/BirthdayBuddy/internal/adapters/token"
	"github.com/heatonjb/BirthdayBuddy/internal/delivery/http/controllers"
	"github.com/heatonjb/BirthdayBuddy/internal/delivery/http/middleware"
	"github.com/heatonjb/BirthdayBuddy/internal/repository/postgres"
	"github.com/heatonjb/BirthdayBuddy/internal/services"

	deliveryhttp "github.com/heatonjb/BirthdayBuddy/internal/delivery/http"

	_ "github.com/lib/pq"
)

const serviceTimeout = 10 * time.Second

// @title BirthdayBuddy API
// @version 1.0
// @description Birthday party planning and RSVP service. Organizers create events and manage them with an admin token; guests view details and RSVP with a guest token.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	logger.Info("database connected")

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)
	tokens := token.NewGenerator()
	inviteBuilder := calendar.NewICSBuilder(tokens)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventService := services.NewEventService(eventRepo, tokens, emailService, logger, cfg.BaseURL, serviceTimeout)
	rsvpService := services.NewRSVPService(eventRepo, rsvpRepo, inviteBuilder, emailService, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	rsvpController := controllers.NewRSVPController(logger, rsvpService)
	mux := deliveryhttp.NewRouter(eventController, rsvpController)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
