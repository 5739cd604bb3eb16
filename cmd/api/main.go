// @title Event Booking API
// @version 1.0
// @description Events and bookings with validated, normalized writes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventbooking/config"
	_ "eventbooking/docs"
	"eventbooking/internal/adapters/auth"
	"eventbooking/internal/adapters/email"
	httpdelivery "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository/cache"
	"eventbooking/internal/repository/postgres"
	"eventbooking/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		return err
	}

	var eventRepo domain.EventRepository = postgres.NewEventRepository(db)
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		eventRepo = cache.NewEventRepository(eventRepo, client, cfg.Redis.TTL, logger)
		logger.Info("event cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}
	bookingRepo := postgres.NewBookingRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	eventService := services.NewEventService(eventRepo, cfg.ContextTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger, cfg.ContextTimeout)

	router := httpdelivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewBookingController(logger, bookingService),
		middleware.RequireAuth(auth.NewJWT(cfg.JWTSecret), logger),
		db,
	)
	handler := middleware.Logging(logger, middleware.CORS(cfg.AllowedOrigins, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
