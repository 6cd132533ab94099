package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorly/config"
	"tutorly/internal/adapters/auth"
	"tutorly/internal/adapters/email"
	"tutorly/internal/database"
	httpdelivery "tutorly/internal/delivery/http"
	"tutorly/internal/delivery/http/controllers"
	"tutorly/internal/delivery/http/middleware"
	"tutorly/internal/domain"
	"tutorly/internal/metrics"
	"tutorly/internal/repository/memory"
	"tutorly/internal/repository/postgres"
	"tutorly/internal/services"
)

// @title Tutorly API
// @version 1.0
// @description Slot reservation service for one-to-one tutoring sessions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		slots  domain.SlotStore
		ledger domain.SessionLedger
		users  domain.UserRepository
	)
	switch cfg.Store {
	case config.StorePostgres:
		db, err := database.Open(ctx, cfg.DBUrl)
		if err != nil {
			logger.Error("failed to connect to database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Error("failed to run migrations", "err", err)
			os.Exit(1)
		}
		slots = postgres.NewSlotRepository(db)
		ledger = postgres.NewSessionRepository(db)
		users = postgres.NewUserRepository(db)
	default:
		slots = memory.NewSlotStore()
		ledger = memory.NewSessionLedger()
		users = memory.NewUserRepository()
	}
	logger.Info("storage initialized", "store", cfg.Store)

	collector := metrics.NewCollector()

	var emailSvc domain.EmailService
	if cfg.EmailEnabled {
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    "ses",
			FromAddress: cfg.EmailFrom,
			FromName:    "Tutorly",
			SES: email.SESConfig{
				Region:          cfg.AWSRegion,
				AccessKeyID:     cfg.AWSAccessKey,
				SecretAccessKey: cfg.AWSSecretKey,
			},
		})
		if err != nil {
			logger.Error("failed to create mailer", "err", err)
			os.Exit(1)
		}
		emailSvc = services.NewEmailService(mailer, email.NewTemplateRenderer())
	}

	hasher := auth.NewBcryptHasher(0) // 0 selects bcrypt.DefaultCost
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	authSvc := services.NewAuthService(users, hasher, issuer, cfg.TokenExpiry)
	tutorSvc := services.NewTutorService(users, slots)
	availabilitySvc := services.NewAvailabilityService(slots, collector)
	reservationSvc := services.NewReservationService(slots, ledger, users, emailSvc, collector, logger)

	mux := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Auth:           controllers.NewAuthController(logger, authSvc),
		Tutors:         controllers.NewTutorController(logger, tutorSvc, availabilitySvc),
		Reservations:   controllers.NewReservationController(logger, reservationSvc),
		Admin:          controllers.NewAdminController(logger, tutorSvc),
		TokenVerifier:  verifier,
		BookingLimiter: middleware.NewRateLimiter(cfg.BookingRatePerMinute, cfg.BookingRateBurst),
		Metrics:        collector.Handler(),
	})

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, collector, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
