package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "estatespace-backend/internal/api/http"
	"estatespace-backend/internal/config"
	"estatespace-backend/internal/logger"
	"estatespace-backend/internal/repository/postgres"
	"estatespace-backend/internal/security"
	"estatespace-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file (optional)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EstateSpace backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "frontend_url", cfg.FrontendURL)
	logger.Info("Auth configuration", "mode", cfg.Auth.Mode, "supabase_url", cfg.Auth.SupabaseURL)
	logger.Info("Mail configuration", "provider", cfg.Mail.Provider, "from", cfg.Mail.FromEmail)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		logger.Error("Failed to ping database", "error", err)
		os.Exit(1)
	}
	cancelPing()
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	// Initialize collaborators
	httpClient := &http.Client{Timeout: 15 * time.Second}

	var verifier security.TokenVerifier
	switch cfg.Auth.Mode {
	case config.AuthModeJWT:
		verifier = security.NewJWTVerifier(cfg.Auth.JWTSecret)
	default:
		verifier = security.NewSupabaseVerifier(cfg.Auth.SupabaseURL, cfg.Auth.SupabaseAnonKey, httpClient)
	}

	var mailer service.Mailer
	switch cfg.Mail.Provider {
	case config.MailProviderSendGrid:
		mailer = service.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, "", httpClient)
	default:
		logger.Warn("Using log mail provider, emails will not be delivered")
		mailer = service.NewLogMailer(cfg.Mail.FromEmail)
	}

	// Initialize Services
	guard := service.NewAccessGuard(verifier, store.SpaceRepository)
	issuer := service.NewInvitationIssuer(store.InvitationRepository, mailer, cfg.FrontendURL, service.UUIDToken)

	router := httpapi.NewRouter(httpapi.Dependencies{
		Guard:  guard,
		Issuer: issuer,
		Mailer: mailer,
		CORS:   cfg.CORS,
	})

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Get().Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
