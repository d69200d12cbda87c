package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/richieai/onboarding-api/internal/advisor"
	"github.com/richieai/onboarding-api/internal/auth"
	"github.com/richieai/onboarding-api/internal/client"
	"github.com/richieai/onboarding-api/internal/config"
	"github.com/richieai/onboarding-api/internal/database"
	"github.com/richieai/onboarding-api/internal/httpx"
	"github.com/richieai/onboarding-api/internal/invitation"
	"github.com/richieai/onboarding-api/internal/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	advisorRepo := advisor.NewRepository()

	invitationService := invitation.NewService(
		db,
		invitation.NewRepository(),
		client.NewRepository(),
		notifier.NewSendGrid(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName),
		invitation.Config{
			TTL:            cfg.InvitationTTL,
			MaxInvitations: cfg.MaxInvitations,
			PortalBaseURL:  cfg.PortalBaseURL,
		},
	)

	advisorHandler := advisor.NewHandler(db, tokens)
	clientHandler := client.NewHandler(db)
	invitationHandler := invitation.NewHandler(invitationService)

	authenticated := auth.Middleware(tokens, advisor.IdentityResolver(db, advisorRepo))
	strictLimit := httpx.RateLimitByIP(httpx.StrictLimit)
	publicLimit := httpx.RateLimitByIP(httpx.PublicLimit)

	r := mux.NewRouter()

	r.Handle("/auth/register", httpx.Chain(http.HandlerFunc(advisorHandler.Register), strictLimit)).Methods("POST")
	r.Handle("/auth/login", httpx.Chain(http.HandlerFunc(advisorHandler.Login), strictLimit)).Methods("POST")
	r.Handle("/auth/profile", httpx.Chain(http.HandlerFunc(advisorHandler.Profile), authenticated)).Methods("GET")
	r.Handle("/auth/logout", httpx.Chain(http.HandlerFunc(advisorHandler.Logout), authenticated)).Methods("POST")

	// Invitation routes are registered before the parameterized client routes.
	r.Handle("/clients/manage/invitations", httpx.Chain(http.HandlerFunc(invitationHandler.Issue), authenticated)).Methods("POST")
	r.Handle("/clients/manage/invitations", httpx.Chain(http.HandlerFunc(invitationHandler.List), authenticated)).Methods("GET")

	r.Handle("/clients/manage", httpx.Chain(http.HandlerFunc(clientHandler.List), authenticated)).Methods("GET")
	r.Handle("/clients/manage/{id}", httpx.Chain(http.HandlerFunc(clientHandler.Get), authenticated)).Methods("GET")
	r.Handle("/clients/manage/{id}", httpx.Chain(http.HandlerFunc(clientHandler.Update), authenticated)).Methods("PUT")
	r.Handle("/clients/manage/{id}", httpx.Chain(http.HandlerFunc(clientHandler.Delete), authenticated)).Methods("DELETE")

	// Public onboarding endpoints, addressed by token only.
	r.Handle("/clients/onboarding/{token}", httpx.Chain(http.HandlerFunc(invitationHandler.PublicFetch), publicLimit)).Methods("GET")
	r.Handle("/clients/onboarding/{token}", httpx.Chain(http.HandlerFunc(invitationHandler.PublicSubmit), publicLimit)).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      httpx.Chain(corsHandler, httpx.RequestLogger(logger)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Env)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			_ = server.Close()
		}
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
