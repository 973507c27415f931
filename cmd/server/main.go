// Package main initializes and starts the Voyage storefront server,
// setting up configuration, logging, the travel API client, the session
// manager, and the page handlers.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/voyage-travel/storefront/internal/api"
	"github.com/voyage-travel/storefront/internal/config"
	"github.com/voyage-travel/storefront/internal/logger"
	"github.com/voyage-travel/storefront/internal/server/handler/http"
	"github.com/voyage-travel/storefront/internal/session"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, config file, and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.SessionSecret == "" {
		zapLogger.Fatal("session secret is required")
	}
	if options.CSRFSecret == "" {
		zapLogger.Fatal("csrf secret is required")
	}

	// Client for the external travel API; every page talks through it.
	client := api.New(options.APIBaseURL, zapLogger)

	// Cookie-backed session with the two role token slots.
	sessions := session.NewManager([]byte(options.SessionSecret))

	// Page handlers with their cached collections and templates.
	handler, err := http.New(client, sessions, zapLogger, time.Duration(options.PaymentDelay), "templates")
	if err != nil {
		zapLogger.Fatal("failed to build handlers", zap.Error(err))
	}

	// Build the router with middleware and routes.
	router := http.NewRouter(handler, sessions, zapLogger, []byte(options.CSRFSecret))

	server := &nethttp.Server{
		Addr:    options.ListenAddr,
		Handler: router,
	}

	zapLogger.Info("starting storefront server",
		zap.String("addr", options.ListenAddr),
		zap.String("api", options.APIBaseURL),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}
