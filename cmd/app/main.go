package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tlopesdev-arch/simulado-V3/internal/checkout"
	"github.com/tlopesdev-arch/simulado-V3/internal/config"
	"github.com/tlopesdev-arch/simulado-V3/internal/logger"
	"github.com/tlopesdev-arch/simulado-V3/internal/mercadopago"
	"github.com/tlopesdev-arch/simulado-V3/internal/profile"
	"github.com/tlopesdev-arch/simulado-V3/internal/server"
	"github.com/tlopesdev-arch/simulado-V3/internal/webhook"
)

func main() {
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting checkout service")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fsClient, err := profile.NewFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseServiceAccount, cfg.FirebaseCredentialsFile)
	if err != nil {
		logger.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer fsClient.Close()
	logger.Info("Firestore client initialized")

	mpClient := mercadopago.NewClient(cfg.MPAccessToken, cfg.MPBaseURL)

	profiles := profile.NewRepository(fsClient)
	checkoutHandler := checkout.NewHandler(mpClient, cfg.PublicBaseURL)
	webhookHandler := webhook.NewHandler(mpClient, profiles)

	srv := server.New(cfg, checkoutHandler, webhookHandler)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
