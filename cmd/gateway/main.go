package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acquirepay/payment-gateway/internal/application/services"
	"github.com/acquirepay/payment-gateway/internal/config"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/bank"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/memstore"
	"github.com/acquirepay/payment-gateway/internal/interfaces/rest/handlers"
	"github.com/acquirepay/payment-gateway/internal/interfaces/rest/middleware"
	"github.com/acquirepay/payment-gateway/internal/validation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"bank_base_url", cfg.BankClient.BankBaseURL,
		"log_level", cfg.Logger.Level,
	)

	store := memstore.NewPaymentStore()
	bankClient := bank.NewBankClient(cfg.BankClient)
	requestValidator := validation.NewRequestValidator()

	authService := services.NewAuthorizeService(requestValidator, bankClient, store, logger)
	queryService := services.NewQueryService(store, logger)

	paymentHandler := handlers.NewPaymentHandler(authService, queryService)

	mux := http.NewServeMux()
	paymentHandler.RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(http.Handler(mux))
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
