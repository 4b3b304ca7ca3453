package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalysis "github.com/osteovision/osteovision/internal/application/analysis"
	"github.com/osteovision/osteovision/internal/config"
	domai "github.com/osteovision/osteovision/internal/domain/ai"
	"github.com/osteovision/osteovision/internal/infra/ai/gateway"
	"github.com/osteovision/osteovision/internal/infra/httpserver"
	"github.com/osteovision/osteovision/internal/logger"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.WithError(err).Fatal("config load error")
	}

	client := gateway.New(cfg.APIKey, cfg.Gateway.BaseURL, cfg.Gateway.Model)
	svc := appanalysis.NewService(client, cfg.GatewayTimeout())

	handler := httpserver.NewRouter(svc, httpserver.Options{
		RateLimitCapacity:   cfg.RateLimit.Capacity,
		RateLimitRefillRate: cfg.RateLimit.RefillRate,
		CredentialCheck: func(ctx context.Context) error {
			if cfg.APIKey() == "" {
				return domai.ErrNotConfigured
			}
			return nil
		},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GatewayTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("shutdown error")
	}
}
