// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"valuemed-backend/internal/api"
	"valuemed-backend/internal/common/aws"
	"valuemed-backend/internal/common/config"
	"valuemed-backend/internal/common/database"
	"valuemed-backend/internal/common/logger"
	"valuemed-backend/internal/common/observability"
	"valuemed-backend/internal/pillars"
	"valuemed-backend/internal/relay/contact"
	"valuemed-backend/internal/wizard"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting valuemed backend...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	tracing, err := observability.NewTracing(cfg.App.Name, cfg.Tracing.JaegerEndpoint)
	if err != nil {
		zapLog.Fatal("tracing init failed", zap.Error(err))
	}
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Pillar content store ---
	store := pillars.NewDefault()
	zapLog.Info("Pillar store loaded", zap.Int("pillars", len(store.All())))

	// --- Wizard sessions: Redis when configured, in-memory otherwise ---
	var sessions wizard.SessionStore
	if cfg.Database.Redis.Address != "" {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis init failed", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
		sessions = wizard.NewRedisStore(redis.GetClient(), cfg.Wizard.SessionTTLDuration())
	} else {
		zapLog.Info("Redis not configured, using in-memory sessions")
		sessions = wizard.NewMemoryStore(cfg.Wizard.SessionTTLDuration())
	}

	// --- Pillar search: Elasticsearch when enabled, substring fallback otherwise ---
	var searcher *pillars.Searcher
	if cfg.Search.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch init failed", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
		searcher = pillars.NewSearcher(store, esClient.Client, cfg.Search.Index, log)
		if err := searcher.IndexAll(ctx); err != nil {
			zapLog.Warn("pillar indexing failed, falling back to in-memory search", zap.Error(err))
			searcher = pillars.NewSearcher(store, nil, cfg.Search.Index, log)
		}
	} else {
		searcher = pillars.NewSearcher(store, nil, cfg.Search.Index, log)
	}

	// --- Contact relay ---
	contactCfg := contact.FromAppConfig(cfg)
	if err := contactCfg.Validate(); err != nil {
		zapLog.Fatal("contact config invalid", zap.Error(err))
	}

	var transport contact.Transport
	if contactCfg.Provider == "ses" {
		sesClient, err := aws.NewSESClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		transport = contact.NewSESTransport(sesClient, contactCfg)
	} else {
		transport = contact.NewSMTPTransport(contactCfg)
	}

	var snsClient contact.SNSAPI
	if contactCfg.LeadAlertEnabled {
		client, err := aws.NewSNSClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		snsClient = client
	}

	contactService := contact.NewService(contact.ServiceDependencies{Logger: log}, contactCfg, transport, snsClient)
	contactHandler := contact.NewHandler(contactService, log)

	// --- HTTP server ---
	server := api.NewServer(api.Dependencies{
		Logger:    log,
		Pillars:   store,
		Searcher:  searcher,
		Sessions:  sessions,
		Estimator: wizard.NewEstimator(cfg.Wizard.Estimates),
		Contact:   contactHandler,
		Obs:       obs,
		Tracing:   tracing,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}
