// Command server runs the watchgate screening API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watchgate/internal/domainintel"
	"watchgate/internal/jurisdiction"
	"watchgate/internal/platform/config"
	"watchgate/internal/platform/httpserver"
	"watchgate/internal/platform/jwttoken"
	"watchgate/internal/platform/logger"
	"watchgate/internal/platform/middleware"
	platformredis "watchgate/internal/platform/redis"
	"watchgate/internal/screening"
	"watchgate/internal/screening/handler"
	"watchgate/internal/screening/metrics"
	httptransport "watchgate/internal/transport/http"
	"watchgate/internal/watchlist"
	audit "watchgate/pkg/platform/audit"
	auditpublisher "watchgate/pkg/platform/audit/publisher"
	auditpostgres "watchgate/pkg/platform/audit/store/postgres"
	auditworker "watchgate/pkg/platform/audit/worker"
)

const auditInboxSize = 256

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log, closeLog := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis setup failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("watchlist cache enabled")
	}

	sets, err := loadSets(cfg)
	if err != nil {
		log.Error("jurisdiction setup failed", "error", err)
		os.Exit(1)
	}

	recorder, auditCleanup, err := buildAuditTrail(ctx, cfg, log)
	if err != nil {
		log.Error("audit setup failed", "error", err)
		os.Exit(1)
	}
	defer auditCleanup()

	service := screening.NewService(
		screening.NewMatcher(cfg.MatchThreshold),
		screening.NewAggregator(sets),
		buildLoaders(cfg, redisClient, log),
		domainintel.NewWHOIS(cfg.WHOISHost, cfg.WHOISTimeout),
		recorder,
		metrics.New(),
		log,
	)

	var validator middleware.JWTValidator
	if cfg.JWTSigningKey != "" {
		validator = jwttoken.NewServiceAdapter(jwttoken.NewService(cfg.JWTSigningKey, "watchgate", "watchgate-api"))
	} else {
		log.Warn("no JWT signing key configured, screening API is unauthenticated")
	}

	router := httptransport.NewRouter(
		handler.New(service, log, validator),
		healthCheck(redisClient),
	)
	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting watchgate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("watchgate stopped")
}

func loadSets(cfg config.Server) (jurisdiction.Sets, error) {
	if cfg.JurisdictionFile != "" {
		return jurisdiction.LoadFile(cfg.JurisdictionFile)
	}
	return jurisdiction.Default(), nil
}

func buildLoaders(cfg config.Server, redisClient *platformredis.Client, log *slog.Logger) []watchlist.Loader {
	loaders := []watchlist.Loader{
		watchlist.NewOFACLoader(cfg.OFACURL, nil),
		watchlist.NewUNLoader(cfg.UNURL, nil),
	}
	if redisClient == nil {
		return loaders
	}

	cached := make([]watchlist.Loader, len(loaders))
	for i, loader := range loaders {
		cached[i] = watchlist.NewCached(loader, redisClient.Client, cfg.CacheTTL, log)
	}
	return cached
}

// buildAuditTrail assembles the audit pipeline: a buffered inbox drained
// by a worker into the configured sinks. Without a Postgres DSN or Kafka
// brokers the trail is disabled.
func buildAuditTrail(ctx context.Context, cfg config.Server, log *slog.Logger) (audit.Recorder, func(), error) {
	var sinks []audit.Store
	var closers []func()
	cleanup := func() {
		for _, close := range closers {
			close()
		}
	}

	if cfg.PostgresDSN != "" {
		store, err := auditpostgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, cleanup, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, cleanup, err
		}
		sinks = append(sinks, store)
		closers = append(closers, func() { _ = store.Close() })
		log.Info("audit postgres store enabled")
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := auditpublisher.NewKafka(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, cleanup, err
		}
		sinks = append(sinks, publisher)
		closers = append(closers, publisher.Close)
		log.Info("audit kafka publisher enabled", "topic", cfg.KafkaTopic)
	}

	if len(sinks) == 0 {
		log.Warn("no audit sink configured, audit trail disabled")
		return audit.NopRecorder{}, cleanup, nil
	}

	inbox := make(chan audit.Event, auditInboxSize)
	go func() {
		_ = auditworker.New(inbox, log, sinks...).Run(ctx)
	}()

	return audit.NewChannelRecorder(inbox, log), cleanup, nil
}

func healthCheck(redisClient *platformredis.Client) httptransport.HealthChecker {
	if redisClient == nil {
		return nil
	}
	return func(r *http.Request) error {
		return redisClient.Health(r.Context())
	}
}
