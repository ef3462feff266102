package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"feed_digest/internal/config"
	"feed_digest/internal/httpapi"
	"feed_digest/internal/publisher"
	"feed_digest/internal/scheduler"
	"feed_digest/internal/service"
	"feed_digest/internal/source/rss"
	"feed_digest/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	feedStore := postgres.NewFeedStore(db)
	articleStore := postgres.NewArticleStore(db)
	fetchCache := postgres.NewFetchCacheStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := rss.New(rss.Config{
		Timeout:        cfg.Fetch.Timeout,
		UserAgent:      cfg.Fetch.UserAgent,
		MaxAttempts:    cfg.Fetch.Retry.MaxAttempts,
		InitialBackoff: cfg.Fetch.Retry.InitialBackoff,
		MaxBackoff:     cfg.Fetch.Retry.MaxBackoff,
	}, logger)

	ingest := service.NewIngestService(feedStore, articleStore, fetchCache, source, txManager, logger)
	deletion := service.NewFeedDeletion(feedStore, articleStore, txManager, logger)
	feeds := service.NewFeedService(feedStore, deletion, logger)
	newsletters := service.NewNewsletterService(
		service.NewOwnershipValidator(feedStore),
		service.NewFreshnessOracle(feedStore, fetchCache, cfg.Cache.Window, logger),
		service.NewRefreshCoordinator(ingest, cfg.Prepare.FetchTimeout, cfg.Prepare.MaxParallel, logger),
		service.NewArticleAggregator(articleStore, cfg.Cache.ArticleLimit),
		rabbitMQ,
		logger,
		cfg.Prepare,
	)
	history := service.NewNewsletterHistory(postgres.NewNewsletterStore(db), logger)
	janitor := service.NewJanitor(articleStore, fetchCache, cfg.Cache.Window, logger)

	results, err := publisher.NewResultConsumer(publisher.ConsumerConfig{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.ResultRoutingKey,
		QueueName:  cfg.RabbitMQ.ResultQueueName,
		Prefetch:   cfg.RabbitMQ.ResultPrefetch,
	}, history, logger)
	if err != nil {
		logger.Error("failed to start result consumer", "error", err)
		os.Exit(1)
	}
	defer results.Close()

	auth := httpapi.NewTenantAuth(cfg.Auth, logger)
	server := httpapi.NewServer(httpapi.NewHandler(feeds, newsletters, history, logger), auth, logger)
	sched := scheduler.NewScheduler(janitor, cfg.Janitor.Interval, cfg.Janitor.Timeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed digest",
		"addr", cfg.HTTP.Addr,
		"cache_window", cfg.Cache.Window,
		"janitor_interval", cfg.Janitor.Interval,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := results.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
