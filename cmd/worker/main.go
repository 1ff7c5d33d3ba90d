// The worker binary runs the scheduled publisher: a cron job that flips
// drafts whose publish_at has passed to PUBLISHED. It shares the database
// with the API server but runs as a separate process so a stuck run never
// blocks request traffic.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"pressroom/internal/handler/http/respond"
	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/db"
	workerPkg "pressroom/internal/infra/worker"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/repository"
	"pressroom/internal/resilience/circuitbreaker"
	publishUC "pressroom/internal/usecase/publish"
	"pressroom/pkg/config"
)

func main() {
	// Best effort; production sets real environment variables
	_ = godotenv.Load()

	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	cfg := workerPkg.LoadFromEnv(logger)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Duration("job_timeout", cfg.JobTimeout),
		slog.Int("batch_size", cfg.BatchSize),
		slog.Int("health_port", cfg.HealthPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The worker is long-lived and unattended, so database calls go through
	// a circuit breaker: a dead database trips the breaker instead of
	// piling up timed-out cron runs.
	repo := pgRepo.NewArticleRepo(circuitbreaker.NewDBCircuitBreaker(database))
	svc := &publishUC.Service{Repo: repo, BatchSize: cfg.BatchSize}

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", cfg.HealthPort), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := healthServer.Start(gctx); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return runMetricsServer(gctx, logger)
	})
	g.Go(func() error {
		runWithCron(gctx, logger, svc, repo, cfg, healthServer)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("worker exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger("worker")
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and waits for the API server's
// migrations to finish. The worker never migrates; it only needs the schema
// to exist.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM articles LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// runMetricsServer exposes Prometheus metrics on a separate port so the
// scrape target stays up even while a publish run is in flight. Blocks
// until the context is cancelled.
func runMetricsServer(ctx context.Context, logger *slog.Logger) error {
	port := config.GetEnvInt("WORKER_METRICS_PORT", 9090)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("metrics server starting", slog.String("addr", srv.Addr))
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	}
}

// runWithCron schedules the publish job and blocks until the process is
// signalled. A run already in flight is allowed to finish before exit.
func runWithCron(
	ctx context.Context,
	logger *slog.Logger,
	svc *publishUC.Service,
	repo repository.ArticleRepository,
	cfg workerPkg.Config,
	healthServer *workerPkg.HealthServer,
) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runPublishJob(logger, svc, repo, cfg)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	// Stop scheduling new runs, then wait for the in-flight one.
	<-c.Stop().Done()
	logger.Info("worker stopped")
}

// runPublishJob executes a single publish pass with timeout and error handling.
func runPublishJob(logger *slog.Logger, svc *publishUC.Service, repo repository.ArticleRepository, cfg workerPkg.Config) {
	startTime := time.Now()
	logger.Debug("publish run started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.JobTimeout)
	defer cancel()

	published, err := svc.RunOnce(ctx, time.Now())
	duration := time.Since(startTime)
	workerPkg.RecordJobDuration(duration.Seconds())

	if err != nil {
		// Mask connection strings and the like before logging
		logger.Error("publish run failed", slog.String("error", respond.SanitizeError(err)))
		workerPkg.RecordJobRun("failure")
		return
	}

	workerPkg.RecordJobRun("success")
	workerPkg.RecordLastSuccess()
	if published > 0 {
		workerPkg.RecordArticlesPublished(published)
		metrics.ArticlesPublishedTotal.WithLabelValues("scheduler").Add(float64(published))
	}

	if total, err := repo.CountAll(ctx); err == nil {
		metrics.UpdateArticlesTotal(total)
	}

	if published > 0 {
		logger.Info("publish run completed",
			slog.Int("published", published),
			slog.Duration("duration", duration))
	} else {
		logger.Debug("publish run completed, nothing due",
			slog.Duration("duration", duration))
	}
}
