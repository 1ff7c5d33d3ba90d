package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	"pressroom/internal/common/pagination"
	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/db"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/observability/tracing"
	"pressroom/pkg/config"

	artUC "pressroom/internal/usecase/article"
	catUC "pressroom/internal/usecase/category"
	commentUC "pressroom/internal/usecase/comment"
	contactUC "pressroom/internal/usecase/contact"
	tagUC "pressroom/internal/usecase/tag"
	userUC "pressroom/internal/usecase/user"

	hhttp "pressroom/internal/handler/http"
	harticle "pressroom/internal/handler/http/article"
	hauth "pressroom/internal/handler/http/auth"
	hcategory "pressroom/internal/handler/http/category"
	hcomment "pressroom/internal/handler/http/comment"
	hcontact "pressroom/internal/handler/http/contact"
	"pressroom/internal/handler/http/ratelimit"
	"pressroom/internal/handler/http/requestid"
	htag "pressroom/internal/handler/http/tag"
	huser "pressroom/internal/handler/http/user"

	_ "pressroom/docs" // swagger docs
)

// @title           Pressroom API
// @version         1.0
// @description     REST API for the Pressroom publishing backend.
// @description     Manages articles, categories, tags, authors, comment moderation and contact messages.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer authentication. Supply the token as "Bearer {token}".

func main() {
	// Best effort; production sets real environment variables
	_ = godotenv.Load()

	logger := initLogger()
	validateAdminCredentials(logger)
	validateEditorCredentials(logger)
	validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, database, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger("api")
	slog.SetDefault(logger)
	return logger
}

// validateAdminCredentials validates the admin credentials at startup.
// This prevents the server from starting with empty or weak admin credentials.
func validateAdminCredentials(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// validateEditorCredentials validates the editor credentials at startup.
// Unlike admin validation, this implements graceful degradation:
// if editor credentials are misconfigured, the editor role is disabled
// but the application continues to run in admin-only mode.
func validateEditorCredentials(logger *slog.Logger) {
	_ = hauth.ValidateEditorCredentials(logger)
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// Enforce a minimum of 32 characters (256 bits)
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	// Reject well-known weak secrets
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, routes and middleware, and
// returns the root HTTP handler.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	artRepo := pgRepo.NewArticleRepo(database)
	tagRepo := pgRepo.NewTagRepo(database)

	artSvc := &artUC.Service{Repo: artRepo, Tags: tagRepo}
	catSvc := &catUC.Service{Repo: pgRepo.NewCategoryRepo(database)}
	tagSvc := &tagUC.Service{Repo: tagRepo}
	userSvc := &userUC.Service{Repo: pgRepo.NewUserRepo(database)}
	commentSvc := &commentUC.Service{Repo: pgRepo.NewCommentRepo(database), Articles: artRepo}
	contactSvc := &contactUC.Service{Repo: pgRepo.NewContactRepo(database)}

	paginationCfg := pagination.LoadFromEnv()

	// Token bucket for anonymous writes (comment and contact submissions).
	// SUBMISSION_RATE_PER_MINUTE refills, SUBMISSION_RATE_BURST absorbs spikes.
	perMinute := config.GetEnvInt("SUBMISSION_RATE_PER_MINUTE", 10)
	burst := config.GetEnvInt("SUBMISSION_RATE_BURST", 5)
	submissionLimiter := ratelimit.NewPerIP(rate.Limit(float64(perMinute)/60.0), burst)
	logger.Info("submission rate limiting initialized",
		slog.Int("per_minute", perMinute),
		slog.Int("burst", burst))

	// Sliding window on the login endpoint: 5 attempts per IP per minute
	authRateLimiter := hhttp.NewRateLimiter(5, time.Minute)

	weakPasswords := []string{"password", "123456", "admin", "test", "secret"}
	authProvider := hauth.NewEnvProvider(12, weakPasswords)

	mux := http.NewServeMux()

	// Admin surfaces register their own auth wrapper per route
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcategory.Register(mux, catSvc, paginationCfg, logger)
	htag.Register(mux, tagSvc, paginationCfg, logger)
	huser.Register(mux, userSvc, paginationCfg, logger)
	hcomment.Register(mux, commentSvc, paginationCfg, logger, submissionLimiter)
	hcontact.Register(mux, contactSvc, paginationCfg, logger, submissionLimiter)

	mux.Handle("POST   /auth/token", authRateLimiter.Limit(hauth.TokenHandler(authProvider)))

	mux.Handle("GET    /health", &hhttp.HealthHandler{
		DB:                database,
		Version:           version,
		SubmissionLimiter: submissionLimiter,
	})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Recovery → Logging → Input Validation → Body Limit → Tracing → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, database *sql.DB, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go reportDBStats(ctx, database)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ":8080"),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// reportDBStats feeds connection pool gauges until the context is cancelled.
func reportDBStats(ctx context.Context, database *sql.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := database.Stats()
			metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
		}
	}
}
