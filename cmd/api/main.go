package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tjwaterman99/quicksplit-api/config"
	"github.com/tjwaterman99/quicksplit-api/pkg/analytics"
	"github.com/tjwaterman99/quicksplit-api/pkg/api/handlers"
	"github.com/tjwaterman99/quicksplit-api/pkg/cache"
	"github.com/tjwaterman99/quicksplit-api/pkg/database"
	"github.com/tjwaterman99/quicksplit-api/pkg/experiments"
	"github.com/tjwaterman99/quicksplit-api/pkg/jobs"
	"github.com/tjwaterman99/quicksplit-api/pkg/logger"
	"github.com/tjwaterman99/quicksplit-api/pkg/metrics"
	custommiddleware "github.com/tjwaterman99/quicksplit-api/pkg/middleware"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
	"github.com/tjwaterman99/quicksplit-api/pkg/results"
	"github.com/tjwaterman99/quicksplit-api/pkg/tracking"
	"github.com/tjwaterman99/quicksplit-api/pkg/users"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache. The API keeps working without it, reads
	// just skip the cache layer.
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, running without cache: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Structured logger for services
	appLogger := logger.New(cfg.LogLevel)

	// Initialize services
	plansService := plans.NewService(db.Ent)
	if err := plansService.Ensure(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed plan catalog: %v", err)
	}
	log.Printf("✅ Plan catalog seeded")

	usersService := users.NewService(db.Ent, plansService)
	experimentsService := experiments.NewService(db.Ent, plansService)
	trackingService := tracking.NewService(db.Ent, plansService)
	resultsService := results.NewService(db.Ent)
	analyticsService := analytics.NewService(db.Ent, redisClient, appLogger)

	// Initialize cron jobs
	cronManager := jobs.NewCronManager(analyticsService, nil)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to set up cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewRequestValidator()

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(10, 5)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORS())
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(usersService, prometheusMetrics, cfg.JWTSecret, cfg.JWTExpirationHours)
	experimentHandler := handlers.NewExperimentHandler(experimentsService, prometheusMetrics)
	trackingHandler := handlers.NewTrackingHandler(trackingService, prometheusMetrics)
	resultHandler := handlers.NewResultHandler(experimentsService, resultsService, prometheusMetrics)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Public routes
	e.GET("/", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/user", userHandler.Register, authRateLimiter.RateLimitMiddleware())
	e.POST("/login", userHandler.Login, authRateLimiter.RateLimitMiddleware())

	// Authenticated routes
	api := e.Group("", custommiddleware.JWTAuth(cfg.JWTSecret))
	api.GET("/user", userHandler.Me)
	api.POST("/experiments", experimentHandler.Create)
	api.GET("/experiments", experimentHandler.List)
	api.GET("/experiments/:name", experimentHandler.Get)
	api.POST("/experiments/:name/activate", experimentHandler.Activate)
	api.POST("/experiments/:name/deactivate", experimentHandler.Deactivate)
	api.POST("/exposures", trackingHandler.CreateExposure)
	api.POST("/conversions", trackingHandler.CreateConversion)
	api.POST("/results", resultHandler.Run)
	api.GET("/results/:name", resultHandler.Last)
	api.GET("/recent", analyticsHandler.Recent)
	api.GET("/summaries/exposures", analyticsHandler.ExposureSummaries)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Quicksplit API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
