package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/summitmind/backend/internal/application/billing"
	contentapp "github.com/summitmind/backend/internal/application/content"
	identityapp "github.com/summitmind/backend/internal/application/identity"
	trainingapp "github.com/summitmind/backend/internal/application/training"
	"github.com/summitmind/backend/internal/infrastructure/auth"
	infrabilling "github.com/summitmind/backend/internal/infrastructure/billing"
	"github.com/summitmind/backend/internal/infrastructure/cache"
	"github.com/summitmind/backend/internal/infrastructure/config"
	"github.com/summitmind/backend/internal/infrastructure/event"
	"github.com/summitmind/backend/internal/infrastructure/logger"
	"github.com/summitmind/backend/internal/infrastructure/persistence"
	"github.com/summitmind/backend/internal/infrastructure/storage"
	"github.com/summitmind/backend/internal/infrastructure/telemetry"
	"github.com/summitmind/backend/internal/interfaces/http/handler"
	"github.com/summitmind/backend/internal/interfaces/http/middleware"
	"github.com/summitmind/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Summit Mind backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Telemetry providers. Both degrade to no-ops when disabled, so the
	// rest of the wiring never branches on the flag.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	billingMetrics, err := telemetry.NewBillingMetrics(telemetry.BillingMetricsConfig{
		Meter:  meterProvider.Meter("summitmind/billing"),
		Logger: log,
	})
	if err != nil {
		log.Fatal("Failed to initialize billing metrics", zap.Error(err))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled: cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Token blacklist backed by Redis, falling back to the in-process
	// store when Redis is unreachable. Logout revocation then only holds
	// per instance, which is acceptable for development.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis blacklist", zap.Error(err))
			}
		}()
	}

	// Repositories
	athleteRepo := persistence.NewGormAthleteRepository(db.DB)
	goalRepo := persistence.NewGormGoalRepository(db.DB)
	checkInRepo := persistence.NewGormCheckInRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	voiceSessionRepo := persistence.NewGormVoiceSessionRepository(db.DB)
	scriptRepo := persistence.NewGormScriptRepository(db.DB)
	techniqueRepo := persistence.NewGormTechniqueRepository(db.DB)

	// Event bus carries billing status changes to in-process subscribers
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Stripe
	stripeConfig := &infrabilling.StripeConfig{
		SecretKey:      cfg.Stripe.SecretKey,
		PublishableKey: cfg.Stripe.PublishableKey,
		WebhookSecret:  cfg.Stripe.WebhookSecret,
		IsTestMode:     cfg.Stripe.IsTestMode,
		PriceIDs: map[string]string{
			"monthly": cfg.Stripe.PriceIDMonthly,
			"yearly":  cfg.Stripe.PriceIDYearly,
		},
		TrialDays:              cfg.Stripe.TrialDays,
		SuccessURL:             cfg.Stripe.SuccessURL,
		CancelURL:              cfg.Stripe.CancelURL,
		BillingPortalReturnURL: cfg.Stripe.BillingPortalReturnURL,
		APITimeout:             cfg.Stripe.APITimeout,
	}
	stripeAdapter, err := infrabilling.NewStripeAdapter(stripeConfig, log)
	if err != nil {
		log.Fatal("Failed to initialize Stripe adapter", zap.Error(err))
	}

	// Object storage for narration audio. Without a configured bucket the
	// in-memory store serves local development.
	var objectStorage contentapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("S3 object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewInMemoryObjectStorage()
		log.Warn("No storage bucket configured, using in-memory object storage")
	}

	contentCache := cache.NewContentCache(
		cache.WithTTL(cfg.Cache.ContentTTL),
		cache.WithLogger(log),
	)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(athleteRepo, jwtService, blacklist, eventBus, log)
	athleteService := identityapp.NewAthleteService(athleteRepo, jwtService, blacklist, log)

	webhookService := billingapp.NewWebhookService(billingapp.WebhookServiceConfig{
		Config:        stripeConfig,
		Athletes:      athleteRepo,
		Subscriptions: stripeAdapter,
		EventBus:      eventBus,
		Metrics:       billingMetrics,
		Logger:        log,
	})
	checkoutService := billingapp.NewCheckoutService(stripeAdapter, athleteRepo, log)

	goalService := trainingapp.NewGoalService(goalRepo, log)
	checkInService := trainingapp.NewCheckInService(checkInRepo, log)
	sessionService := trainingapp.NewSessionService(sessionRepo, voiceSessionRepo, athleteRepo, log)

	libraryService := contentapp.NewLibraryService(scriptRepo, techniqueRepo, athleteRepo, objectStorage, contentCache, log)
	if cfg.Storage.PresignExpiration > 0 {
		libraryService.SetConfig(contentapp.LibraryServiceConfig{
			AudioURLExpiry: cfg.Storage.PresignExpiration,
		})
	}
	cmsService := contentapp.NewCMSService(scriptRepo, techniqueRepo, objectStorage, contentCache, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	athleteHandler := handler.NewAthleteHandler(athleteService)
	billingHandler := handler.NewBillingHandler(checkoutService)
	billingHandler.SetMetrics(billingMetrics)
	webhookHandler := handler.NewWebhookHandler(webhookService, cfg.HTTP.WebhookBodySize, log)
	webhookHandler.SetMetrics(billingMetrics)
	goalHandler := handler.NewGoalHandler(goalService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	cmsHandler := handler.NewCMSHandler(cmsService)
	systemHandler := handler.NewSystemHandler(db.DB, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request ID first so every later stage can tag
	// logs and spans with it.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: meterProvider,
		Enabled:       cfg.Telemetry.Enabled,
	}))

	requireAuth := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	r := router.New(engine, "v1")
	// Public surface: probes, auth, and the Stripe webhook, whose
	// signature check is its authentication.
	r.Register(systemHandler, authHandler, webhookHandler)
	r.RegisterGroup(router.Group{
		Middlewares: []gin.HandlerFunc{requireAuth, middleware.SpanAttributeInjector()},
		Registrars: []router.RouteRegistrar{
			athleteHandler,
			billingHandler,
			goalHandler,
			checkInHandler,
			sessionHandler,
			libraryHandler,
		},
	})
	r.RegisterGroup(router.Group{
		Middlewares: []gin.HandlerFunc{requireAuth, middleware.RequireAdmin()},
		Registrars:  []router.RouteRegistrar{cmsHandler},
	})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
