package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nexlyn/storefront-backend/api/routes"
	"github.com/nexlyn/storefront-backend/internal/admin"
	"github.com/nexlyn/storefront-backend/internal/catalog"
	"github.com/nexlyn/storefront-backend/internal/chat"
	"github.com/nexlyn/storefront-backend/internal/settings"
	"github.com/nexlyn/storefront-backend/internal/view"
	"github.com/nexlyn/storefront-backend/pkg/cloudinary"
	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/db"
	"github.com/nexlyn/storefront-backend/pkg/gemini"
	"github.com/nexlyn/storefront-backend/pkg/instance"
	"github.com/nexlyn/storefront-backend/pkg/kvstore"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/metrics"
	"github.com/nexlyn/storefront-backend/pkg/migrate"
	"github.com/nexlyn/storefront-backend/pkg/redis"
	"github.com/nexlyn/storefront-backend/pkg/session"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	store, err := kvstore.New(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create kv store", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(context.Background(), store, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(store, cfg.Defaults, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	rotatorCtx, stopRotator := context.WithCancel(context.Background())
	defer stopRotator()
	rotator := view.NewRotator(cfg.Banner, storefrontMetrics)
	go rotator.Run(rotatorCtx)

	viewService, err := view.NewService(catalogService, rotator)
	if err != nil {
		logg.Error(context.Background(), "failed to create view service", err)
		os.Exit(1)
	}

	var geminiOpts []gemini.Option
	if cfg.Gemini.Model != "" {
		geminiOpts = append(geminiOpts, gemini.WithModel(cfg.Gemini.Model))
	}
	if cfg.Gemini.BaseURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(cfg.Gemini.BaseURL))
	}
	geminiClient, err := gemini.NewClient(cfg.Gemini.APIKey, geminiOpts...)
	if err != nil {
		logg.Error(context.Background(), "failed to create gemini client", err)
		os.Exit(1)
	}

	var cloudinaryOpts []cloudinary.Option
	if cfg.Cloudinary.BaseURL != "" {
		cloudinaryOpts = append(cloudinaryOpts, cloudinary.WithBaseURL(cfg.Cloudinary.BaseURL))
	}
	cloudinaryClient, err := cloudinary.NewClient(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset, cloudinaryOpts...)
	if err != nil {
		logg.Error(context.Background(), "failed to create cloudinary client", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(catalogService, settingsService, cloudinaryClient, cfg.Admin, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	chatService, err := chat.NewService(sessionManager, geminiClient, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create chat service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			sessionManager,
			catalogService,
			settingsService,
			viewService,
			adminService,
			chatService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
