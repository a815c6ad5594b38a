package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/stylelane/stylelane-backend/api/controllers"
	"github.com/stylelane/stylelane-backend/api/routes"
	"github.com/stylelane/stylelane-backend/internal/auth"
	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/notify"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/restocks"
	"github.com/stylelane/stylelane-backend/internal/sales"
	"github.com/stylelane/stylelane-backend/internal/seed"
	"github.com/stylelane/stylelane-backend/internal/shipments"
	"github.com/stylelane/stylelane-backend/internal/stores"
	"github.com/stylelane/stylelane-backend/internal/users"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/logger"
	"github.com/stylelane/stylelane-backend/pkg/metrics"
	"github.com/stylelane/stylelane-backend/pkg/redis"
	"github.com/stylelane/stylelane-backend/pkg/sns"
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

	ctx := context.Background()

	dynamoClient, err := dynamo.New(ctx, cfg.AWS, cfg.Dynamo, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap dynamodb", err)
		os.Exit(1)
	}

	snsClient, err := sns.NewClient(ctx, cfg.AWS, cfg.SNS, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap sns", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(ctx, "redis not configured, login rate limiting disabled")
	}

	notifier, err := notify.NewNotifier(snsClient, logg)
	if err != nil {
		logg.Error(ctx, "failed to create notifier", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dynamoClient)
	storesRepo := stores.NewRepository(dynamoClient)
	productsRepo := products.NewRepository(dynamoClient)
	inventoryRepo := inventory.NewRepository(dynamoClient)
	salesRepo := sales.NewRepository(dynamoClient)
	restocksRepo := restocks.NewRepository(dynamoClient)
	shipmentsRepo := shipments.NewRepository(dynamoClient)

	usersSvc, err := users.NewService(usersRepo, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to create user service", err)
		os.Exit(1)
	}
	storesSvc, err := stores.NewService(storesRepo)
	if err != nil {
		logg.Error(ctx, "failed to create store service", err)
		os.Exit(1)
	}
	productsSvc, err := products.NewService(productsRepo)
	if err != nil {
		logg.Error(ctx, "failed to create product service", err)
		os.Exit(1)
	}
	inventorySvc, err := inventory.NewService(inventoryRepo, productsRepo, storesRepo, notifier)
	if err != nil {
		logg.Error(ctx, "failed to create inventory service", err)
		os.Exit(1)
	}
	salesSvc, err := sales.NewService(salesRepo, inventorySvc, productsRepo)
	if err != nil {
		logg.Error(ctx, "failed to create sale service", err)
		os.Exit(1)
	}
	shipmentsSvc, err := shipments.NewService(shipmentsRepo, notifier)
	if err != nil {
		logg.Error(ctx, "failed to create shipment service", err)
		os.Exit(1)
	}
	restocksSvc, err := restocks.NewService(restocksRepo, inventorySvc, productsRepo, shipmentsRepo, notifier)
	if err != nil {
		logg.Error(ctx, "failed to create restock service", err)
		os.Exit(1)
	}
	authSvc, err := auth.NewService(usersRepo, cfg.Session)
	if err != nil {
		logg.Error(ctx, "failed to create auth service", err)
		os.Exit(1)
	}
	seeder, err := seed.NewSeeder(usersSvc, storesSvc, productsSvc, inventorySvc, logg)
	if err != nil {
		logg.Error(ctx, "failed to create seeder", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	httpMetrics := metrics.NewHTTPMetrics(registry)

	checks := map[string]controllers.Pinger{
		"dynamodb": dynamoClient,
		"sns":      nil,
		"redis":    nil,
	}
	if snsClient.Enabled() {
		checks["sns"] = snsClient
	}
	if redisClient != nil {
		checks["redis"] = redisClient
	}

	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		Metrics:     httpMetrics,
		Gatherer:    registry,
		Redis:       redisClient,
		Checks:      checks,
		Seeder:      seeder,
		AuthService: authSvc,
		Users:       usersSvc,
		Stores:      storesSvc,
		Products:    productsSvc,
		Inventory:   inventorySvc,
		Sales:       salesSvc,
		Restocks:    restocksSvc,
		Shipments:   shipmentsSvc,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	sctx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(sctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(sctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
