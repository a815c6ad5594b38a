package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/stylelane/stylelane-backend/internal/inventory"
	"github.com/stylelane/stylelane-backend/internal/notify"
	"github.com/stylelane/stylelane-backend/internal/products"
	"github.com/stylelane/stylelane-backend/internal/seed"
	"github.com/stylelane/stylelane-backend/internal/stores"
	"github.com/stylelane/stylelane-backend/internal/users"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/logger"
	"github.com/stylelane/stylelane-backend/pkg/sns"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
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
	notifier, err := notify.NewNotifier(snsClient, logg)
	if err != nil {
		logg.Error(ctx, "failed to create notifier", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dynamoClient)
	storesRepo := stores.NewRepository(dynamoClient)
	productsRepo := products.NewRepository(dynamoClient)
	inventoryRepo := inventory.NewRepository(dynamoClient)

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

	seeder, err := seed.NewSeeder(usersSvc, storesSvc, productsSvc, inventorySvc, logg)
	if err != nil {
		logg.Error(ctx, "failed to create seeder", err)
		os.Exit(1)
	}

	result, err := seeder.Run(ctx)
	if err != nil {
		logg.Error(ctx, "seeding incomplete", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"users_created":     result.UsersCreated,
		"stores_created":    result.StoresCreated,
		"products_created":  result.ProductsCreated,
		"inventory_created": result.InventoryCreated,
	})
	logg.Info(ctx, "seed finished")
}
