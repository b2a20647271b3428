package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/stratodeck/copytrade/internal/pkg/config"
	"github.com/stratodeck/copytrade/internal/pkg/database"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
)

func main() {
	appName := "copytrade-reconcile"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting reconcile run",
		zap.String("app", appName),
		zap.String("fallback_file", configs.Payments.FallbackFilePath),
	)

	// Unlike the API binary, reconciliation is pointless without postgres.
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	store, err := recordstore.NewStore(postgresClient.GetDB(), configs.Payments.FallbackFilePath)
	if err != nil {
		zapLogger.Fatal("Failed to initialize record store", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := store.ReconcileUsers(ctx)
	if err != nil {
		zapLogger.Fatal("Reconcile failed", zap.Error(err))
	}

	zapLogger.Info("Reconcile complete",
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
	)
}
