package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stratodeck/copytrade/internal/pkg/config"
	"github.com/stratodeck/copytrade/internal/pkg/database"
	"github.com/stratodeck/copytrade/internal/pkg/health"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/middleware"
	natspkg "github.com/stratodeck/copytrade/internal/pkg/nats"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
	"github.com/stratodeck/copytrade/services/notify"
	paymentGateway "github.com/stratodeck/copytrade/services/payments/gateway"
	paymentHandler "github.com/stratodeck/copytrade/services/payments/handler"
	paymentHTTP "github.com/stratodeck/copytrade/services/payments/handler/http"
	paymentRepository "github.com/stratodeck/copytrade/services/payments/repository"
	paymentUsecase "github.com/stratodeck/copytrade/services/payments/usecase"
	strategyHandler "github.com/stratodeck/copytrade/services/strategies/handler"
	strategyHTTP "github.com/stratodeck/copytrade/services/strategies/handler/http"
	strategyUsecase "github.com/stratodeck/copytrade/services/strategies/usecase"
	walletHandler "github.com/stratodeck/copytrade/services/wallet/handler"
	walletHTTP "github.com/stratodeck/copytrade/services/wallet/handler/http"
	walletUsecase "github.com/stratodeck/copytrade/services/wallet/usecase"
)

func main() {
	appName := "copytrade-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// PostgreSQL is the primary backend; on failure the record store runs
	// on the JSON fallback document alone.
	var db *sqlx.DB
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Warn("PostgreSQL unavailable, serving from JSON fallback store", zap.Error(err))
	} else {
		db = postgresClient.GetDB()
		defer postgresClient.Close()
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Warn("Redis unavailable, pending payments cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Warn("NATS unavailable, payment events disabled", zap.Error(err))
		natsClient = nil
	} else {
		defer natsClient.Close()
	}

	// Shared dual-backend record store
	store, err := recordstore.NewStore(db, configs.Payments.FallbackFilePath)
	if err != nil {
		zapLogger.Fatal("Failed to initialize record store", zap.Error(err))
	}

	// Strategy registry
	strategyUC := strategyUsecase.NewStrategyUC(configs, store)

	// Payment lifecycle
	paymentGW := paymentGateway.NewPaymentGW(natsClient)
	pendingCache := paymentRepository.NewPendingCache(redisClient, configs)
	paymentUC := paymentUsecase.NewPaymentUC(configs, store, strategyUC, paymentGW, pendingCache)

	// Wallet ledger
	walletUC := walletUsecase.NewWalletUC(store)

	// Notification consumer
	consumer := notify.NewConsumer(natsClient, notify.NewLogNotifier(), store)
	if err := consumer.Start(); err != nil {
		zapLogger.Fatal("Failed to start notification consumer", zap.Error(err))
	}
	defer consumer.Stop()

	// HTTP handlers
	payments := paymentHandler.NewHandler(paymentHTTP.NewPaymentHandler(paymentUC), configs)
	strategies := strategyHandler.NewHandler(strategyHTTP.NewStrategyHandler(strategyUC), configs)
	wallets := walletHandler.NewHandler(walletHTTP.NewWalletHandler(walletUC), configs)

	e := echo.New()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	payments.RegisterRoutes(e)
	strategies.RegisterRoutes(e)
	wallets.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
