package main

import (
	"context"
	"fmt"

	"measure_service/internal/adapter/http/handlers"
	"measure_service/internal/adapter/persistence/migrations"
	"measure_service/internal/adapter/persistence/repository"
	"measure_service/internal/config"
	"measure_service/internal/infrastructure/analysis"
	"measure_service/internal/infrastructure/database"
	"measure_service/internal/infrastructure/logging"
	"measure_service/internal/infrastructure/messaging"
	"measure_service/internal/infrastructure/storage"
	"measure_service/internal/usecase"
	"measure_service/internal/usecase/interfaces"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.NewLogger(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

// newMeasureRepository selects the Reading Store from STORE_DRIVER.
func newMeasureRepository(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (interfaces.IMeasureRepository, error) {
	log := logger.With(zap.String("store_driver", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		if cfg.Store.AutoMigrate {
			log.Info("applying database migrations")
			if err := migrations.Up(cfg.Store.DatabaseURL); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPostgresPool(lc, logger, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("reading store ready")
		return repository.NewMeasurePostgresRepository(pool), nil

	case config.StoreDriverDynamoDB:
		client, err := database.ConnectDynamoDB(context.Background(), cfg.DynamoDB, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		log.Info("reading store ready")
		return repository.NewMeasureDynamoRepository(client, cfg.DynamoDB.MeasuresTable, cfg.DynamoDB.MonthLocksTable), nil

	case config.StoreDriverMemory:
		log.Warn("in-memory reading store: data is lost on restart")
		return repository.NewMeasureMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func newAnalysisGateway(cfg *config.Config, logger *zap.Logger) (interfaces.IAnalysisGateway, error) {
	return analysis.NewGeminiGateway(context.Background(), cfg.Analysis, logger)
}

func newImageResolver(cfg *config.Config, logger *zap.Logger) interfaces.IImageResolver {
	return storage.NewImageResolver(cfg.Images.BaseDir, cfg.Images.MaxBytes, logger)
}

// newEventPublisher publishes to RabbitMQ when RABBITMQ_URL is set.
func newEventPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (interfaces.IMeasureEventPublisher, error) {
	if cfg.RabbitMQ.URL == "" {
		logger.Info("RABBITMQ_URL not set, measure events disabled")
		return messaging.NewNoopPublisher(logger), nil
	}

	conn, err := messaging.NewConnection(lc, logger, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}
	publisher, err := messaging.NewMeasureEventPublisher(conn, cfg.RabbitMQ.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func newMeasureUseCase(
	cfg *config.Config,
	repo interfaces.IMeasureRepository,
	gateway interfaces.IAnalysisGateway,
	resolver interfaces.IImageResolver,
	publisher interfaces.IMeasureEventPublisher,
	logger *zap.Logger,
) usecase.IMeasureUseCase {
	return usecase.NewMeasureUseCase(repo, gateway, resolver, publisher, logger, usecase.MeasureUseCaseConfig{
		AnalysisPrompt:  cfg.Analysis.Prompt,
		AnalysisTimeout: cfg.Analysis.Timeout,
	})
}

func newMeasureHandler(uc usecase.IMeasureUseCase, logger *zap.Logger) *handlers.MeasureHandler {
	return handlers.NewMeasureHandler(uc, logger)
}
