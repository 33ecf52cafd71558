package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-geoattend/internal/config"
	"go-geoattend/internal/messaging/kafka"
	"go-geoattend/internal/messaging/kafka/producer"
	"go-geoattend/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays the check-in outbox to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfig(cfg), cfg.DB.MaxRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker, err := connection.BrokerAddr(cfg.Kafka.Broker)
	if err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(broker, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, producer.WorkerConfig{
			PollInterval: cfg.Kafka.PollInterval,
			BatchSize:    cfg.Kafka.BatchSize,
		})
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
