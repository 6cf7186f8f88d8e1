package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/events"
	"github.com/adeka83-arch/systemklinik-sub011/internal/messaging/kafka/consumer"
	"github.com/adeka83-arch/systemklinik-sub011/internal/notification"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/connection"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

// RunConsumer mengonsumsi event pengingat voucher dan menyimpannya
// sebagai notifikasi back-office.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kv := store.NewRedisStore(redisClient)
	notificationService := notification.NewService(notification.NewRepository(kv), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.VoucherExpiringTopic,
		GroupID:        "systemklinik-voucher-reminder",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeVoucherReminders(ctx, reader, notificationService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
