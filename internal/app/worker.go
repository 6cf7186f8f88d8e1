package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/events"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/connection"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
	"github.com/adeka83-arch/systemklinik-sub011/internal/voucher"
)

// RunWorker menjalankan scheduler harian yang memindai voucher yang akan
// kedaluwarsa dan menerbitkan event pengingat ke Kafka.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	kv := store.NewRedisStore(redisClient)
	voucherService := voucher.NewService(voucher.NewRepository(kv), logger)
	publisher := voucher.NewKafkaEventPublisher(kafkaWriter)

	windowDays := voucher.DefaultReminderWindowDays
	if v := os.Getenv("REMINDER_WINDOW_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			windowDays = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publishReminders := func() {
		if err := publishVoucherReminders(ctx, voucherService, publisher, windowDays, logger); err != nil {
			logger.Error("publish voucher reminders failed", zap.Error(err))
		}
	}

	c := cron.New()
	// Tiap hari jam 07:00 sebelum klinik buka
	if _, err := c.AddFunc("0 7 * * *", publishReminders); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	logger.Info("reminder worker started", zap.Int("window_days", windowDays))

	// Jalankan sekali saat start supaya tidak menunggu jadwal berikutnya
	publishReminders()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func publishVoucherReminders(
	ctx context.Context,
	voucherService voucher.Service,
	publisher voucher.EventPublisher,
	windowDays int,
	logger *zap.Logger,
) error {
	expiring, err := voucherService.ListExpiring(ctx, windowDays)
	if err != nil {
		return err
	}

	if len(expiring) == 0 {
		logger.Info("no vouchers expiring within window", zap.Int("window_days", windowDays))
		return nil
	}

	logger.Info("publishing voucher reminders", zap.Int("count", len(expiring)))

	for _, v := range expiring {
		event := events.VoucherExpiringEvent{
			EventType:  "voucher_expiring",
			VoucherID:  v.ID,
			Code:       v.Code,
			Title:      v.Title,
			ValidUntil: v.ValidUntil,
			DaysLeft:   v.DaysLeft,
			OccurredAt: time.Now().UTC(),
		}

		if err := publisher.PublishVoucherExpiring(ctx, event); err != nil {
			logger.Error("publish voucher_expiring event failed",
				zap.String("voucher_id", v.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("voucher_expiring event published",
			zap.String("voucher_id", v.ID),
			zap.Int("days_left", v.DaysLeft),
		)
	}

	return nil
}
