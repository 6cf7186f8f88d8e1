package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/events"
	"github.com/adeka83-arch/systemklinik-sub011/internal/notification"
)

func ConsumeVoucherReminders(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.voucher_reminder")
	log.Info("voucher reminder consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("voucher reminder consumer stopped")
				return
			}
			log.Error("fetch voucher reminder message failed", zap.Error(err))
			continue
		}

		var event events.VoucherExpiringEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode voucher_expiring event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if _, err := notificationService.CreateVoucherReminder(ctx, event); err != nil {
			log.Error("store voucher reminder notification failed",
				zap.String("voucher_id", event.VoucherID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit voucher reminder message failed", zap.Error(err))
			continue
		}

		log.Info("voucher reminder notification created from event",
			zap.String("voucher_id", event.VoucherID),
			zap.Int("days_left", event.DaysLeft),
		)
	}
}
