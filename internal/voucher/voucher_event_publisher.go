package voucher

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/adeka83-arch/systemklinik-sub011/internal/events"
)

type EventPublisher interface {
	PublishVoucherExpiring(ctx context.Context, event events.VoucherExpiringEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishVoucherExpiring(context.Context, events.VoucherExpiringEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishVoucherExpiring(
	ctx context.Context,
	event events.VoucherExpiringEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.VoucherExpiringTopic,
		Key:   []byte(event.VoucherID),
		Value: payload,
	})
}
