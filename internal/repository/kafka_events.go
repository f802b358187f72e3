package repository

import (
	"context"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	pkgkafka "github.com/puglisirhys-create/buyzone/pkg/kafka"
)

// KafkaEventPublisher emits watchlist mutation events to a Kafka topic,
// keyed by ticker so per-asset ordering survives partitioning.
type KafkaEventPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaEventPublisher(producer *pkgkafka.Producer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, ev models.WatchEvent) error {
	key := []byte(ev.Ticker)
	if len(key) == 0 {
		key = []byte(ev.Op)
	}
	return p.producer.Publish(ctx, p.topic, key, ev)
}

func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}

// NoopEventPublisher discards events. Used when no broker is configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(context.Context, models.WatchEvent) error { return nil }
func (NoopEventPublisher) Close() error                                     { return nil }
