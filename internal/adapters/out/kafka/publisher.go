package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/ports"

	"github.com/IBM/sarama"
)

var _ ports.EventPublisher = &Publisher{}

// Publisher writes order events to a Kafka topic as JSON. Messages are keyed
// by order id so every event of one order lands on the same partition and
// keeps its order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducerConfig returns the producer settings used in production: wait for
// all in-sync replicas and retry transient failures.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0
	return config
}

// NewPublisher connects a sync producer to brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer, e.g. a sarama mock.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, event ports.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := event.OrderID
	if key == "" {
		key = event.Subject
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to send event to Kafka", "type", event.Type, "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "Event published to Kafka",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"type", event.Type,
		"order_id", event.OrderID,
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
