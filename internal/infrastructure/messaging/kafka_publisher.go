// Package messaging implements port.EventPublisher on Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/4ak45h/Legacy-Planner/pkg/events"
	kafkapkg "github.com/4ak45h/Legacy-Planner/pkg/kafka"
)

// KafkaEventPublisher writes domain events to a single planner topic. The
// event identity travels in message headers; the value is the JSON payload
// of the concrete event.
type KafkaEventPublisher struct {
	producer *kafkapkg.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given topic.
func NewKafkaEventPublisher(producer *kafkapkg.Producer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaEventPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish serialises and sends domain events, keyed by aggregate ID so
// events for one aggregate stay ordered within a partition.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]kafkapkg.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafkapkg.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: map[string]string{
				"event_id":       evt.EventID().String(),
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	for _, evt := range evts {
		p.logger.Debug("published domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"topic", p.topic,
		)
	}
	return nil
}

// NoopEventPublisher satisfies port.EventPublisher when no broker is
// configured; events are logged and dropped.
type NoopEventPublisher struct {
	logger *slog.Logger
}

// NewNoopEventPublisher creates the no-op publisher.
func NewNoopEventPublisher(logger *slog.Logger) *NoopEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopEventPublisher{logger: logger}
}

// Publish logs each event instead of sending it anywhere.
func (p *NoopEventPublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		p.logger.Debug("dropping domain event (no broker configured)",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	return nil
}
