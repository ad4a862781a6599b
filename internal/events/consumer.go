package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/rs/zerolog"
)

type EventConsumer struct {
	client   pulsar.Client
	consumer pulsar.Consumer
}

// NewEventConsumer subscribes to the audit topic.
func NewEventConsumer(pulsarURL, topic, subscription string) (*EventConsumer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{URL: pulsarURL})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	consumer, err := client.Subscribe(pulsar.ConsumerOptions{
		Topic:            topic,
		SubscriptionName: subscription,
		Type:             pulsar.Shared,
		DLQ: &pulsar.DLQPolicy{
			MaxDeliveries:   3,
			DeadLetterTopic: topic + "-dlq",
		},
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar consumer: %w", err)
	}

	return &EventConsumer{client: client, consumer: consumer}, nil
}

// Receive blocks until the next audit event arrives. Messages that cannot be
// decoded are nacked and reported as errors.
func (c *EventConsumer) Receive(ctx context.Context) (AuditEvent, pulsar.Message, error) {
	msg, err := c.consumer.Receive(ctx)
	if err != nil {
		return AuditEvent{}, nil, fmt.Errorf("failed to receive message: %w", err)
	}

	event, err := DecodeAuditEvent(msg.Payload())
	if err != nil {
		c.consumer.Nack(msg)
		return AuditEvent{}, nil, err
	}
	return event, msg, nil
}

func (c *EventConsumer) Ack(msg pulsar.Message) {
	c.consumer.Ack(msg)
}

// Close cleans up the Pulsar consumer and client.
func (c *EventConsumer) Close() {
	c.consumer.Close()
	c.client.Close()
}

func DecodeAuditEvent(payload []byte) (AuditEvent, error) {
	var event AuditEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return AuditEvent{}, fmt.Errorf("could not decode audit event: %w", err)
	}
	if event.Entity == "" || event.Action == "" {
		return AuditEvent{}, fmt.Errorf("audit event missing entity or action")
	}
	return event, nil
}

// Source is the receiving side of EventConsumer.
type Source interface {
	Receive(ctx context.Context) (AuditEvent, pulsar.Message, error)
	Ack(msg pulsar.Message)
}

// Consume hands every received event to handle and acks it, until ctx is
// done. Failed receives are retried after a delay that starts at backoff and
// doubles up to 32 times backoff; a successful receive resets it.
func Consume(ctx context.Context, src Source, backoff time.Duration, handle func(AuditEvent)) {
	logger := zerolog.Ctx(ctx)
	maxBackoff := 32 * backoff
	wait := backoff

	for {
		event, msg, err := src.Receive(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			logger.Error().Err(err).Dur("retry_in", wait).Msg("Error receiving audit event")

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			wait = min(2*wait, maxBackoff)
			continue
		}

		wait = backoff
		handle(event)
		src.Ack(msg)
	}
}
