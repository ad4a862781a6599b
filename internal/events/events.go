package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/rs/zerolog/log"
)

const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionRegenerate = "regenerate"
	ActionUpload     = "upload"
)

// AuditEvent records a change made through the back office.
type AuditEvent struct {
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Timestamp string `json:"timestamp"`
}

// NewAuditEvent stamps an event with the current UTC time.
func NewAuditEvent(entity, entityID, action, actor string) AuditEvent {
	return AuditEvent{
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Notifier publishes audit events.
type Notifier interface {
	Notify(ctx context.Context, event AuditEvent) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher connects a producer to the audit topic.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	log.Info().Str("topic", topic).Msg("Pulsar client and producer initialized successfully")
	return &EventPublisher{client: client, producer: producer}, nil
}

// Notify publishes event to Pulsar, keyed by entity id.
func (p *EventPublisher) Notify(ctx context.Context, event AuditEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize audit event: %w", err)
	}

	_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
		Key:     event.Entity + "/" + event.EntityID,
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	log.Debug().RawJSON("event", message).Msg("Audit event sent to Pulsar")
	return nil
}

// Close closes the Pulsar client and producer
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
	log.Info().Msg("Pulsar client and producer closed successfully")
}

// NoopNotifier drops every event. It is used when no broker is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, AuditEvent) error { return nil }
func (NoopNotifier) Close()                                  {}

// NewNotifier returns a Pulsar publisher when pulsarURL is set and a
// NoopNotifier otherwise.
func NewNotifier(pulsarURL, topic string) (Notifier, error) {
	if pulsarURL == "" {
		log.Warn().Msg("Pulsar URL not configured, audit events are disabled")
		return NoopNotifier{}, nil
	}
	return NewEventPublisher(pulsarURL, topic)
}
