package notify

import (
	"context"
	"encoding/json"
	"time"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes booking-lifecycle events to a single topic,
// keyed by appointment ID so one appointment's history stays ordered
// within a partition. Consumers dedupe on the event_id header.
type KafkaNotifier struct {
	writer *kafka.Writer
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

type eventPayload struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	AppointmentID string    `json:"appointment_id"`
	CustomerID    string    `json:"customer_id"`
	StaffID       string    `json:"staff_id"`
	Status        string    `json:"status"`
	StartsAt      time.Time `json:"starts_at"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (n *KafkaNotifier) Publish(ctx context.Context, event commands.Event) error {
	payload, err := json.Marshal(eventPayload{
		EventID:       event.ID.String(),
		EventType:     event.Type,
		AppointmentID: event.AppointmentID.String(),
		CustomerID:    event.CustomerID.String(),
		StaffID:       event.StaffID.String(),
		Status:        event.Status,
		StartsAt:      event.StartsAt,
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
